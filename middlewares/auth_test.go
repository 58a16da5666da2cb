package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohisvst29/moal/utils"
)

func newProtectedRouter(secret string, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/secure", AuthMiddleware(secret, roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": utils.CurrentEmail(c)})
	})
	return r
}

func get(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := newProtectedRouter("secret", "admin")

	token, err := utils.GenerateToken("admin@moal.cafe", "admin", "secret", time.Hour)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, get(r, token).Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "garbage").Code)

	wrongKey, err := utils.GenerateToken("admin@moal.cafe", "admin", "other-secret", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(r, wrongKey).Code)

	expired, err := utils.GenerateToken("admin@moal.cafe", "admin", "secret", -time.Minute)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(r, expired).Code)
}

func TestAuthMiddlewareRoleEnforcement(t *testing.T) {
	r := newProtectedRouter("secret", "admin")

	token, err := utils.GenerateToken("someone@moal.cafe", "customer", "secret", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, get(r, token).Code)
}
