package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohisvst29/moal/utils"
)

func TestAuthLogin(t *testing.T) {
	svc := NewAuthService("Admin@Moal.cafe", "s3cret", "test-secret", time.Hour)

	token, err := svc.Login("admin@moal.cafe", "s3cret")
	require.NoError(t, err)

	claims := &utils.Claims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "admin@moal.cafe", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestAuthLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAuthService("admin@moal.cafe", "s3cret", "test-secret", time.Hour)

	_, err := svc.Login("admin@moal.cafe", "wrong")
	assert.Error(t, err)

	_, err = svc.Login("other@moal.cafe", "s3cret")
	assert.Error(t, err)
}

func TestAuthLoginDisabledWithoutPassword(t *testing.T) {
	svc := NewAuthService("admin@moal.cafe", "", "test-secret", time.Hour)

	_, err := svc.Login("admin@moal.cafe", "")
	assert.Error(t, err)
}
