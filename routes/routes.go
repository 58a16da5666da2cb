package routes

import (
	"github.com/Mohisvst29/moal/configs"
	"github.com/Mohisvst29/moal/controllers"
	"github.com/Mohisvst29/moal/middlewares"
	"github.com/Mohisvst29/moal/repository"
	"github.com/Mohisvst29/moal/services"

	"github.com/gin-gonic/gin"
)

// Deps carries the wired services; Reviews may be nil when the remote DB is
// not configured.
type Deps struct {
	Catalog  *services.CatalogService
	Cart     *services.CartService
	Checkout *services.CheckoutService
	Admin    *services.AdminService
	Auth     *services.AuthService
	Reviews  *repository.ReviewRepository
}

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, d *Deps) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Controllers
	menuCtrl := controllers.NewMenuController(d.Catalog)
	cartCtrl := controllers.NewCartController(d.Catalog, d.Cart, d.Checkout)
	adminCtrl := controllers.NewAdminController(d.Admin)
	reviewCtrl := controllers.NewReviewController(d.Reviews)
	authCtrl := controllers.NewAuthController(d.Auth)

	// Auth (public)
	r.POST("/auth/login", authCtrl.Login)

	// Menu (public, always renderable)
	r.GET("/menu", menuCtrl.Sections)
	r.GET("/menu/status", menuCtrl.Status)
	r.POST("/menu/refresh", menuCtrl.Refresh)

	// Cart (per visitor session, X-Session-ID header)
	cart := r.Group("/cart")
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items", cartCtrl.UpdateQuantity)
		cart.DELETE("/items", cartCtrl.Remove)
		cart.DELETE("", cartCtrl.Clear)
		cart.PATCH("/table", cartCtrl.SetTable)
		cart.PATCH("/open", cartCtrl.SetOpen)
		cart.POST("/checkout", cartCtrl.CheckoutHandoff)
	}

	// Reviews (public)
	r.GET("/reviews", reviewCtrl.ListApproved)
	r.POST("/reviews", reviewCtrl.Create)

	// Admin (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/catalog", adminCtrl.Catalog)

		admin.POST("/sections", adminCtrl.CreateSection)
		admin.PATCH("/sections/:id", adminCtrl.UpdateSection)
		admin.DELETE("/sections/:id", adminCtrl.DeleteSection)

		admin.POST("/items", adminCtrl.CreateItem)
		admin.PATCH("/items/:id", adminCtrl.UpdateItem)
		admin.DELETE("/items/:id", adminCtrl.DeleteItem)

		admin.POST("/offers", adminCtrl.CreateOffer)
		admin.PATCH("/offers/:id", adminCtrl.UpdateOffer)
		admin.DELETE("/offers/:id", adminCtrl.DeleteOffer)

		admin.GET("/reviews", reviewCtrl.ListAll)
		admin.PATCH("/reviews/:id/approve", reviewCtrl.Approve)
		admin.DELETE("/reviews/:id", reviewCtrl.Delete)
	}
}
