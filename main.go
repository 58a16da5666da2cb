package main

import (
	"fmt"
	"log"

	"github.com/Mohisvst29/moal/configs"
	"github.com/Mohisvst29/moal/middlewares"
	"github.com/Mohisvst29/moal/repository"
	"github.com/Mohisvst29/moal/routes"
	"github.com/Mohisvst29/moal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// Remote catalog DB. Unreachable or unconfigured is fine: the menu keeps
	// serving the bundled baseline and only admin writes are unavailable.
	var (
		catalogRepo *repository.CatalogRepository
		sectionRepo *repository.SectionRepository
		itemRepo    *repository.ItemRepository
		offerRepo   *repository.OfferRepository
		reviewRepo  *repository.ReviewRepository
	)
	if err := configs.ConnectDB(cfg); err != nil {
		log.Println("⚠️ remote catalog unavailable:", err)
	} else {
		if err := configs.SetupDatabase(); err != nil {
			log.Fatalf("migrate failed: %v", err)
		}
		if cfg.SeedBaseline {
			if err := configs.SeedBaseline(); err != nil {
				log.Fatalf("seed baseline failed: %v", err)
			}
		}
		db := configs.DB()
		catalogRepo = repository.NewCatalogRepository(db)
		sectionRepo = repository.NewSectionRepository(db)
		itemRepo = repository.NewItemRepository(db)
		offerRepo = repository.NewOfferRepository(db)
		reviewRepo = repository.NewReviewRepository(db)
	}

	catalogSvc := services.NewCatalogService(catalogRepo)
	catalogSvc.Refresh() // initial probe→fetch→resolve

	cartSvc := services.NewCartService()
	checkoutSvc := services.NewCheckoutService(cfg.CafeName, cfg.WhatsAppNumber)
	adminSvc := services.NewAdminService(sectionRepo, itemRepo, offerRepo, catalogSvc)
	authSvc := services.NewAuthService(cfg.AdminEmail, cfg.AdminPassword, cfg.JWTSecret, cfg.JWTTTL)

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, cfg, &routes.Deps{
		Catalog:  catalogSvc,
		Cart:     cartSvc,
		Checkout: checkoutSvc,
		Admin:    adminSvc,
		Auth:     authSvc,
		Reviews:  reviewRepo,
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
