package configs

import (
	"errors"
	"fmt"

	"github.com/Mohisvst29/moal/entity"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// ConnectDB opens the remote catalog database. Failure is not fatal: the
// caller keeps serving the bundled baseline and the probe stays disconnected.
func ConnectDB(cfg *Config) error {
	if !cfg.IsCatalogConfigured() {
		return errors.New("catalog database not configured")
	}

	var dial gorm.Dialector
	switch cfg.CatalogDBDriver {
	case "sqlite":
		dial = sqlite.Open(cfg.CatalogDBURL)
	default:
		// the service key is the DSN password, kept out of CATALOG_DB_URL
		dial = postgres.Open(fmt.Sprintf("%s password=%s", cfg.CatalogDBURL, cfg.CatalogDBKey))
	}

	database, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return err
	}
	db = database
	return nil
}

func SetupDatabase() error {
	return db.AutoMigrate(
		&entity.MenuSection{}, &entity.MenuItem{}, &entity.MenuItemSize{},
		&entity.SpecialOffer{},
		&entity.Review{},
	)
}
