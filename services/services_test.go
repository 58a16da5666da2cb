package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Mohisvst29/moal/entity"
	"github.com/Mohisvst29/moal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.MenuSection{},
		&entity.MenuItem{},
		&entity.MenuItemSize{},
		&entity.SpecialOffer{},
		&entity.Review{},
	))
	return db
}

// newTestStack wires repositories, catalog and admin services over one DB.
func newTestStack(t *testing.T) (*gorm.DB, *CatalogService, *AdminService) {
	t.Helper()
	db := newTestDB(t)
	catalogSvc := NewCatalogService(repository.NewCatalogRepository(db))
	adminSvc := NewAdminService(
		repository.NewSectionRepository(db),
		repository.NewItemRepository(db),
		repository.NewOfferRepository(db),
		catalogSvc,
	)
	return db, catalogSvc, adminSvc
}
