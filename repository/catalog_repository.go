package repository

import (
	"github.com/Mohisvst29/moal/entity"
	"gorm.io/gorm"
)

// CatalogRepository is the read side of the remote catalog: the probe plus
// the three fetches the resolver consumes.
type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// Ping is the minimal probe read: one section id, nothing more.
func (r *CatalogRepository) Ping() error {
	var ids []string
	return r.DB.Model(&entity.MenuSection{}).Limit(1).Pluck("id", &ids).Error
}

func (r *CatalogRepository) FetchSections() ([]entity.MenuSection, error) {
	var sections []entity.MenuSection
	err := r.DB.Order("order_index").Find(&sections).Error
	return sections, err
}

// FetchItems returns items joined with their sizes in one logical call.
func (r *CatalogRepository) FetchItems() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Preload("Sizes", func(db *gorm.DB) *gorm.DB { return db.Order("created_at") }).
		Order("order_index").
		Find(&items).Error
	return items, err
}

func (r *CatalogRepository) FetchOffers() ([]entity.SpecialOffer, error) {
	var offers []entity.SpecialOffer
	err := r.DB.Order("created_at DESC").Find(&offers).Error
	return offers, err
}
