package repository

import (
	"github.com/Mohisvst29/moal/entity"
	"gorm.io/gorm"
)

type OfferRepository struct {
	DB *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{DB: db}
}

func (r *OfferRepository) FindAll() ([]entity.SpecialOffer, error) {
	var offers []entity.SpecialOffer
	err := r.DB.Order("created_at DESC").Find(&offers).Error
	return offers, err
}

func (r *OfferRepository) Create(offer *entity.SpecialOffer) error {
	return r.DB.Create(offer).Error
}

func (r *OfferRepository) Update(id string, fields map[string]any) error {
	return r.DB.Model(&entity.SpecialOffer{}).Where("id = ?", id).Updates(fields).Error
}

func (r *OfferRepository) Delete(id string) error {
	return r.DB.Delete(&entity.SpecialOffer{}, "id = ?", id).Error
}
