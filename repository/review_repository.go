package repository

import (
	"github.com/Mohisvst29/moal/entity"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(review *entity.Review) error {
	return r.DB.Create(review).Error
}

// FindApproved is the public list: approved only, newest first.
func (r *ReviewRepository) FindApproved(limit int) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.Where("approved = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) FindAll() ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) SetApproved(id string, approved bool) error {
	return r.DB.Model(&entity.Review{}).Where("id = ?", id).Update("approved", approved).Error
}

func (r *ReviewRepository) Delete(id string) error {
	return r.DB.Delete(&entity.Review{}, "id = ?", id).Error
}
