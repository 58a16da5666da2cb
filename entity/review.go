package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is hidden from the public list until an admin approves it.
type Review struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	CustomerName string `gorm:"not null" json:"customer_name"`
	Rating       int    `gorm:"not null" json:"rating"`
	Comment      string `json:"comment"`
	Approved     bool   `gorm:"not null;default:false" json:"approved"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
