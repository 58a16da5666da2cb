package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SpecialOffer struct {
	ID            string `gorm:"primaryKey;size:36" json:"id"`
	Title         string `gorm:"not null" json:"title"`
	Description   string `json:"description"`
	OriginalPrice int64  `gorm:"not null" json:"original_price"`
	OfferPrice    int64  `gorm:"not null" json:"offer_price"`
	ValidUntil    string `json:"valid_until"` // free text, shown as-is
	Image         string `json:"image,omitempty"`
	Calories      int    `json:"calories,omitempty"`
	Active        bool   `gorm:"not null;default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (o *SpecialOffer) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
