package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MenuItemSize struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	ItemID    string    `gorm:"size:36;index;not null" json:"item_id"`
	Size      string    `gorm:"not null" json:"size"`
	Price     int64     `gorm:"not null" json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *MenuItemSize) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
