package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MenuItem struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	SectionID   string `gorm:"size:36;index;not null" json:"section_id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description,omitempty"`
	Price       int64  `gorm:"not null" json:"price"`
	Calories    int    `json:"calories,omitempty"`
	Image       string `json:"image,omitempty"`
	Popular     bool   `gorm:"not null;default:false" json:"popular"`
	New         bool   `gorm:"column:new;not null;default:false" json:"new"`
	Available   bool   `gorm:"not null;default:true" json:"available"`
	OrderIndex  int    `gorm:"not null;default:0" json:"order_index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Section MenuSection `json:"-"`

	// sizes are replaced wholesale on item update, never diffed
	Sizes []MenuItemSize `gorm:"foreignKey:ItemID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"sizes,omitempty"`
}

func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
