package repository

import (
	"github.com/Mohisvst29/moal/entity"
	"gorm.io/gorm"
)

type SectionRepository struct {
	DB *gorm.DB
}

func NewSectionRepository(db *gorm.DB) *SectionRepository {
	return &SectionRepository{DB: db}
}

func (r *SectionRepository) FindAll() ([]entity.MenuSection, error) {
	var sections []entity.MenuSection
	err := r.DB.Order("order_index").Find(&sections).Error
	return sections, err
}

func (r *SectionRepository) Create(section *entity.MenuSection) error {
	return r.DB.Create(section).Error
}

func (r *SectionRepository) Update(id string, fields map[string]any) error {
	return r.DB.Model(&entity.MenuSection{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes the section and everything under it.
func (r *SectionRepository) Delete(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var itemIDs []string
		if err := tx.Model(&entity.MenuItem{}).Where("section_id = ?", id).Pluck("id", &itemIDs).Error; err != nil {
			return err
		}
		if len(itemIDs) > 0 {
			if err := tx.Where("item_id IN ?", itemIDs).Delete(&entity.MenuItemSize{}).Error; err != nil {
				return err
			}
			if err := tx.Where("section_id = ?", id).Delete(&entity.MenuItem{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&entity.MenuSection{}, "id = ?", id).Error
	})
}
