package repository

import (
	"github.com/Mohisvst29/moal/entity"
	"gorm.io/gorm"
)

type ItemRepository struct {
	DB *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{DB: db}
}

func (r *ItemRepository) FindAll() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Preload("Sizes", func(db *gorm.DB) *gorm.DB { return db.Order("created_at") }).
		Order("order_index").
		Find(&items).Error
	return items, err
}

func (r *ItemRepository) FindByID(id string) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.DB.Preload("Sizes").First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

// Update writes the item fields and, when sizes is non-nil, replaces the
// size rows wholesale: delete all, insert the new set. nil means the caller
// did not touch sizes; an empty slice clears them.
func (r *ItemRepository) Update(id string, fields map[string]any, sizes []entity.MenuItemSize) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return err
		}
		if sizes == nil {
			return nil
		}
		if err := tx.Where("item_id = ?", id).Delete(&entity.MenuItemSize{}).Error; err != nil {
			return err
		}
		if len(sizes) == 0 {
			return nil
		}
		for i := range sizes {
			sizes[i].ItemID = id
			sizes[i].ID = ""
		}
		return tx.Create(&sizes).Error
	})
}

func (r *ItemRepository) Delete(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", id).Delete(&entity.MenuItemSize{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.MenuItem{}, "id = ?", id).Error
	})
}
