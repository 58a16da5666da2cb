package configs

import (
	"log"

	"github.com/Mohisvst29/moal/catalog"
	"github.com/Mohisvst29/moal/entity"
)

// SeedBaseline copies the bundled baseline catalog into an empty remote DB
// so a fresh deployment has something to edit. Gated by SEED_BASELINE and
// skipped whenever any section already exists.
func SeedBaseline() error {
	db := DB()
	snap := catalog.Fallback()

	var count int64
	if err := db.Model(&entity.MenuSection{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("ℹ️ catalog already has sections, skipping baseline seed")
		return nil
	}

	for _, sec := range snap.Sections {
		s := sec
		s.Items = nil
		if err := db.Create(&s).Error; err != nil {
			return err
		}
	}
	for _, it := range snap.Items {
		item := it
		// fresh size rows per item: the baseline shares size slices
		item.Sizes = nil
		for _, sz := range it.Sizes {
			item.Sizes = append(item.Sizes, entity.MenuItemSize{Size: sz.Size, Price: sz.Price})
		}
		if err := db.Create(&item).Error; err != nil {
			return err
		}
	}
	for _, off := range snap.Offers {
		o := off
		if err := db.Create(&o).Error; err != nil {
			return err
		}
	}

	log.Println("✅ baseline catalog seeded:", len(snap.Sections), "sections,", len(snap.Items), "items,", len(snap.Offers), "offers")
	return nil
}
