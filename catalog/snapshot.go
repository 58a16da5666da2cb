package catalog

import "github.com/Mohisvst29/moal/entity"

// Snapshot holds the three raw collections as fetched (or as bundled, for the
// baseline). It is replaced wholesale on every successful refresh, never
// patched in place.
type Snapshot struct {
	Sections []entity.MenuSection
	Items    []entity.MenuItem
	Offers   []entity.SpecialOffer
}
