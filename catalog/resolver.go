package catalog

import (
	"sort"

	"github.com/Mohisvst29/moal/entity"
)

// OffersSectionID is the identity of the synthetic offers section. It never
// collides with a real section because real IDs are UUIDs.
const OffersSectionID = "special-offers"

const (
	offersSectionTitle = "العروض الخاصة"
	offersSectionIcon  = "🎁"
)

// SizeOption is a (label, price) pair of an item. The label is the only
// identity the cart sees, so labels must be unique within one item (enforced
// by admin validation).
type SizeOption struct {
	Size  string `json:"size"`
	Price int64  `json:"price"`
}

// Item is a menu item in the shape the browsing UI renders. Offers appear as
// items with IsOffer set and OriginalPrice carried for strikethrough display.
type Item struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description,omitempty"`
	Price         int64        `json:"price"`
	Calories      int          `json:"calories,omitempty"`
	Image         string       `json:"image,omitempty"`
	Popular       bool         `json:"popular"`
	New           bool         `json:"new"`
	Available     bool         `json:"available"`
	OrderIndex    int          `json:"order_index"`
	Sizes         []SizeOption `json:"sizes,omitempty"`
	IsOffer       bool         `json:"isOffer,omitempty"`
	OriginalPrice int64        `json:"originalPrice,omitempty"`
}

type Section struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
	Image string `json:"image,omitempty"`
	Items []Item `json:"items"`
}

// Resolve merges the fetched collections with the bundled baseline into the
// renderable section list. It is a pure function of its inputs and is re-run
// whenever any of them change.
//
// Precedence is per collection: a connected catalog with sections but no
// items still gets baseline items, matching the behaviour the site has
// always had.
func Resolve(conn Connectivity, fetched, fallback Snapshot) []Section {
	sections := fetched.Sections
	if conn != ConnectivityConnected || len(sections) == 0 {
		sections = fallback.Sections
	}
	items := fetched.Items
	if conn != ConnectivityConnected || len(items) == 0 {
		items = fallback.Items
	}
	offers := fetched.Offers
	if conn != ConnectivityConnected || len(offers) == 0 {
		offers = fallback.Offers
	}

	out := make([]Section, 0, len(sections)+1)
	if offersSection, ok := resolveOffers(offers); ok {
		out = append(out, offersSection)
	}

	ordered := make([]entity.MenuSection, len(sections))
	copy(ordered, sections)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].OrderIndex < ordered[j].OrderIndex
	})

	for _, sec := range ordered {
		out = append(out, Section{
			ID:    sec.ID,
			Title: sec.Title,
			Icon:  sec.Icon,
			Image: sec.Image,
			Items: resolveItems(sec.ID, items),
		})
	}
	return out
}

func resolveItems(sectionID string, items []entity.MenuItem) []Item {
	picked := make([]Item, 0)
	for _, it := range items {
		if it.SectionID != sectionID || !it.Available {
			continue
		}
		sizes := make([]SizeOption, 0, len(it.Sizes))
		for _, s := range it.Sizes {
			sizes = append(sizes, SizeOption{Size: s.Size, Price: s.Price})
		}
		if len(sizes) == 0 {
			sizes = nil
		}
		picked = append(picked, Item{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Price:       it.Price,
			Calories:    it.Calories,
			Image:       it.Image,
			Popular:     it.Popular,
			New:         it.New,
			Available:   it.Available,
			OrderIndex:  it.OrderIndex,
			Sizes:       sizes,
		})
	}
	sort.SliceStable(picked, func(i, j int) bool {
		return picked[i].OrderIndex < picked[j].OrderIndex
	})
	return picked
}

// resolveOffers builds the synthetic offers section. An offer whose price is
// not strictly below the original is never shown as an offer, whatever the
// data says.
func resolveOffers(offers []entity.SpecialOffer) (Section, bool) {
	items := make([]Item, 0, len(offers))
	for _, o := range offers {
		if !o.Active || o.OfferPrice >= o.OriginalPrice {
			continue
		}
		items = append(items, Item{
			ID:            o.ID,
			Name:          o.Title,
			Description:   o.Description,
			Price:         o.OfferPrice,
			Calories:      o.Calories,
			Image:         o.Image,
			Popular:       true,
			New:           true,
			Available:     true,
			IsOffer:       true,
			OriginalPrice: o.OriginalPrice,
		})
	}
	if len(items) == 0 {
		return Section{}, false
	}
	return Section{
		ID:    OffersSectionID,
		Title: offersSectionTitle,
		Icon:  offersSectionIcon,
		Items: items,
	}, true
}

// FindItem looks an item up in a resolved section list, offers included.
func FindItem(sections []Section, id string) (Item, bool) {
	for _, sec := range sections {
		for _, it := range sec.Items {
			if it.ID == id {
				return it, true
			}
		}
	}
	return Item{}, false
}
