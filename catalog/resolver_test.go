package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohisvst29/moal/entity"
)

func TestResolveNeverEmpty(t *testing.T) {
	cases := []struct {
		name string
		conn Connectivity
	}{
		{"unknown", ConnectivityUnknown},
		{"disconnected", ConnectivityDisconnected},
		{"connected but empty", ConnectivityConnected},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sections := Resolve(tc.conn, Snapshot{}, Fallback())
			require.NotEmpty(t, sections)
			for _, sec := range sections {
				for _, it := range sec.Items {
					assert.True(t, it.Available, "section %s item %s", sec.ID, it.Name)
				}
			}
		})
	}
}

// A disconnected resolve and a connected resolve over identical collections
// must produce structurally identical output: the UI cannot tell where the
// data came from.
func TestResolveStructuralEquivalence(t *testing.T) {
	fromFallback := Resolve(ConnectivityDisconnected, Snapshot{}, Fallback())
	fromFetched := Resolve(ConnectivityConnected, Fallback(), Snapshot{})
	assert.Equal(t, fromFallback, fromFetched)
}

func TestResolvePerCollectionFallback(t *testing.T) {
	// remote has sections (one of them shadowing a baseline section id) but
	// no items or offers: items and offers still come from the baseline
	fetched := Snapshot{
		Sections: []entity.MenuSection{
			{ID: "section-tea", Title: "الشاي", Icon: "🍵", OrderIndex: 1},
		},
	}
	sections := Resolve(ConnectivityConnected, fetched, Fallback())

	var tea *Section
	for i := range sections {
		if sections[i].ID == "section-tea" {
			tea = &sections[i]
		}
	}
	require.NotNil(t, tea)
	assert.NotEmpty(t, tea.Items, "baseline items attach to fetched sections")

	require.Equal(t, OffersSectionID, sections[0].ID, "baseline offers still surface")
}

func TestResolveAttachesItemsBySection(t *testing.T) {
	fetched := Snapshot{
		Sections: []entity.MenuSection{
			{ID: "s1", Title: "Coffee", OrderIndex: 1},
			{ID: "s2", Title: "Tea", OrderIndex: 2},
		},
		Items: []entity.MenuItem{
			{ID: "i1", SectionID: "s1", Name: "Latte", Price: 16, Available: true, OrderIndex: 2},
			{ID: "i2", SectionID: "s1", Name: "Espresso", Price: 12, Available: true, OrderIndex: 1},
			{ID: "i3", SectionID: "s1", Name: "Gone", Price: 9, Available: false, OrderIndex: 3},
			{ID: "i4", SectionID: "s2", Name: "Atay", Price: 8, Available: true, OrderIndex: 1},
		},
		Offers: []entity.SpecialOffer{{ID: "noop", Active: false}},
	}

	sections := Resolve(ConnectivityConnected, fetched, Fallback())
	require.Len(t, sections, 2) // no offers section: the only offer is inactive

	require.Equal(t, "s1", sections[0].ID)
	require.Len(t, sections[0].Items, 2, "unavailable items are dropped")
	assert.Equal(t, "Espresso", sections[0].Items[0].Name, "order_index decides item order")
	assert.Equal(t, "Latte", sections[0].Items[1].Name)

	require.Len(t, sections[1].Items, 1)
	assert.Equal(t, "Atay", sections[1].Items[0].Name)
}

func TestResolveSectionOrdering(t *testing.T) {
	fetched := Snapshot{
		Sections: []entity.MenuSection{
			{ID: "b", Title: "B", OrderIndex: 5},
			{ID: "a", Title: "A", OrderIndex: 1},
		},
		Items:  []entity.MenuItem{{ID: "i", SectionID: "a", Name: "x", Price: 1, Available: true}},
		Offers: []entity.SpecialOffer{{ID: "no", Active: false}},
	}
	sections := Resolve(ConnectivityConnected, fetched, Fallback())
	require.Len(t, sections, 2)
	assert.Equal(t, "a", sections[0].ID)
	assert.Equal(t, "b", sections[1].ID)
}

func TestResolveOffersSection(t *testing.T) {
	fetched := Snapshot{
		Sections: []entity.MenuSection{{ID: "s1", Title: "Coffee"}},
		Items:    []entity.MenuItem{{ID: "i1", SectionID: "s1", Name: "Latte", Price: 16, Available: true}},
		Offers: []entity.SpecialOffer{
			{ID: "good", Title: "Breakfast", OriginalPrice: 43, OfferPrice: 35, Active: true},
			{ID: "inactive", Title: "Off", OriginalPrice: 40, OfferPrice: 30, Active: false},
			{ID: "not-a-discount", Title: "Scam", OriginalPrice: 30, OfferPrice: 30, Active: true},
			{ID: "worse", Title: "Worse", OriginalPrice: 30, OfferPrice: 35, Active: true},
		},
	}

	sections := Resolve(ConnectivityConnected, fetched, Fallback())
	require.Equal(t, OffersSectionID, sections[0].ID)

	offers := sections[0].Items
	require.Len(t, offers, 1, "inactive and non-discount offers never surface")
	got := offers[0]
	assert.Equal(t, "good", got.ID)
	assert.Equal(t, int64(35), got.Price)
	assert.Equal(t, int64(43), got.OriginalPrice)
	assert.True(t, got.IsOffer)
	assert.True(t, got.Popular)
	assert.True(t, got.New)
	assert.True(t, got.Available)
}

func TestResolveSizesCarriedOver(t *testing.T) {
	fetched := Snapshot{
		Sections: []entity.MenuSection{{ID: "s1", Title: "Tea"}},
		Items: []entity.MenuItem{{
			ID: "i1", SectionID: "s1", Name: "Atay", Price: 8, Available: true,
			Sizes: []entity.MenuItemSize{
				{Size: "S", Price: 8},
				{Size: "L", Price: 25},
			},
		}},
		Offers: []entity.SpecialOffer{{ID: "no", Active: false}},
	}
	sections := Resolve(ConnectivityConnected, fetched, Fallback())
	require.Len(t, sections, 1)
	require.Len(t, sections[0].Items, 1)
	assert.Equal(t, []SizeOption{{Size: "S", Price: 8}, {Size: "L", Price: 25}}, sections[0].Items[0].Sizes)
}

func TestFindItem(t *testing.T) {
	sections := Resolve(ConnectivityDisconnected, Snapshot{}, Fallback())

	it, ok := FindItem(sections, "item-10")
	require.True(t, ok)
	assert.Equal(t, "لاتيه", it.Name)

	offer, ok := FindItem(sections, "offer-1")
	require.True(t, ok)
	assert.True(t, offer.IsOffer)

	_, ok = FindItem(sections, "nope")
	assert.False(t, ok)
}
