package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohisvst29/moal/catalog"
	"github.com/Mohisvst29/moal/repository"
)

func TestAdminUnavailableWithoutRemote(t *testing.T) {
	svc := NewAdminService(nil, nil, nil, NewCatalogService(nil))

	_, _, _, err := svc.ListAll()
	assert.ErrorIs(t, err, ErrCatalogUnavailable)

	_, err = svc.CreateSection(&SectionIn{Title: "x"})
	assert.ErrorIs(t, err, ErrCatalogUnavailable)

	err = svc.DeleteItem("item-1")
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
}

func TestAdminCreateSectionRefreshesCatalog(t *testing.T) {
	_, catalogSvc, adminSvc := newTestStack(t)
	catalogSvc.Refresh()

	section, err := adminSvc.CreateSection(&SectionIn{Title: "  حلويات  ", Icon: "🍰", OrderIndex: 1})
	require.NoError(t, err)
	assert.Equal(t, "حلويات", section.Title, "titles are trimmed")
	assert.NotEmpty(t, section.ID)

	// the write already re-derived the served catalog
	var found bool
	for _, sec := range catalogSvc.Sections() {
		if sec.ID == section.ID {
			found = true
		}
	}
	assert.True(t, found)
}

func TestAdminItemLifecycle(t *testing.T) {
	db, catalogSvc, adminSvc := newTestStack(t)

	section, err := adminSvc.CreateSection(&SectionIn{Title: "الشاي", OrderIndex: 1})
	require.NoError(t, err)

	item, err := adminSvc.CreateItem(&ItemIn{
		SectionID: section.ID,
		Name:      "شاي أتاي",
		Price:     8,
		Sizes:     []SizeIn{{Size: "براد صغير", Price: 8}, {Size: "براد كبير", Price: 25}},
	})
	require.NoError(t, err)
	assert.True(t, item.Available, "available defaults to true")

	got, ok := catalogSvc.FindItem(item.ID)
	require.True(t, ok)
	require.Len(t, got.Sizes, 2)

	// replace-all: the request's sizes array becomes the full set
	err = adminSvc.UpdateItem(item.ID, &ItemIn{
		SectionID: section.ID,
		Name:      "شاي أتاي",
		Price:     8,
		Sizes:     []SizeIn{{Size: "وسط", Price: 10}},
	})
	require.NoError(t, err)

	stored, err := repository.NewItemRepository(db).FindByID(item.ID)
	require.NoError(t, err)
	require.Len(t, stored.Sizes, 1)
	assert.Equal(t, "وسط", stored.Sizes[0].Size)

	// hide it: the admin list still has it, the menu does not
	hidden := false
	err = adminSvc.UpdateItem(item.ID, &ItemIn{
		SectionID: section.ID,
		Name:      "شاي أتاي",
		Price:     8,
		Available: &hidden,
	})
	require.NoError(t, err)

	_, ok = catalogSvc.FindItem(item.ID)
	assert.False(t, ok)
	_, items, _, err := adminSvc.ListAll()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.False(t, items[0].Available)

	require.NoError(t, adminSvc.DeleteItem(item.ID))
	_, items, _, err = adminSvc.ListAll()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAdminRejectsDuplicateSizeLabels(t *testing.T) {
	_, _, adminSvc := newTestStack(t)

	_, err := adminSvc.CreateItem(&ItemIn{
		SectionID: "s1",
		Name:      "شاي",
		Price:     8,
		Sizes:     []SizeIn{{Size: "كبير", Price: 10}, {Size: " كبير ", Price: 12}},
	})
	assert.ErrorIs(t, err, ErrDuplicateSize)
}

func TestAdminOfferPriceGuard(t *testing.T) {
	_, catalogSvc, adminSvc := newTestStack(t)

	_, err := adminSvc.CreateOffer(&OfferIn{Title: "x", OriginalPrice: 30, OfferPrice: 30})
	assert.ErrorIs(t, err, ErrOfferPrice)
	_, err = adminSvc.CreateOffer(&OfferIn{Title: "x", OriginalPrice: 30, OfferPrice: 35})
	assert.ErrorIs(t, err, ErrOfferPrice)

	offer, err := adminSvc.CreateOffer(&OfferIn{Title: "عرض الإفطار", OriginalPrice: 43, OfferPrice: 35})
	require.NoError(t, err)
	assert.True(t, offer.Active, "active defaults to true")

	err = adminSvc.UpdateOffer(offer.ID, &OfferIn{Title: "عرض الإفطار", OriginalPrice: 43, OfferPrice: 50})
	assert.ErrorIs(t, err, ErrOfferPrice)

	catalogSvc.Refresh()
	got, ok := catalogSvc.FindItem(offer.ID)
	require.True(t, ok)
	assert.True(t, got.IsOffer)
	assert.Equal(t, int64(35), got.Price)
	assert.Equal(t, int64(43), got.OriginalPrice)
}

func TestAdminDeactivatedOfferLeavesMenu(t *testing.T) {
	_, catalogSvc, adminSvc := newTestStack(t)

	offer, err := adminSvc.CreateOffer(&OfferIn{Title: "عرض", OriginalPrice: 40, OfferPrice: 30})
	require.NoError(t, err)

	inactive := false
	err = adminSvc.UpdateOffer(offer.ID, &OfferIn{
		Title: "عرض", OriginalPrice: 40, OfferPrice: 30, Active: &inactive,
	})
	require.NoError(t, err)

	// the offer row still exists, so the baseline offers do not take over;
	// the offers section just disappears
	sections := catalogSvc.Sections()
	require.NotEmpty(t, sections)
	assert.NotEqual(t, catalog.OffersSectionID, sections[0].ID)
	_, ok := catalog.FindItem(sections, offer.ID)
	assert.False(t, ok)
}
