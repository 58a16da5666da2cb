package services

import (
	"errors"
	"strings"

	"github.com/Mohisvst29/moal/entity"
	"github.com/Mohisvst29/moal/repository"
)

var (
	// ErrCatalogUnavailable means the remote DB was never configured or never
	// came up; admin writes have nowhere to go (browsing still works).
	ErrCatalogUnavailable = errors.New("remote catalog not available")
	ErrOfferPrice         = errors.New("offer price must be below the original price")
	ErrDuplicateSize      = errors.New("size labels must be unique within an item")
)

type SectionIn struct {
	Title      string `json:"title" binding:"required"`
	Icon       string `json:"icon"`
	Image      string `json:"image"`
	OrderIndex int    `json:"order_index"`
}

type SizeIn struct {
	Size  string `json:"size" binding:"required"`
	Price int64  `json:"price" binding:"required,min=1"`
}

type ItemIn struct {
	SectionID   string   `json:"section_id" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       int64    `json:"price" binding:"required,min=1"`
	Calories    int      `json:"calories"`
	Image       string   `json:"image"`
	Popular     bool     `json:"popular"`
	New         bool     `json:"new"`
	Available   *bool    `json:"available"`
	OrderIndex  int      `json:"order_index"`
	Sizes       []SizeIn `json:"sizes"` // nil = untouched on update, [] = clear
}

type OfferIn struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	OriginalPrice int64  `json:"original_price" binding:"required,min=1"`
	OfferPrice    int64  `json:"offer_price" binding:"required,min=1"`
	ValidUntil    string `json:"valid_until"`
	Image         string `json:"image"`
	Calories      int    `json:"calories"`
	Active        *bool  `json:"active"`
}

// AdminService is the mutation side of the catalog. Every successful write
// triggers a full refetch-and-rederive; nothing ever patches the served
// snapshot directly.
type AdminService struct {
	Sections *repository.SectionRepository
	Items    *repository.ItemRepository
	Offers   *repository.OfferRepository
	Catalog  *CatalogService
}

func NewAdminService(sr *repository.SectionRepository, ir *repository.ItemRepository, or *repository.OfferRepository, cs *CatalogService) *AdminService {
	return &AdminService{Sections: sr, Items: ir, Offers: or, Catalog: cs}
}

func (s *AdminService) available() bool {
	return s.Sections != nil && s.Items != nil && s.Offers != nil
}

// ListAll returns the raw collections for the admin panel (no fallback
// merging, unavailable items included).
func (s *AdminService) ListAll() ([]entity.MenuSection, []entity.MenuItem, []entity.SpecialOffer, error) {
	if !s.available() {
		return nil, nil, nil, ErrCatalogUnavailable
	}
	sections, err := s.Sections.FindAll()
	if err != nil {
		return nil, nil, nil, err
	}
	items, err := s.Items.FindAll()
	if err != nil {
		return nil, nil, nil, err
	}
	offers, err := s.Offers.FindAll()
	if err != nil {
		return nil, nil, nil, err
	}
	return sections, items, offers, nil
}

func (s *AdminService) CreateSection(in *SectionIn) (*entity.MenuSection, error) {
	if !s.available() {
		return nil, ErrCatalogUnavailable
	}
	section := &entity.MenuSection{
		Title:      strings.TrimSpace(in.Title),
		Icon:       in.Icon,
		Image:      in.Image,
		OrderIndex: in.OrderIndex,
	}
	if err := s.Sections.Create(section); err != nil {
		return nil, err
	}
	s.Catalog.Refresh()
	return section, nil
}

func (s *AdminService) UpdateSection(id string, in *SectionIn) error {
	if !s.available() {
		return ErrCatalogUnavailable
	}
	fields := map[string]any{
		"title":       strings.TrimSpace(in.Title),
		"icon":        in.Icon,
		"image":       in.Image,
		"order_index": in.OrderIndex,
	}
	if err := s.Sections.Update(id, fields); err != nil {
		return err
	}
	s.Catalog.Refresh()
	return nil
}

func (s *AdminService) DeleteSection(id string) error {
	if !s.available() {
		return ErrCatalogUnavailable
	}
	if err := s.Sections.Delete(id); err != nil {
		return err
	}
	s.Catalog.Refresh()
	return nil
}

func validateSizes(sizes []SizeIn) error {
	seen := map[string]bool{}
	for _, sz := range sizes {
		label := strings.TrimSpace(sz.Size)
		if seen[label] {
			return ErrDuplicateSize
		}
		seen[label] = true
	}
	return nil
}

func (s *AdminService) CreateItem(in *ItemIn) (*entity.MenuItem, error) {
	if !s.available() {
		return nil, ErrCatalogUnavailable
	}
	if err := validateSizes(in.Sizes); err != nil {
		return nil, err
	}

	available := true
	if in.Available != nil {
		available = *in.Available
	}
	item := &entity.MenuItem{
		SectionID:   in.SectionID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Calories:    in.Calories,
		Image:       in.Image,
		Popular:     in.Popular,
		New:         in.New,
		Available:   available,
		OrderIndex:  in.OrderIndex,
	}
	for _, sz := range in.Sizes {
		item.Sizes = append(item.Sizes, entity.MenuItemSize{Size: strings.TrimSpace(sz.Size), Price: sz.Price})
	}
	if err := s.Items.Create(item); err != nil {
		return nil, err
	}
	s.Catalog.Refresh()
	return item, nil
}

// UpdateItem writes the item fields; when the request carries a sizes array
// the item's size rows are replaced wholesale, never merged.
func (s *AdminService) UpdateItem(id string, in *ItemIn) error {
	if !s.available() {
		return ErrCatalogUnavailable
	}
	if err := validateSizes(in.Sizes); err != nil {
		return err
	}

	fields := map[string]any{
		"section_id":  in.SectionID,
		"name":        strings.TrimSpace(in.Name),
		"description": in.Description,
		"price":       in.Price,
		"calories":    in.Calories,
		"image":       in.Image,
		"popular":     in.Popular,
		"new":         in.New,
		"order_index": in.OrderIndex,
	}
	if in.Available != nil {
		fields["available"] = *in.Available
	}

	var sizes []entity.MenuItemSize
	if in.Sizes != nil {
		sizes = make([]entity.MenuItemSize, 0, len(in.Sizes))
		for _, sz := range in.Sizes {
			sizes = append(sizes, entity.MenuItemSize{Size: strings.TrimSpace(sz.Size), Price: sz.Price})
		}
	}

	if err := s.Items.Update(id, fields, sizes); err != nil {
		return err
	}
	s.Catalog.Refresh()
	return nil
}

func (s *AdminService) DeleteItem(id string) error {
	if !s.available() {
		return ErrCatalogUnavailable
	}
	if err := s.Items.Delete(id); err != nil {
		return err
	}
	s.Catalog.Refresh()
	return nil
}

func (s *AdminService) CreateOffer(in *OfferIn) (*entity.SpecialOffer, error) {
	if !s.available() {
		return nil, ErrCatalogUnavailable
	}
	if in.OfferPrice >= in.OriginalPrice {
		return nil, ErrOfferPrice
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}
	offer := &entity.SpecialOffer{
		Title:         strings.TrimSpace(in.Title),
		Description:   in.Description,
		OriginalPrice: in.OriginalPrice,
		OfferPrice:    in.OfferPrice,
		ValidUntil:    in.ValidUntil,
		Image:         in.Image,
		Calories:      in.Calories,
		Active:        active,
	}
	if err := s.Offers.Create(offer); err != nil {
		return nil, err
	}
	s.Catalog.Refresh()
	return offer, nil
}

func (s *AdminService) UpdateOffer(id string, in *OfferIn) error {
	if !s.available() {
		return ErrCatalogUnavailable
	}
	if in.OfferPrice >= in.OriginalPrice {
		return ErrOfferPrice
	}

	fields := map[string]any{
		"title":          strings.TrimSpace(in.Title),
		"description":    in.Description,
		"original_price": in.OriginalPrice,
		"offer_price":    in.OfferPrice,
		"valid_until":    in.ValidUntil,
		"image":          in.Image,
		"calories":       in.Calories,
	}
	if in.Active != nil {
		fields["active"] = *in.Active
	}
	if err := s.Offers.Update(id, fields); err != nil {
		return err
	}
	s.Catalog.Refresh()
	return nil
}

func (s *AdminService) DeleteOffer(id string) error {
	if !s.available() {
		return ErrCatalogUnavailable
	}
	if err := s.Offers.Delete(id); err != nil {
		return err
	}
	s.Catalog.Refresh()
	return nil
}
