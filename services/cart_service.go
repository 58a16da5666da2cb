package services

import (
	"sync"

	"github.com/Mohisvst29/moal/catalog"
)

// LineKey is the composite identity of a cart line: item id plus the chosen
// size label (empty when none). Value equality is the one and only identity
// comparison.
type LineKey struct {
	ItemID string
	Size   string
}

// CartLine denormalizes the item's display fields at add time; later catalog
// refreshes never touch existing lines.
type CartLine struct {
	ItemID    string `json:"item_id"`
	Size      string `json:"size,omitempty"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

func (l CartLine) Key() LineKey {
	return LineKey{ItemID: l.ItemID, Size: l.Size}
}

func (l CartLine) Subtotal() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// Cart is one visitor's session cart. Open and TableNumber are plain UI
// state stored alongside the lines.
type Cart struct {
	Lines       []CartLine `json:"lines"`
	TableNumber string     `json:"table_number"`
	Open        bool       `json:"open"`
}

// CartService keeps all session carts in memory. A restart loses them, which
// is accepted: checkout is a message handoff, not a persisted order.
// Every operation is total — bad input degrades to a no-op, never a panic.
type CartService struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewCartService() *CartService {
	return &CartService{carts: map[string]*Cart{}}
}

func (s *CartService) cart(session string) *Cart {
	c, ok := s.carts[session]
	if !ok {
		c = &Cart{}
		s.carts[session] = c
	}
	return c
}

// Add puts one unit of (item, size) in the cart. A line with the same key
// aggregates quantity instead of duplicating. sizePrice overrides the item's
// base price when a size was chosen; pass 0 to use the base price.
func (s *CartService) Add(session string, item catalog.Item, size string, sizePrice int64) {
	unit := item.Price
	if sizePrice > 0 {
		unit = sizePrice
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(session)

	key := LineKey{ItemID: item.ID, Size: size}
	for i := range c.Lines {
		if c.Lines[i].Key() == key {
			c.Lines[i].Quantity++
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{
		ItemID:    item.ID,
		Size:      size,
		Name:      item.Name,
		Image:     item.Image,
		UnitPrice: unit,
		Quantity:  1,
	})
}

// UpdateQuantity sets the matching line's quantity outright. Zero or less
// removes the line.
func (s *CartService) UpdateQuantity(session, itemID, size string, quantity int) {
	if quantity <= 0 {
		s.Remove(session, itemID, size)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(session)
	key := LineKey{ItemID: itemID, Size: size}
	for i := range c.Lines {
		if c.Lines[i].Key() == key {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes the matching line; removing an absent line is a no-op.
func (s *CartService) Remove(session, itemID, size string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(session)
	key := LineKey{ItemID: itemID, Size: size}
	kept := c.Lines[:0]
	for _, l := range c.Lines {
		if l.Key() != key {
			kept = append(kept, l)
		}
	}
	c.Lines = kept
}

func (s *CartService) Clear(session string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(session).Lines = nil
}

func (s *CartService) SetTable(session, table string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(session).TableNumber = table
}

func (s *CartService) SetOpen(session string, open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(session).Open = open
}

func (s *CartService) TotalPrice(session string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, l := range s.cart(session).Lines {
		total += l.Subtotal()
	}
	return total
}

func (s *CartService) TotalItems(session string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int
	for _, l := range s.cart(session).Lines {
		count += l.Quantity
	}
	return count
}

// Get returns a copy of the cart plus its derived totals.
func (s *CartService) Get(session string) (Cart, int64, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(session)
	out := Cart{
		Lines:       append([]CartLine(nil), c.Lines...),
		TableNumber: c.TableNumber,
		Open:        c.Open,
	}
	var total int64
	var count int
	for _, l := range c.Lines {
		total += l.Subtotal()
		count += l.Quantity
	}
	return out, total, count
}
