package services

import (
	"log"
	"sync"
	"time"

	"github.com/Mohisvst29/moal/catalog"
	"github.com/Mohisvst29/moal/repository"
)

// CatalogService owns the probe→fetch→resolve cycle. It keeps the latest
// fetched snapshot and re-derives the renderable sections on demand; the
// snapshot itself is only ever replaced wholesale by Refresh.
type CatalogService struct {
	repo     *repository.CatalogRepository // nil when the remote DB is not configured
	fallback catalog.Snapshot

	mu        sync.RWMutex
	conn      catalog.Connectivity
	fetched   catalog.Snapshot
	seq       uint64 // latest dispatched refresh
	refreshed time.Time
}

func NewCatalogService(repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{
		repo:     repo,
		fallback: catalog.Fallback(),
		conn:     catalog.ConnectivityUnknown,
	}
}

// probe never fails upward: configuration gaps, transport errors and auth
// errors all fold into Disconnected.
func (s *CatalogService) probe() catalog.Connectivity {
	if s.repo == nil {
		return catalog.ConnectivityDisconnected
	}
	if err := s.repo.Ping(); err != nil {
		log.Println("⚠️ catalog probe failed:", err)
		return catalog.ConnectivityDisconnected
	}
	return catalog.ConnectivityConnected
}

// Refresh runs the full probe→fetch cycle and installs the result. The three
// fetches run concurrently and fail independently; a branch that errors just
// leaves its collection empty, which the resolver backfills from the
// baseline. A refresh that finishes after a newer one was dispatched is
// discarded.
func (s *CatalogService) Refresh() {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	conn := s.probe()

	var snap catalog.Snapshot
	if conn == catalog.ConnectivityConnected {
		var wg sync.WaitGroup
		wg.Add(3)
		go func() {
			defer wg.Done()
			sections, err := s.repo.FetchSections()
			if err != nil {
				log.Println("⚠️ fetch sections failed:", err)
				return
			}
			snap.Sections = sections
		}()
		go func() {
			defer wg.Done()
			items, err := s.repo.FetchItems()
			if err != nil {
				log.Println("⚠️ fetch items failed:", err)
				return
			}
			snap.Items = items
		}()
		go func() {
			defer wg.Done()
			offers, err := s.repo.FetchOffers()
			if err != nil {
				log.Println("⚠️ fetch offers failed:", err)
				return
			}
			snap.Offers = offers
		}()
		wg.Wait()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.seq {
		log.Println("discarding stale catalog refresh", seq)
		return
	}
	s.conn = conn
	s.fetched = snap
	s.refreshed = time.Now()
}

// Sections re-derives the renderable catalog from the current inputs.
func (s *CatalogService) Sections() []catalog.Section {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return catalog.Resolve(s.conn, s.fetched, s.fallback)
}

// FindItem resolves an item (offers included) for cart denormalization.
func (s *CatalogService) FindItem(id string) (catalog.Item, bool) {
	return catalog.FindItem(s.Sections(), id)
}

type CatalogStatus struct {
	Connectivity  string    `json:"connectivity"`
	UsingFallback bool      `json:"using_fallback"`
	RefreshedAt   time.Time `json:"refreshed_at"`
}

// Status feeds the informational banner: fallback mode is not an error.
func (s *CatalogService) Status() CatalogStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	usingFallback := s.conn != catalog.ConnectivityConnected ||
		len(s.fetched.Sections) == 0 || len(s.fetched.Items) == 0
	return CatalogStatus{
		Connectivity:  s.conn.String(),
		UsingFallback: usingFallback,
		RefreshedAt:   s.refreshed,
	}
}
