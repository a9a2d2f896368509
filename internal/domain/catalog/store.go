package catalog

import (
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Store owns the canonical ordered product list. It is safe for concurrent
// use and must be constructed with NewStore and passed explicitly to its
// consumers.
//
// Every mutation writes a full-list snapshot through the Snapshotter. Write
// failures are logged and swallowed: the snapshot is a cache, and a failed
// write must never block the in-memory mutation.
type Store struct {
	mu       sync.RWMutex
	products []Product
	snap     Snapshotter
	lg       *zap.Logger
}

// Metrics summarizes the catalog for the admin dashboard.
type Metrics struct {
	TotalProducts int
	TotalValue    decimal.Decimal
	TopCategory   string
}

// NewStore builds a Store from the snapshotter's last saved list. A missing,
// empty, or unreadable snapshot silently falls back to the seed list;
// corrupted state never fails construction.
func NewStore(snap Snapshotter, lg *zap.Logger) *Store {
	if lg == nil {
		lg = zap.NewNop()
	}
	s := &Store{snap: snap, lg: lg}

	products, err := snap.Load()
	if err != nil || len(products) == 0 {
		if err != nil {
			lg.Debug("catalog snapshot unavailable, using seed list", zap.Error(err))
		}
		products = Seed()
	}
	s.products = products
	return s
}

// List returns value copies of all products in order. The optional category
// filters to a single category; limit > 0 caps the result length.
func (s *Store) List(category string, limit int) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, copyProduct(p))
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Get returns a copy of the product with the given id.
func (s *Store) Get(id string) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return copyProduct(p), nil
		}
	}
	return Product{}, ErrNotFound
}

// Len returns the number of products in the catalog.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// Categories returns the distinct categories in list order.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{}, len(s.products))
	out := make([]string, 0, len(s.products))
	for _, p := range s.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// Add prepends a product, so recently added items list first.
func (s *Store) Add(p Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append([]Product{copyProduct(p)}, s.products...)
	s.persistLocked()
}

// Update merges the patch onto the matching product, leaving nil patch
// fields unchanged. Missing ids are a no-op.
func (s *Store) Update(id string, patch Patch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		applyPatch(&s.products[i], patch)
		s.persistLocked()
		return
	}
}

// Remove deletes the matching product. Missing ids are a no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.persistLocked()
			return
		}
	}
}

// Upsert merges the product onto an existing entry with the same id,
// preserving its list position; when no entry matches it prepends the
// product as new. On merge, zero-valued fields (empty strings, zero price,
// nil highlights) are treated as unsupplied and leave the prior entry's
// fields intact.
func (s *Store) Upsert(p Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == p.ID {
			mergeProduct(&s.products[i], p)
			s.persistLocked()
			return
		}
	}
	s.products = append([]Product{copyProduct(p)}, s.products...)
	s.persistLocked()
}

// SetAll replaces the whole list, used when a full remote snapshot arrives.
func (s *Store) SetAll(products []Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Product, len(products))
	for i, p := range products {
		next[i] = copyProduct(p)
	}
	s.products = next
	s.persistLocked()
}

// Metrics computes the admin dashboard totals. TopCategory is the most
// frequent category, earliest list position winning ties.
func (s *Store) Metrics() Metrics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m := Metrics{TotalProducts: len(s.products), TotalValue: decimal.Zero}
	counts := make(map[string]int, len(s.products))
	best := 0
	for _, p := range s.products {
		m.TotalValue = m.TotalValue.Add(p.Price)
		counts[p.Category]++
		if counts[p.Category] > best {
			best = counts[p.Category]
			m.TopCategory = p.Category
		}
	}
	return m
}

// persistLocked snapshots the current list. Callers must hold s.mu.
func (s *Store) persistLocked() {
	if s.snap == nil {
		return
	}
	if err := s.snap.Save(s.products); err != nil {
		s.lg.Warn("catalog snapshot write failed", zap.Error(err))
	}
}

func applyPatch(p *Product, patch Patch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Highlights != nil {
		p.Highlights = append([]string(nil), (*patch.Highlights)...)
	}
}

// mergeProduct overlays the supplied fields of src onto dst.
func mergeProduct(dst *Product, src Product) {
	if src.Name != "" {
		dst.Name = src.Name
	}
	if src.Category != "" {
		dst.Category = src.Category
	}
	if !src.Price.IsZero() {
		dst.Price = src.Price
	}
	if src.Image != "" {
		dst.Image = src.Image
	}
	if src.Description != "" {
		dst.Description = src.Description
	}
	if src.Highlights != nil {
		dst.Highlights = append([]string(nil), src.Highlights...)
	}
}

// copyProduct deep-copies a product so callers cannot alias store state
// through the Highlights slice.
func copyProduct(p Product) Product {
	p.Highlights = append([]string(nil), p.Highlights...)
	return p
}
