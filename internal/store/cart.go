package store

import (
	"sync"

	"github.com/mghkill/burguer-saas/internal/domain"

	"github.com/google/uuid"
)

// CartStore holds the cart line items for the session.
type CartStore interface {
	Items() []domain.CartItem
	Add(item domain.CartItem) domain.CartItem
	Remove(id uuid.UUID)
	UpdateQuantity(id uuid.UUID, quantity int)
	Clear()
	Total() float64
}

type cartStore struct {
	mu    sync.RWMutex
	items []domain.CartItem
}

// NewCartStore creates an empty in-memory cart.
func NewCartStore() CartStore {
	return &cartStore{}
}

func (s *cartStore) Items() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Add appends the item under a freshly generated id.
func (s *cartStore) Add(item domain.CartItem) domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = uuid.New()
	s.items = append(s.items, item)
	return item
}

// Remove filters out the matching entry; a missing id is a no-op.
func (s *cartStore) Remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			items = append(items, item)
		}
	}
	s.items = items
}

// UpdateQuantity rescales the stored total proportionally:
// newTotal = (oldTotal / oldQuantity) * newQuantity. The price is re-derived
// from the line itself, never re-evaluated against the catalog, so it can
// drift under floating-point rounding across repeated updates. Callers clamp
// the quantity to a minimum of 1.
func (s *cartStore) UpdateQuantity(id uuid.UUID, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].TotalPrice = s.items[i].TotalPrice / float64(s.items[i].Quantity) * float64(quantity)
			s.items[i].Quantity = quantity
			return
		}
	}
}

func (s *cartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
}

// Total sums the line totals; it is recomputed on every read.
func (s *cartStore) Total() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, item := range s.items {
		total += item.TotalPrice
	}
	return total
}
