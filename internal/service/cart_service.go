package service

import (
	"errors"

	"github.com/mghkill/burguer-saas/internal/domain"
	"github.com/mghkill/burguer-saas/internal/store"

	"github.com/google/uuid"
)

var (
	ErrComponentNotRemovable = errors.New("component cannot be removed")
	ErrComponentNotOptional  = errors.New("component is not an optional add-on")
)

// CartService validates customizations against the catalog and applies the
// pricing rule before touching the cart store.
type CartService interface {
	Items() []domain.CartItem
	AddToCart(productID uuid.UUID, quantity int, removed, added []uuid.UUID) (domain.CartItem, error)
	UpdateQuantity(id uuid.UUID, quantity int)
	Remove(id uuid.UUID)
	Clear()
	Total() float64
}

type cartService struct {
	cart    store.CartStore
	catalog store.CatalogStore
}

// NewCartService creates a new instance of CartService.
func NewCartService(cart store.CartStore, catalog store.CatalogStore) CartService {
	return &cartService{cart: cart, catalog: catalog}
}

func (s *cartService) Items() []domain.CartItem {
	return s.cart.Items()
}

// AddToCart prices the line as (base price + sum of added component prices)
// * quantity. Removed components must be marked removable and added ones
// optional; removals never change the price.
func (s *cartService) AddToCart(productID uuid.UUID, quantity int, removed, added []uuid.UUID) (domain.CartItem, error) {
	product, err := s.catalog.ProductByID(productID)
	if err != nil {
		return domain.CartItem{}, err
	}

	if quantity < 1 {
		quantity = 1
	}

	for _, id := range removed {
		component, ok := product.Component(id)
		if !ok || !component.IsRemovable {
			return domain.CartItem{}, ErrComponentNotRemovable
		}
	}

	var unitExtra float64
	for _, id := range added {
		component, ok := product.Component(id)
		if !ok || !component.IsOptional {
			return domain.CartItem{}, ErrComponentNotOptional
		}
		unitExtra += component.Price
	}

	item := domain.CartItem{
		ProductID:         productID,
		Quantity:          quantity,
		RemovedComponents: removed,
		AddedComponents:   added,
		TotalPrice:        (product.Price + unitExtra) * float64(quantity),
	}
	return s.cart.Add(item), nil
}

// UpdateQuantity clamps the quantity to a minimum of 1 and lets the store
// rescale the stored total proportionally.
func (s *cartService) UpdateQuantity(id uuid.UUID, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	s.cart.UpdateQuantity(id, quantity)
}

func (s *cartService) Remove(id uuid.UUID) {
	s.cart.Remove(id)
}

func (s *cartService) Clear() {
	s.cart.Clear()
}

func (s *cartService) Total() float64 {
	return s.cart.Total()
}
