package store

import (
	"errors"
	"strings"
	"sync"

	"github.com/mghkill/burguer-saas/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// CatalogStore holds the categories and products for the session. All state
// lives in memory and resets on every process start.
type CatalogStore interface {
	Categories() []domain.Category
	AddCategory(name string) domain.Category
	DeleteCategory(id uuid.UUID)
	Products() []domain.Product
	ProductByID(id uuid.UUID) (domain.Product, error)
	FeaturedProducts() []domain.Product
	AddProduct(product domain.Product) domain.Product
	DeleteProduct(id uuid.UUID)
	SetFeatured(id uuid.UUID, isFeatured, isPromotion bool) (domain.Product, error)
	Search(term string, categoryID *uuid.UUID) []domain.Product
}

type catalogStore struct {
	mu         sync.RWMutex
	categories []domain.Category
	products   []domain.Product
}

// NewCatalogStore creates an empty in-memory catalog.
func NewCatalogStore() CatalogStore {
	return &catalogStore{}
}

func (s *catalogStore) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// AddCategory appends a category with a freshly generated id. Duplicate
// names are not checked.
func (s *catalogStore) AddCategory(name string) domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	category := domain.Category{
		ID:   uuid.New(),
		Name: name,
	}
	s.categories = append(s.categories, category)
	return category
}

// DeleteCategory removes the category and cascades to every product whose
// CategoryID matches. A missing id is a no-op.
func (s *catalogStore) DeleteCategory(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := s.categories[:0]
	for _, c := range s.categories {
		if c.ID != id {
			categories = append(categories, c)
		}
	}
	s.categories = categories

	products := s.products[:0]
	for _, p := range s.products {
		if p.CategoryID != id {
			products = append(products, p)
		}
	}
	s.products = products
}

func (s *catalogStore) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *catalogStore) ProductByID(id uuid.UUID) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrProductNotFound
}

func (s *catalogStore) FeaturedProducts() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Product
	for _, p := range s.products {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	return out
}

// AddProduct appends the product under a freshly generated id; promotion and
// featured flags always start out false.
func (s *catalogStore) AddProduct(product domain.Product) domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	product.ID = uuid.New()
	product.IsPromotion = false
	product.IsFeatured = false
	s.products = append(s.products, product)
	return product
}

// DeleteProduct removes the product by id; a missing id is a no-op.
func (s *catalogStore) DeleteProduct(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			products = append(products, p)
		}
	}
	s.products = products
}

// SetFeatured overwrites both promotional flags on the matching product. It
// is used both to promote and to demote.
func (s *catalogStore) SetFeatured(id uuid.UUID, isFeatured, isPromotion bool) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].IsFeatured = isFeatured
			s.products[i].IsPromotion = isPromotion
			return s.products[i], nil
		}
	}
	return domain.Product{}, ErrProductNotFound
}

// Search matches the term case-insensitively against product name and
// description, optionally restricted to a category. An empty term matches
// everything.
func (s *catalogStore) Search(term string, categoryID *uuid.UUID) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term = strings.ToLower(term)
	var out []domain.Product
	for _, p := range s.products {
		if categoryID != nil && p.CategoryID != *categoryID {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		out = append(out, p)
	}
	return out
}
