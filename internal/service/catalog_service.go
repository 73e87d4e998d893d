package service

import (
	"github.com/mghkill/burguer-saas/internal/domain"
	"github.com/mghkill/burguer-saas/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProductQuery narrows a catalog listing. Zero value lists everything.
type ProductQuery struct {
	Term         string
	CategoryID   *uuid.UUID
	FeaturedOnly bool
}

// CatalogService exposes the browsing and admin management operations over
// the catalog store.
type CatalogService interface {
	Categories() []domain.Category
	AddCategory(name string) domain.Category
	DeleteCategory(id uuid.UUID)
	Products(q ProductQuery) []domain.Product
	ProductByID(id uuid.UUID) (domain.Product, error)
	AddProduct(product domain.Product) domain.Product
	DeleteProduct(id uuid.UUID)
	SetFeatured(id uuid.UUID, isFeatured, isPromotion bool) (domain.Product, error)
}

type catalogService struct {
	catalog store.CatalogStore
	logger  *zap.Logger
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(catalog store.CatalogStore, logger *zap.Logger) CatalogService {
	return &catalogService{catalog: catalog, logger: logger}
}

func (s *catalogService) Categories() []domain.Category {
	return s.catalog.Categories()
}

func (s *catalogService) AddCategory(name string) domain.Category {
	category := s.catalog.AddCategory(name)
	s.logger.Info("Category added",
		zap.String("category_id", category.ID.String()),
		zap.String("name", category.Name),
	)
	return category
}

// DeleteCategory cascades to every product referencing the category. There
// is no orphan check and no confirmation of the impact count.
func (s *catalogService) DeleteCategory(id uuid.UUID) {
	s.catalog.DeleteCategory(id)
	s.logger.Info("Category deleted", zap.String("category_id", id.String()))
}

func (s *catalogService) Products(q ProductQuery) []domain.Product {
	products := s.catalog.Search(q.Term, q.CategoryID)
	if !q.FeaturedOnly {
		return products
	}
	var out []domain.Product
	for _, p := range products {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	return out
}

func (s *catalogService) ProductByID(id uuid.UUID) (domain.Product, error) {
	return s.catalog.ProductByID(id)
}

func (s *catalogService) AddProduct(product domain.Product) domain.Product {
	// Component ids are assigned here; the admin form submits bare fields.
	for i := range product.Components {
		product.Components[i].ID = uuid.New()
	}
	created := s.catalog.AddProduct(product)
	s.logger.Info("Product added",
		zap.String("product_id", created.ID.String()),
		zap.String("name", created.Name),
	)
	return created
}

func (s *catalogService) DeleteProduct(id uuid.UUID) {
	s.catalog.DeleteProduct(id)
	s.logger.Info("Product deleted", zap.String("product_id", id.String()))
}

func (s *catalogService) SetFeatured(id uuid.UUID, isFeatured, isPromotion bool) (domain.Product, error) {
	return s.catalog.SetFeatured(id, isFeatured, isPromotion)
}
