package transport

import (
	"net/http"

	"github.com/mghkill/burguer-saas/internal/domain"
	"github.com/mghkill/burguer-saas/internal/middleware"
	"github.com/mghkill/burguer-saas/internal/service"
	"github.com/mghkill/burguer-saas/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateCategoryRequest is the admin category form payload.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// ComponentRequest is one ingredient row of the admin product form.
type ComponentRequest struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	IsRemovable bool    `json:"is_removable"`
	IsOptional  bool    `json:"is_optional"`
	Category    string  `json:"category" validate:"required,oneof=bread meat vegetable sauce cheese fruit topping syrup"`
}

// CreateProductRequest is the admin product form payload. New products always
// start with the promotion and featured flags cleared.
type CreateProductRequest struct {
	Name        string             `json:"name" validate:"required"`
	Description string             `json:"description"`
	Price       float64            `json:"price" validate:"gte=0"`
	ImageURL    string             `json:"image_url"`
	CategoryID  string             `json:"category_id" validate:"required,uuid"`
	Combo       bool               `json:"combo"`
	Type        string             `json:"type" validate:"required,oneof=burger acai drink combo"`
	Components  []ComponentRequest `json:"components" validate:"dive"`
}

// SetFeaturedRequest overwrites both promotional flags on a product.
type SetFeaturedRequest struct {
	IsFeatured  bool `json:"is_featured"`
	IsPromotion bool `json:"is_promotion"`
}

// CatalogHandler handles catalog browsing and admin catalog management.
type CatalogHandler struct {
	catalogService service.CatalogService
	logger         *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService service.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// RegisterRoutes registers the public catalog routes and the gated admin
// management routes.
func (h *CatalogHandler) RegisterRoutes(r chi.Router, adminGate func(http.Handler) http.Handler) {
	r.Route("/api/catalog", func(r chi.Router) {
		r.Get("/categories", h.ListCategories)
		r.Get("/products", h.ListProducts)
		r.Get("/products/{id}", h.GetProduct)
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(adminGate)
		r.Post("/categories", h.CreateCategory)
		r.Delete("/categories/{id}", h.DeleteCategory)
		r.Post("/products", h.CreateProduct)
		r.Delete("/products/{id}", h.DeleteProduct)
		r.Put("/products/{id}/featured", h.SetFeatured)
	})
}

// ListCategories returns the flat category set.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.catalogService.Categories())
}

// ListProducts returns products matched by the optional q, category and
// featured query parameters.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := service.ProductQuery{
		Term:         r.URL.Query().Get("q"),
		FeaturedOnly: r.URL.Query().Get("featured") == "true",
	}

	if raw := r.URL.Query().Get("category"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			middleware.RespondWithError(w, http.StatusBadRequest, "invalid category id")
			return
		}
		query.CategoryID = &categoryID
	}

	products := h.catalogService.Products(query)
	if products == nil {
		products = []domain.Product{}
	}
	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// GetProduct returns a single product with its component list.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.catalogService.ProductByID(id)
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// CreateCategory appends a category with a fresh id.
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.respondDecodeError(w, err)
		return
	}

	category := h.catalogService.AddCategory(req.Name)
	middleware.RespondWithJSON(w, http.StatusCreated, category)
}

// DeleteCategory removes the category and every product referencing it.
// Deleting a missing id is silently inert.
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	h.catalogService.DeleteCategory(id)
	w.WriteHeader(http.StatusNoContent)
}

// CreateProduct appends a product with a fresh id.
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.respondDecodeError(w, err)
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	product := domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		CategoryID:  categoryID,
		Combo:       req.Combo,
		Type:        domain.ProductType(req.Type),
	}
	for _, c := range req.Components {
		product.Components = append(product.Components, domain.ProductComponent{
			Name:        c.Name,
			Price:       c.Price,
			IsRemovable: c.IsRemovable,
			IsOptional:  c.IsOptional,
			Category:    domain.ComponentCategory(c.Category),
		})
	}

	created := h.catalogService.AddProduct(product)
	middleware.RespondWithJSON(w, http.StatusCreated, created)
}

// DeleteProduct removes a product; a missing id is silently inert.
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	h.catalogService.DeleteProduct(id)
	w.WriteHeader(http.StatusNoContent)
}

// SetFeatured overwrites the featured and promotion flags on a product; it
// is used both to promote and to demote.
func (h *CatalogHandler) SetFeatured(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req SetFeaturedRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.respondDecodeError(w, err)
		return
	}

	product, err := h.catalogService.SetFeatured(id, req.IsFeatured, req.IsPromotion)
	if err != nil {
		if err == store.ErrProductNotFound {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update product")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) respondDecodeError(w http.ResponseWriter, err error) {
	h.logger.Debug("Request validation failed", zap.Error(err))

	if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
		middleware.RespondWithValidationErrors(w, validationErrors)
		return
	}
	middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
}
