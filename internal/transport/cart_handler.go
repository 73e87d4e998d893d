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

// AddCartItemRequest adds a customized product to the cart.
type AddCartItemRequest struct {
	ProductID         string   `json:"product_id" validate:"required,uuid"`
	Quantity          int      `json:"quantity" validate:"required,gte=1"`
	RemovedComponents []string `json:"removed_components" validate:"dive,uuid"`
	AddedComponents   []string `json:"added_components" validate:"dive,uuid"`
}

// UpdateQuantityRequest changes a cart line's quantity.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,gte=1"`
}

// CartResponse is the cart contents plus the derived total.
type CartResponse struct {
	Items []domain.CartItem `json:"items"`
	Total float64           `json:"total"`
}

// CartHandler handles HTTP requests for the cart.
type CartHandler struct {
	cartService service.CartService
	logger      *zap.Logger
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService service.CartService, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		logger:      logger,
	}
}

// RegisterRoutes registers all cart routes.
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/cart", func(r chi.Router) {
		r.Get("/", h.GetCart)
		r.Post("/items", h.AddItem)
		r.Patch("/items/{id}", h.UpdateQuantity)
		r.Delete("/items/{id}", h.RemoveItem)
		r.Delete("/", h.ClearCart)
	})
}

// GetCart returns the line items and the total, recomputed on every read.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	items := h.cartService.Items()
	if items == nil {
		items = []domain.CartItem{}
	}
	middleware.RespondWithJSON(w, http.StatusOK, CartResponse{
		Items: items,
		Total: h.cartService.Total(),
	})
}

// AddItem validates the customization against the catalog and appends a
// priced line to the cart.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Cart item validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	removed, err := parseUUIDs(req.RemovedComponents)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid removed component id")
		return
	}
	added, err := parseUUIDs(req.AddedComponents)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid added component id")
		return
	}

	item, err := h.cartService.AddToCart(productID, req.Quantity, removed, added)
	if err != nil {
		switch err {
		case store.ErrProductNotFound:
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		case service.ErrComponentNotRemovable, service.ErrComponentNotOptional:
			middleware.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			h.logger.Error("Failed to add cart item", zap.Error(err))
			middleware.RespondWithError(w, http.StatusInternalServerError, "failed to add item")
		}
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, item)
}

// UpdateQuantity rescales the line total proportionally to the new quantity.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid cart item id")
		return
	}

	var req UpdateQuantityRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.cartService.UpdateQuantity(id, req.Quantity)
	h.GetCart(w, r)
}

// RemoveItem filters out the matching line; a missing id is silently inert.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid cart item id")
		return
	}

	h.cartService.Remove(id)
	w.WriteHeader(http.StatusNoContent)
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.cartService.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
