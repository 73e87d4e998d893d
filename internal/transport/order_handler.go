package transport

import (
	"fmt"
	"net/http"

	"github.com/mghkill/burguer-saas/internal/domain"
	"github.com/mghkill/burguer-saas/internal/middleware"
	"github.com/mghkill/burguer-saas/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CheckoutRequest is the checkout form payload.
type CheckoutRequest struct {
	CustomerName    string `json:"customer_name" validate:"required"`
	CustomerPhone   string `json:"customer_phone" validate:"required"`
	CustomerAddress string `json:"customer_address" validate:"required"`
	PaymentMethod   string `json:"payment_method" validate:"required,oneof=credit debit cash pix"`
}

// OrderStatusResponse reports the simulation state. Status is "none" when no
// order is in progress; the order id and receipt link appear at ready.
type OrderStatusResponse struct {
	Status     string `json:"status"`
	OrderID    string `json:"order_id,omitempty"`
	ReceiptURL string `json:"receipt_url,omitempty"`
}

// OrderHandler handles checkout, order status polling and receipt download.
type OrderHandler struct {
	orderService service.OrderService
	logger       *zap.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService service.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// RegisterRoutes registers all order routes.
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Post("/", h.Checkout)
		r.Get("/current", h.CurrentStatus)
		r.Get("/{id}/receipt", h.DownloadReceipt)
	})
}

// Checkout starts the scripted order lifecycle. Whitespace-only customer
// fields pass the required tags, so the service re-checks them after
// trimming; in both cases nothing is mutated on rejection.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Checkout validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	info := service.CustomerInfo{
		Name:    req.CustomerName,
		Phone:   req.CustomerPhone,
		Address: req.CustomerAddress,
	}

	err := h.orderService.Checkout(info, domain.PaymentMethod(req.PaymentMethod))
	if err != nil {
		switch err {
		case service.ErrMissingCustomerInfo, service.ErrInvalidPayment:
			middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
		case service.ErrEmptyCart:
			middleware.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case service.ErrOrderInProgress:
			middleware.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			h.logger.Error("Checkout failed", zap.Error(err))
			middleware.RespondWithError(w, http.StatusInternalServerError, "failed to submit order")
		}
		return
	}

	middleware.RespondWithJSON(w, http.StatusAccepted, OrderStatusResponse{
		Status: string(domain.OrderStatusPending),
	})
}

// CurrentStatus reports where the simulation stands.
func (h *OrderHandler) CurrentStatus(w http.ResponseWriter, r *http.Request) {
	state := h.orderService.State()

	resp := OrderStatusResponse{Status: "none"}
	if state.Status != "" {
		resp.Status = string(state.Status)
	}
	if state.OrderID != "" {
		resp.OrderID = state.OrderID
		resp.ReceiptURL = fmt.Sprintf("/api/orders/%s/receipt", state.OrderID)
	}

	middleware.RespondWithJSON(w, http.StatusOK, resp)
}

// DownloadReceipt serves the plain-text receipt as an attachment named
// pedido-<ORDERID>.txt.
func (h *OrderHandler) DownloadReceipt(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	receipt, err := h.orderService.Receipt(orderID)
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "receipt not found")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=pedido-%s.txt", orderID))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(receipt))
}
