package transport

import (
	"net/http"

	"github.com/mghkill/burguer-saas/internal/middleware"
	"github.com/mghkill/burguer-saas/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// LoginRequest is the admin login form payload.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler handles the admin login and logout.
type AuthHandler struct {
	authService service.AuthService
	logger      *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// RegisterRoutes registers the login and logout routes. Both stay outside
// the admin gate: login opens it, logout is inert when it is already closed.
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/admin/login", h.Login)
	r.Post("/api/admin/logout", h.Logout)
}

// Login checks the fixed credential pair and sets the authenticated flag.
// Failure carries no further detail; there is no lockout or throttling.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Login validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.authService.Login(req.Username, req.Password); err != nil {
		h.logger.Debug("Login failed", zap.String("username", req.Username))
		middleware.RespondWithError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	h.logger.Info("Admin logged in")
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "logged in successfully"})
}

// Logout clears the authenticated flag.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.Logout()
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "logged out successfully"})
}
