package middleware

import (
	"net/http"

	"go.uber.org/zap"
)

// AuthChecker reports whether the admin session flag is set.
type AuthChecker interface {
	IsAuthenticated() bool
}

// RequireAdmin gates the admin management routes on the in-memory
// authenticated flag set by a successful login.
func RequireAdmin(auth AuthChecker, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !auth.IsAuthenticated() {
				logger.Warn("Unauthenticated access to admin endpoint",
					zap.String("path", r.URL.Path),
				)
				RespondWithError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
