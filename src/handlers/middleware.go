package handlers

import (
	"net/http"
	"strings"

	"github.com/username/tillboard/backend/src/logger"
	"github.com/username/tillboard/backend/src/providers"
	"github.com/username/tillboard/backend/src/utils"
)

// SessionMiddleware validates the Bearer session token and stashes the
// wrapped upstream credential on the request context for the provider
// client. Applied only when the configured provider is session-based.
func (h *AuthHandler) SessionMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			logger.FromContext(r.Context()).Debug("SessionMiddleware: Authorization header missing", "path", r.URL.Path)
			utils.SendJSONError(w, "Authorization header required", http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			utils.SendJSONError(w, "Malformed token", http.StatusUnauthorized)
			return
		}

		upstreamToken, err := h.authService.ValidateSessionToken(tokenString)
		if err != nil {
			logger.FromContext(r.Context()).Warn("SessionMiddleware: Token validation failed", "path", r.URL.Path, "error", err)
			utils.SendJSONError(w, "Invalid or expired token", http.StatusUnauthorized)
			return
		}

		ctx := providers.WithSessionToken(r.Context(), upstreamToken)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}
