package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/username/tillboard/backend/src/logger"
	"github.com/username/tillboard/backend/src/providers"
	"github.com/username/tillboard/backend/src/security"
	"github.com/username/tillboard/backend/src/utils"
)

type AuthHandler struct {
	authService   *security.AuthService
	client        providers.Client
	sessionExpiry time.Duration
}

func NewAuthHandler(authService *security.AuthService, client providers.Client, sessionExpiry time.Duration) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		client:        client,
		sessionExpiry: sessionExpiry,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleLogin proxies the upstream login and returns a signed session
// token wrapping the upstream credential. Only session-based providers
// (GoodTill) support this.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	sessionProvider, ok := h.client.(providers.SessionProvider)
	if !ok {
		utils.SendJSONError(w, "session login is not supported by the configured provider", http.StatusBadRequest)
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendJSONError(w, "invalid login request body", http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" {
		utils.SendJSONError(w, "username and password are required", http.StatusBadRequest)
		return
	}

	upstreamToken, err := sessionProvider.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	sessionToken, err := h.authService.GenerateSessionToken(upstreamToken, h.sessionExpiry)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to sign session token", "error", err)
		utils.SendJSONError(w, "failed to create session", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]string{"token": sessionToken})
}
