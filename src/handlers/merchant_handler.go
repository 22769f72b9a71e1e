package handlers

import (
	"net/http"

	"github.com/username/tillboard/backend/src/services"
	"github.com/username/tillboard/backend/src/utils"
)

type MerchantHandler struct {
	service services.AnalyticsService
}

func NewMerchantHandler(service services.AnalyticsService) *MerchantHandler {
	return &MerchantHandler{service: service}
}

// HandleGetMerchant passes the upstream profile document through to the
// dashboard unchanged.
func (h *MerchantHandler) HandleGetMerchant(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.Profile(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, profile)
}
