package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/username/tillboard/backend/src/providers"
	"github.com/username/tillboard/backend/src/services"
	"github.com/username/tillboard/backend/src/utils"
)

// Per-view defaults for the query window.
const (
	defaultSummaryDays   = 30
	defaultDailyDays     = 30
	defaultHourlyDays    = 7
	defaultBreakdownDays = 30
)

type AnalyticsHandler struct {
	service services.AnalyticsService
}

func NewAnalyticsHandler(service services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

func (h *AnalyticsHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Summary(r.Context(), queryDays(r, defaultSummaryDays))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, result)
}

func (h *AnalyticsHandler) HandleGetDaily(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.Daily(r.Context(), queryDays(r, defaultDailyDays))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, entries)
}

func (h *AnalyticsHandler) HandleGetHourly(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.Hourly(r.Context(), queryDays(r, defaultHourlyDays))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, entries)
}

func (h *AnalyticsHandler) HandleGetCardTypes(w http.ResponseWriter, r *http.Request) {
	breakdown, err := h.service.CardTypes(r.Context(), queryDays(r, defaultBreakdownDays))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, breakdown)
}

func (h *AnalyticsHandler) HandleGetPaymentTypes(w http.ResponseWriter, r *http.Request) {
	breakdown, err := h.service.PaymentTypes(r.Context(), queryDays(r, defaultBreakdownDays))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, breakdown)
}

func (h *AnalyticsHandler) HandleGetOutlets(w http.ResponseWriter, r *http.Request) {
	breakdown, err := h.service.Outlets(r.Context(), queryDays(r, defaultBreakdownDays))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, breakdown)
}

// queryDays reads the days query parameter, falling back per view.
func queryDays(r *http.Request, fallback int) int {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		return fallback
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		return fallback
	}
	return days
}

// writeServiceError maps the error taxonomy onto HTTP statuses:
// credential problems are 401, everything upstream is 500.
func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, providers.ErrMissingCredential) {
		utils.SendJSONError(w, err.Error(), http.StatusUnauthorized)
		return
	}
	utils.SendJSONError(w, err.Error(), http.StatusInternalServerError)
}
