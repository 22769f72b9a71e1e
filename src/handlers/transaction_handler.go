package handlers

import (
	"net/http"
	"strconv"

	"github.com/username/tillboard/backend/src/services"
	"github.com/username/tillboard/backend/src/utils"
)

type TransactionHandler struct {
	service services.AnalyticsService
}

func NewTransactionHandler(service services.AnalyticsService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

// HandleGetTransactions returns the normalized transaction list for an
// optional start_date/end_date window (YYYY-MM-DD) and limit.
func (h *TransactionHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit, _ := strconv.Atoi(query.Get("limit"))

	txs, err := h.service.Transactions(r.Context(), query.Get("start_date"), query.Get("end_date"), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, txs)
}
