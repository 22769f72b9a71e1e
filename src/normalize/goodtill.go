package normalize

import (
	"strings"

	"github.com/username/tillboard/backend/src/models"
)

// GoodTillNormalizer maps GoodTill sale records into canonical form.
// GoodTill reports free-text statuses (completed/voided/cancelled),
// amounts as total or total_inc_vat, and the payment type on the first
// element of a payments list.
type GoodTillNormalizer struct{}

func NewGoodTillNormalizer() *GoodTillNormalizer {
	return &GoodTillNormalizer{}
}

func (n *GoodTillNormalizer) Normalize(records []models.RawRecord) []models.CanonicalTransaction {
	txs := make([]models.CanonicalTransaction, 0, len(records))
	for _, raw := range records {
		txs = append(txs, n.normalizeOne(raw))
	}
	return txs
}

func (n *GoodTillNormalizer) normalizeOne(raw models.RawRecord) models.CanonicalTransaction {
	status := models.StatusUnknown
	switch strings.ToLower(stringField(raw, "status")) {
	case "completed":
		status = models.StatusSuccessful
	case "voided", "cancelled", "refunded":
		status = models.StatusFailed
	}

	paymentType := firstPaymentType(raw)
	if paymentType == "" {
		paymentType = "CARD"
	}

	cardType := stringField(raw, "card_type")
	if cardType == "" {
		cardType = "UNKNOWN"
	}

	outlet := stringField(raw, "outlet_name")
	if outlet == "" {
		outlet = nestedString(raw, "outlet", "name")
	}
	if outlet == "" {
		outlet = "Unknown"
	}

	return models.CanonicalTransaction{
		ID:          stringField(raw, "sales_id", "id"),
		Timestamp:   stringField(raw, "sale_date_time", "datetime_completed"),
		Amount:      floatField(raw, "total", "total_inc_vat"),
		Status:      status,
		PaymentType: paymentType,
		CardType:    cardType,
		Outlet:      outlet,
	}
}

// firstPaymentType pulls the type of the first entry in a payments list.
func firstPaymentType(raw models.RawRecord) string {
	payments, ok := raw["payments"].([]any)
	if !ok || len(payments) == 0 {
		return ""
	}
	first, ok := payments[0].(map[string]any)
	if !ok {
		return ""
	}
	return coerceString(first["type"])
}
