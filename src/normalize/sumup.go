package normalize

import (
	"strings"

	"github.com/username/tillboard/backend/src/models"
)

// SumUpNormalizer maps SumUp transaction records into canonical form.
// SumUp already uses SUCCESSFUL/FAILED statuses and exposes card_type at
// the top level or nested under card.type depending on API revision.
type SumUpNormalizer struct{}

func NewSumUpNormalizer() *SumUpNormalizer {
	return &SumUpNormalizer{}
}

func (n *SumUpNormalizer) Normalize(records []models.RawRecord) []models.CanonicalTransaction {
	txs := make([]models.CanonicalTransaction, 0, len(records))
	for _, raw := range records {
		txs = append(txs, n.normalizeOne(raw))
	}
	return txs
}

func (n *SumUpNormalizer) normalizeOne(raw models.RawRecord) models.CanonicalTransaction {
	status := models.StatusUnknown
	switch strings.ToUpper(stringField(raw, "status")) {
	case "SUCCESSFUL":
		status = models.StatusSuccessful
	case "FAILED":
		status = models.StatusFailed
	}

	cardType := stringField(raw, "card_type")
	if cardType == "" {
		cardType = nestedString(raw, "card", "type")
	}
	if cardType == "" {
		cardType = "UNKNOWN"
	}

	paymentType := stringField(raw, "payment_type")
	if paymentType == "" {
		paymentType = "UNKNOWN"
	}

	return models.CanonicalTransaction{
		ID:          stringField(raw, "id", "transaction_code"),
		Timestamp:   stringField(raw, "timestamp"),
		Amount:      floatField(raw, "amount"),
		Status:      status,
		PaymentType: paymentType,
		CardType:    cardType,
	}
}
