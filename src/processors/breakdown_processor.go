package processors

import "github.com/username/tillboard/backend/src/models"

type breakdownProcessorImpl struct{}

func NewBreakdownProcessor() BreakdownProcessor {
	return &breakdownProcessorImpl{}
}

// ByCardType groups successful transactions by their resolved card type.
// Group order in the output follows first appearance in the input.
func (p *breakdownProcessorImpl) ByCardType(txs []models.CanonicalTransaction) *models.OrderedBreakdown {
	return groupSuccessful(txs, func(t models.CanonicalTransaction) string { return t.CardType })
}

// ByPaymentType groups successful transactions by payment type.
func (p *breakdownProcessorImpl) ByPaymentType(txs []models.CanonicalTransaction) *models.OrderedBreakdown {
	return groupSuccessful(txs, func(t models.CanonicalTransaction) string { return t.PaymentType })
}

func groupSuccessful(txs []models.CanonicalTransaction, keyOf func(models.CanonicalTransaction) string) *models.OrderedBreakdown {
	breakdown := models.NewOrderedBreakdown()
	for _, t := range txs {
		if t.Status != models.StatusSuccessful {
			continue
		}
		breakdown.Add(keyOf(t), t.Amount)
	}
	return breakdown
}
