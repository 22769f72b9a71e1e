package processors

import "github.com/username/tillboard/backend/src/models"

type outletProcessorImpl struct{}

func NewOutletProcessor() OutletProcessor {
	return &outletProcessorImpl{}
}

// Calculate groups every fetched sale by outlet name. The upstream sale
// listing is already filtered to completed sales, so unlike the other
// views no status filter is applied here.
func (p *outletProcessorImpl) Calculate(txs []models.CanonicalTransaction) *models.OrderedBreakdown {
	breakdown := models.NewOrderedBreakdown()
	for _, t := range txs {
		outlet := t.Outlet
		if outlet == "" {
			outlet = "Unknown"
		}
		breakdown.Add(outlet, t.Amount)
	}
	return breakdown
}
