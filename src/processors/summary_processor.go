package processors

import (
	"github.com/username/tillboard/backend/src/models"
	"github.com/username/tillboard/backend/src/utils"
)

type summaryProcessorImpl struct {
	policy UnknownStatusPolicy
}

// NewSummaryProcessor creates a SummaryProcessor with the given policy
// for unrecognized statuses.
func NewSummaryProcessor(policy UnknownStatusPolicy) SummaryProcessor {
	return &summaryProcessorImpl{policy: policy}
}

// Calculate folds the transactions into the overall summary. Revenue
// accumulates unrounded; every monetary output is rounded to two decimal
// places only when the result is assembled.
func (p *summaryProcessorImpl) Calculate(txs []models.CanonicalTransaction, period string) models.SummaryResult {
	var (
		totalRevenue float64
		successful   int
		failed       int
		skipped      int
	)
	paymentTypes := make(map[string]float64)

	for _, t := range txs {
		switch t.Status {
		case models.StatusSuccessful:
			totalRevenue += t.Amount
			successful++
			paymentTypes[t.PaymentType] += t.Amount
		case models.StatusFailed:
			failed++
		default:
			if p.policy == FailUnknown {
				failed++
			} else {
				skipped++
			}
		}
	}

	// Explicit guard: an empty window yields 0, not a division fault.
	avg := 0.0
	if successful > 0 {
		avg = totalRevenue / float64(successful)
	}

	for ptype, revenue := range paymentTypes {
		paymentTypes[ptype] = utils.RoundFloat(revenue, 2)
	}

	return models.SummaryResult{
		TotalRevenue:       utils.RoundFloat(totalRevenue, 2),
		TotalTransactions:  successful,
		AvgTransaction:     utils.RoundFloat(avg, 2),
		FailedTransactions: failed,
		SkippedRecords:     skipped,
		PaymentTypes:       paymentTypes,
		Period:             period,
	}
}
