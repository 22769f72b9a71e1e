package processors

import (
	"github.com/username/tillboard/backend/src/models"
	"github.com/username/tillboard/backend/src/normalize"
	"github.com/username/tillboard/backend/src/utils"
)

type hourlyProcessorImpl struct{}

func NewHourlyProcessor() HourlyProcessor {
	return &hourlyProcessorImpl{}
}

// Calculate distributes successful transactions over hour-of-day
// buckets. All 24 buckets are pre-seeded so the output always has
// exactly 24 entries regardless of data sparsity; records whose
// timestamp does not fully parse are excluded from this view only.
func (p *hourlyProcessorImpl) Calculate(txs []models.CanonicalTransaction) ([]models.HourlyEntry, int) {
	var revenue [24]float64
	var counts [24]int
	skipped := 0

	for _, t := range txs {
		if t.Status != models.StatusSuccessful {
			continue
		}
		_, hour, ok := normalize.ParseTimestamp(t.Timestamp)
		if !ok || hour < 0 || hour > 23 {
			skipped++
			continue
		}
		revenue[hour] += t.Amount
		counts[hour]++
	}

	entries := make([]models.HourlyEntry, 24)
	for h := 0; h < 24; h++ {
		entries[h] = models.HourlyEntry{
			Hour:    h,
			Revenue: utils.RoundFloat(revenue[h], 2),
			Count:   counts[h],
		}
	}
	return entries, skipped
}
