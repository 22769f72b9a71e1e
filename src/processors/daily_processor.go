package processors

import (
	"sort"

	"github.com/username/tillboard/backend/src/models"
	"github.com/username/tillboard/backend/src/normalize"
	"github.com/username/tillboard/backend/src/utils"
)

type dailyProcessorImpl struct{}

func NewDailyProcessor() DailyProcessor {
	return &dailyProcessorImpl{}
}

type dayAccumulator struct {
	revenue float64
	count   int
}

// Calculate groups successful transactions by calendar date and returns
// the series sorted ascending by date. Lexicographic order on
// YYYY-MM-DD keys is chronological order.
func (p *dailyProcessorImpl) Calculate(txs []models.CanonicalTransaction) ([]models.DailyEntry, int) {
	days := make(map[string]*dayAccumulator)
	skipped := 0

	for _, t := range txs {
		if t.Status != models.StatusSuccessful {
			continue
		}
		dateKey, _, _ := normalize.ParseTimestamp(t.Timestamp)
		if dateKey == "" {
			skipped++
			continue
		}
		acc, ok := days[dateKey]
		if !ok {
			acc = &dayAccumulator{}
			days[dateKey] = acc
		}
		acc.revenue += t.Amount
		acc.count++
	}

	dates := make([]string, 0, len(days))
	for date := range days {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	entries := make([]models.DailyEntry, 0, len(dates))
	for _, date := range dates {
		acc := days[date]
		entries = append(entries, models.DailyEntry{
			Date:    date,
			Revenue: utils.RoundFloat(acc.revenue, 2),
			Count:   acc.count,
		})
	}
	return entries, skipped
}
