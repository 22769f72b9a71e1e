package processors

import (
	"math"
	"testing"

	"github.com/username/tillboard/backend/src/models"
)

func TestDailyGroupsAndSortsByDate(t *testing.T) {
	p := NewDailyProcessor()
	txs := []models.CanonicalTransaction{
		successfulTx(5, "2024-01-02T09:00:00Z"),
		successfulTx(10, "2024-01-01T10:00:00Z"),
		successfulTx(2.5, "2024-01-02T20:15:00Z"),
		{Amount: 99, Status: models.StatusFailed, Timestamp: "2024-01-01T11:00:00Z"},
	}

	entries, skipped := p.Calculate(txs)
	if skipped != 0 {
		t.Fatalf("skipped = %d, want 0", skipped)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Date != "2024-01-01" || entries[0].Revenue != 10 || entries[0].Count != 1 {
		t.Fatalf("first entry: %+v", entries[0])
	}
	if entries[1].Date != "2024-01-02" || entries[1].Revenue != 7.5 || entries[1].Count != 2 {
		t.Fatalf("second entry: %+v", entries[1])
	}
}

func TestDailyExcludesMissingDates(t *testing.T) {
	p := NewDailyProcessor()
	entries, skipped := p.Calculate([]models.CanonicalTransaction{
		successfulTx(10, "not-a-date"),
		successfulTx(5, ""),
		successfulTx(1, "2024-01-01T10:00:00Z"),
	})

	if skipped != 2 {
		t.Fatalf("skipped = %d, want 2", skipped)
	}
	if len(entries) != 1 || entries[0].Date != "2024-01-01" {
		t.Fatalf("entries: %+v", entries)
	}
}

func TestDailyDatePrefixToleratesTrailingGarbage(t *testing.T) {
	p := NewDailyProcessor()
	entries, skipped := p.Calculate([]models.CanonicalTransaction{
		successfulTx(3, "2024-05-05T99:99:99oops"),
	})

	if skipped != 0 {
		t.Fatalf("skipped = %d, want 0 (date prefix is usable)", skipped)
	}
	if len(entries) != 1 || entries[0].Date != "2024-05-05" {
		t.Fatalf("entries: %+v", entries)
	}
}

func TestDailyRevenueSumMatchesSummaryTotal(t *testing.T) {
	txs := []models.CanonicalTransaction{
		successfulTx(10.111, "2024-01-01T10:00:00Z"),
		successfulTx(20.222, "2024-01-02T10:00:00Z"),
		successfulTx(0.333, "2024-01-02T12:00:00Z"),
	}

	summary := NewSummaryProcessor(SkipUnknown).Calculate(txs, "")
	entries, _ := NewDailyProcessor().Calculate(txs)

	var dailyTotal float64
	for _, e := range entries {
		dailyTotal += e.Revenue
	}

	tolerance := 0.01 * float64(len(entries))
	if math.Abs(dailyTotal-summary.TotalRevenue) > tolerance {
		t.Fatalf("daily total %v vs summary total %v exceeds tolerance %v",
			dailyTotal, summary.TotalRevenue, tolerance)
	}
}
