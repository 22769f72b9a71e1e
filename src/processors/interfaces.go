package processors

import "github.com/username/tillboard/backend/src/models"

// UnknownStatusPolicy controls how summary aggregation treats records
// whose status is neither SUCCESSFUL nor FAILED.
type UnknownStatusPolicy int

const (
	// SkipUnknown drops unrecognized statuses from both counts and
	// reports them as skipped_records.
	SkipUnknown UnknownStatusPolicy = iota
	// FailUnknown counts unrecognized statuses as failed transactions.
	FailUnknown
)

// ParsePolicy maps the config string to a policy, defaulting to skip.
func ParsePolicy(s string) UnknownStatusPolicy {
	if s == "fail" {
		return FailUnknown
	}
	return SkipUnknown
}

// SummaryProcessor computes the overall summary view.
type SummaryProcessor interface {
	Calculate(txs []models.CanonicalTransaction, period string) models.SummaryResult
}

// DailyProcessor groups successful revenue by calendar date. The second
// return value is the number of successful records excluded because
// their timestamp carried no usable date.
type DailyProcessor interface {
	Calculate(txs []models.CanonicalTransaction) ([]models.DailyEntry, int)
}

// HourlyProcessor distributes successful revenue over the 24 hours of
// the day. The second return value counts successful records whose
// timestamp did not fully parse and were excluded from this view only.
type HourlyProcessor interface {
	Calculate(txs []models.CanonicalTransaction) ([]models.HourlyEntry, int)
}

// BreakdownProcessor groups successful records by card or payment type.
type BreakdownProcessor interface {
	ByCardType(txs []models.CanonicalTransaction) *models.OrderedBreakdown
	ByPaymentType(txs []models.CanonicalTransaction) *models.OrderedBreakdown
}

// OutletProcessor groups records by outlet name. Every fetched sale
// counts: the upstream sale listing is already filtered to completed
// sales, so no status filter is applied here.
type OutletProcessor interface {
	Calculate(txs []models.CanonicalTransaction) *models.OrderedBreakdown
}
