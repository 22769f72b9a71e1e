package models

// RawRecord is a single transaction or sale exactly as the upstream
// provider returned it. The schema varies by provider and API revision,
// so nothing beyond "it is a JSON object" can be assumed.
type RawRecord map[string]any

// TransactionStatus is the canonical two-value outcome of a transaction,
// plus Unknown for upstream statuses we do not recognize.
type TransactionStatus string

const (
	StatusSuccessful TransactionStatus = "SUCCESSFUL"
	StatusFailed     TransactionStatus = "FAILED"
	StatusUnknown    TransactionStatus = "UNKNOWN"
)

// CanonicalTransaction is the provider-agnostic transaction shape that the
// aggregation processors consume. Amounts are GBP throughout.
type CanonicalTransaction struct {
	ID          string            `json:"id"`
	Timestamp   string            `json:"timestamp,omitempty"`
	Amount      float64           `json:"amount"`
	Status      TransactionStatus `json:"status"`
	PaymentType string            `json:"payment_type"`
	CardType    string            `json:"card_type"`
	Outlet      string            `json:"outlet,omitempty"`
}

// SummaryResult is the overall analytics summary for a query window.
type SummaryResult struct {
	TotalRevenue       float64            `json:"total_revenue"`
	TotalTransactions  int                `json:"total_transactions"`
	AvgTransaction     float64            `json:"avg_transaction"`
	FailedTransactions int                `json:"failed_transactions"`
	SkippedRecords     int                `json:"skipped_records"`
	PaymentTypes       map[string]float64 `json:"payment_types"`
	Period             string             `json:"period"`
}

// DailyEntry is one calendar day of the daily revenue series.
type DailyEntry struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Count   int     `json:"count"`
}

// HourlyEntry is one hour-of-day bucket. The hourly view always carries
// exactly 24 of these, hours 0 through 23.
type HourlyEntry struct {
	Hour    int     `json:"hour"`
	Revenue float64 `json:"revenue"`
	Count   int     `json:"count"`
}

// BreakdownEntry is the accumulator for a single breakdown group
// (card type, payment type or outlet).
type BreakdownEntry struct {
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}
