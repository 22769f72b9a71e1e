package services

import (
	"context"

	"github.com/username/tillboard/backend/src/models"
)

// AnalyticsService is the core request path: resolve the query window,
// fetch raw records from the upstream provider, normalize them and fold
// them into the requested view.
type AnalyticsService interface {
	Profile(ctx context.Context) (models.RawRecord, error)
	Transactions(ctx context.Context, startDate, endDate string, limit int) ([]models.CanonicalTransaction, error)
	Summary(ctx context.Context, days int) (models.SummaryResult, error)
	Daily(ctx context.Context, days int) ([]models.DailyEntry, error)
	Hourly(ctx context.Context, days int) ([]models.HourlyEntry, error)
	CardTypes(ctx context.Context, days int) (*models.OrderedBreakdown, error)
	PaymentTypes(ctx context.Context, days int) (*models.OrderedBreakdown, error)
	Outlets(ctx context.Context, days int) (*models.OrderedBreakdown, error)
}
