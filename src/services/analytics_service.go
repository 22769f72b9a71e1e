package services

import (
	"context"
	"fmt"
	"time"

	"github.com/username/tillboard/backend/src/logger"
	"github.com/username/tillboard/backend/src/models"
	"github.com/username/tillboard/backend/src/normalize"
	"github.com/username/tillboard/backend/src/processors"
	"github.com/username/tillboard/backend/src/providers"
	"github.com/username/tillboard/backend/src/utils"
)

const defaultTransactionLimit = 100

// analyticsServiceImpl implements AnalyticsService on top of a provider
// client and the aggregation processors.
type analyticsServiceImpl struct {
	client             providers.Client
	normalizer         normalize.Normalizer
	merchants          *MerchantService
	summaryProcessor   processors.SummaryProcessor
	dailyProcessor     processors.DailyProcessor
	hourlyProcessor    processors.HourlyProcessor
	breakdownProcessor processors.BreakdownProcessor
	outletProcessor    processors.OutletProcessor
	fetchLimit         int
	now                func() time.Time
}

// NewAnalyticsService creates the analytics service with all of its
// collaborators injected.
func NewAnalyticsService(
	client providers.Client,
	normalizer normalize.Normalizer,
	merchants *MerchantService,
	summaryProcessor processors.SummaryProcessor,
	dailyProcessor processors.DailyProcessor,
	hourlyProcessor processors.HourlyProcessor,
	breakdownProcessor processors.BreakdownProcessor,
	outletProcessor processors.OutletProcessor,
	fetchLimit int,
) AnalyticsService {
	return &analyticsServiceImpl{
		client:             client,
		normalizer:         normalizer,
		merchants:          merchants,
		summaryProcessor:   summaryProcessor,
		dailyProcessor:     dailyProcessor,
		hourlyProcessor:    hourlyProcessor,
		breakdownProcessor: breakdownProcessor,
		outletProcessor:    outletProcessor,
		fetchLimit:         fetchLimit,
		now:                time.Now,
	}
}

func (s *analyticsServiceImpl) Profile(ctx context.Context) (models.RawRecord, error) {
	return s.client.Profile(ctx)
}

func (s *analyticsServiceImpl) Transactions(ctx context.Context, startDate, endDate string, limit int) ([]models.CanonicalTransaction, error) {
	if limit <= 0 {
		limit = defaultTransactionLimit
	}
	from := utils.DayBounds(startDate, false)
	to := utils.DayBounds(endDate, true)
	txs, err := s.fetchBetween(ctx, from, to, limit)
	if err != nil {
		return nil, err
	}
	if txs == nil {
		txs = []models.CanonicalTransaction{}
	}
	return txs, nil
}

func (s *analyticsServiceImpl) Summary(ctx context.Context, days int) (models.SummaryResult, error) {
	txs, err := s.fetchWindow(ctx, days)
	if err != nil {
		return models.SummaryResult{}, err
	}
	period := fmt.Sprintf("Last %d days", days)
	result := s.summaryProcessor.Calculate(txs, period)
	if result.SkippedRecords > 0 {
		logger.FromContext(ctx).Info("Records with unrecognized status excluded from summary",
			"skipped", result.SkippedRecords, "fetched", len(txs))
	}
	return result, nil
}

func (s *analyticsServiceImpl) Daily(ctx context.Context, days int) ([]models.DailyEntry, error) {
	txs, err := s.fetchWindow(ctx, days)
	if err != nil {
		return nil, err
	}
	entries, skipped := s.dailyProcessor.Calculate(txs)
	if skipped > 0 {
		logger.FromContext(ctx).Info("Records without a usable date excluded from daily view", "skipped", skipped)
	}
	return entries, nil
}

func (s *analyticsServiceImpl) Hourly(ctx context.Context, days int) ([]models.HourlyEntry, error) {
	txs, err := s.fetchWindow(ctx, days)
	if err != nil {
		return nil, err
	}
	entries, skipped := s.hourlyProcessor.Calculate(txs)
	if skipped > 0 {
		logger.FromContext(ctx).Info("Records with unparseable timestamps excluded from hourly view", "skipped", skipped)
	}
	return entries, nil
}

func (s *analyticsServiceImpl) CardTypes(ctx context.Context, days int) (*models.OrderedBreakdown, error) {
	txs, err := s.fetchWindow(ctx, days)
	if err != nil {
		return nil, err
	}
	return s.breakdownProcessor.ByCardType(txs), nil
}

func (s *analyticsServiceImpl) PaymentTypes(ctx context.Context, days int) (*models.OrderedBreakdown, error) {
	txs, err := s.fetchWindow(ctx, days)
	if err != nil {
		return nil, err
	}
	return s.breakdownProcessor.ByPaymentType(txs), nil
}

func (s *analyticsServiceImpl) Outlets(ctx context.Context, days int) (*models.OrderedBreakdown, error) {
	txs, err := s.fetchWindow(ctx, days)
	if err != nil {
		return nil, err
	}
	return s.outletProcessor.Calculate(txs), nil
}

// fetchWindow fetches and normalizes the last-N-days window.
func (s *analyticsServiceImpl) fetchWindow(ctx context.Context, days int) ([]models.CanonicalTransaction, error) {
	from, to := utils.ResolveRange(days, s.now())
	return s.fetchBetween(ctx, from, to, s.fetchLimit)
}

// fetchBetween performs the single bounded upstream fetch: resolve the
// cached merchant code when the client addresses queries by it, list
// raw records, normalize.
func (s *analyticsServiceImpl) fetchBetween(ctx context.Context, from, to time.Time, limit int) ([]models.CanonicalTransaction, error) {
	var code string
	if scoped, ok := s.client.(providers.MerchantScoped); ok && scoped.RequiresMerchantCode() {
		resolved, err := s.merchants.MerchantCode(ctx, s.client)
		if err != nil {
			return nil, err
		}
		code = resolved
	}

	raw, err := s.client.Transactions(ctx, providers.TransactionQuery{
		From:         from,
		To:           to,
		Limit:        limit,
		MerchantCode: code,
	})
	if err != nil {
		return nil, err
	}

	return s.normalizer.Normalize(raw), nil
}
