package providers

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/username/tillboard/backend/src/models"
)

const sumupTimeFormat = "2006-01-02T15:04:05Z"

// SumUpClient talks to the SumUp merchant API with a static bearer API
// key from configuration.
type SumUpClient struct {
	http   *resty.Client
	apiKey string
}

func NewSumUpClient(baseURL, apiKey string, timeout time.Duration) *SumUpClient {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)

	if apiKey != "" {
		httpClient.SetAuthScheme("Bearer")
		httpClient.SetAuthToken(apiKey)
	}

	return &SumUpClient{http: httpClient, apiKey: apiKey}
}

// RequiresMerchantCode reports that transaction listings should be
// addressed per merchant once the code is known.
func (c *SumUpClient) RequiresMerchantCode() bool {
	return true
}

// Profile fetches the merchant identity document from GET /me.
func (c *SumUpClient) Profile(ctx context.Context) (models.RawRecord, error) {
	if c.apiKey == "" {
		return nil, ErrMissingCredential
	}
	profile := models.RawRecord{}
	if err := c.doGet(ctx, "/me", nil, &profile); err != nil {
		return nil, err
	}
	return profile, nil
}

type sumupTransactionsResponse struct {
	Items []models.RawRecord `json:"items"`
}

// Transactions lists transactions for the query window. When a merchant
// code is known the merchant-scoped listing is used, otherwise /me.
func (c *SumUpClient) Transactions(ctx context.Context, q TransactionQuery) ([]models.RawRecord, error) {
	if c.apiKey == "" {
		return nil, ErrMissingCredential
	}

	query := map[string]string{}
	if q.Limit > 0 {
		query["limit"] = strconv.Itoa(q.Limit)
	}
	if !q.From.IsZero() {
		query["oldest_time"] = q.From.UTC().Format(sumupTimeFormat)
	}
	if !q.To.IsZero() {
		query["newest_time"] = q.To.UTC().Format(sumupTimeFormat)
	}

	path := "/me/transactions"
	if q.MerchantCode != "" {
		path = fmt.Sprintf("/merchants/%s/transactions", q.MerchantCode)
	}

	var resp sumupTransactionsResponse
	if err := c.doGet(ctx, path, query, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *SumUpClient) doGet(ctx context.Context, path string, query map[string]string, result any) error {
	req := c.http.R().SetContext(ctx).SetResult(result)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if resp.IsError() {
		return apiErrorFromResponse(resp)
	}
	return nil
}
