package providers

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/username/tillboard/backend/src/models"
)

const goodtillTimeFormat = "2006-01-02 15:04:05"

// GoodTillClient talks to the GoodTill API. Its credential is a session
// token obtained via Login and carried per request on the context.
type GoodTillClient struct {
	http      *resty.Client
	subdomain string
}

func NewGoodTillClient(baseURL, subdomain string, timeout time.Duration) *GoodTillClient {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)

	return &GoodTillClient{http: httpClient, subdomain: subdomain}
}

type goodtillLoginResponse struct {
	Token string `json:"token"`
}

// Login exchanges subdomain/username/password for an upstream session
// token via POST /login.
func (c *GoodTillClient) Login(ctx context.Context, username, password string) (string, error) {
	var loginResp goodtillLoginResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"subdomain": c.subdomain,
			"username":  username,
			"password":  password,
		}).
		SetResult(&loginResp).
		Post("/login")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if resp.IsError() {
		return "", apiErrorFromResponse(resp)
	}
	if loginResp.Token == "" {
		return "", fmt.Errorf("%w: login response carried no token", ErrMissingCredential)
	}
	return loginResp.Token, nil
}

// Profile fetches the account profile document from GET /profile.
func (c *GoodTillClient) Profile(ctx context.Context) (models.RawRecord, error) {
	profile := models.RawRecord{}
	if err := c.doGet(ctx, "/profile", nil, &profile); err != nil {
		return nil, err
	}
	return profile, nil
}

type goodtillSalesResponse struct {
	Data []models.RawRecord `json:"data"`
}

// Transactions lists sales for the query window from GET
// /external/get_sales. GoodTill bounds the window server-side, so the
// limit parameter is not forwarded.
func (c *GoodTillClient) Transactions(ctx context.Context, q TransactionQuery) ([]models.RawRecord, error) {
	query := map[string]string{}
	if !q.From.IsZero() {
		query["from"] = q.From.Format(goodtillTimeFormat)
	}
	if !q.To.IsZero() {
		query["to"] = q.To.Format(goodtillTimeFormat)
	}

	var resp goodtillSalesResponse
	if err := c.doGet(ctx, "/external/get_sales", query, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *GoodTillClient) doGet(ctx context.Context, path string, query map[string]string, result any) error {
	token := SessionTokenFromContext(ctx)
	if token == "" {
		return ErrMissingCredential
	}

	req := c.http.R().
		SetContext(ctx).
		SetAuthScheme("Bearer").
		SetAuthToken(token).
		SetResult(result)
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
