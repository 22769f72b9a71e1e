package providers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrMissingCredential means no API key or session token was
	// available for the upstream call. Surfaced to clients as 401.
	ErrMissingCredential = errors.New("upstream credential missing")
	// ErrMissingMerchantCode means identity extraction exhausted every
	// known profile path without finding a merchant code.
	ErrMissingMerchantCode = errors.New("merchant code not found in profile")
	// ErrUpstreamUnavailable wraps provider API failures. Never retried.
	ErrUpstreamUnavailable = errors.New("upstream provider unavailable")
)

// APIError carries the status and body of a non-2xx upstream response.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("upstream api error: %s", e.Status)
	}
	return fmt.Sprintf("upstream api error: %s: %s", e.Status, e.Body)
}

func apiErrorFromResponse(resp *resty.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Body:       strings.TrimSpace(resp.String()),
	}
	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrMissingCredential, apiErr.Error())
	default:
		return fmt.Errorf("%w: %s", ErrUpstreamUnavailable, apiErr.Error())
	}
}
