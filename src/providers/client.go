package providers

import (
	"context"
	"fmt"
	"time"

	"github.com/username/tillboard/backend/src/models"
)

// TransactionQuery bounds a single upstream fetch window. This is one
// bounded request; the proxy does not paginate beyond it.
type TransactionQuery struct {
	From         time.Time
	To           time.Time
	Limit        int
	MerchantCode string
}

// Client is an upstream POS/payment provider. Profile returns the
// merchant/account identity document as-is; Transactions returns the raw
// records for a query window, already parsed but not yet normalized.
type Client interface {
	Profile(ctx context.Context) (models.RawRecord, error)
	Transactions(ctx context.Context, q TransactionQuery) ([]models.RawRecord, error)
}

// SessionProvider is implemented by providers whose credential is a
// per-session token obtained through an upstream login.
type SessionProvider interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// MerchantScoped is implemented by clients whose transaction listing is
// addressed by a merchant code extracted from the profile document.
// Clients that report false are queried directly and skip merchant
// resolution entirely.
type MerchantScoped interface {
	RequiresMerchantCode() bool
}

// Options carries the provider connection settings from config.
type Options struct {
	SumUpBaseURL      string
	SumUpAPIKey       string
	GoodTillBaseURL   string
	GoodTillSubdomain string
	Timeout           time.Duration
}

// ForProvider builds the client for the configured upstream provider.
func ForProvider(provider string, opts Options) (Client, error) {
	switch provider {
	case "sumup":
		return NewSumUpClient(opts.SumUpBaseURL, opts.SumUpAPIKey, opts.Timeout), nil
	case "goodtill":
		return NewGoodTillClient(opts.GoodTillBaseURL, opts.GoodTillSubdomain, opts.Timeout), nil
	default:
		return nil, fmt.Errorf("no client available for provider: %s", provider)
	}
}

type sessionTokenKey struct{}

// WithSessionToken stashes a per-request upstream session token on the
// context. Session-based providers read it back for their calls.
func WithSessionToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, sessionTokenKey{}, token)
}

// SessionTokenFromContext returns the upstream session token, if any.
func SessionTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(sessionTokenKey{}).(string)
	return token
}
