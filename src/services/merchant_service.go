package services

import (
	"context"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/username/tillboard/backend/src/logger"
	"github.com/username/tillboard/backend/src/models"
	"github.com/username/tillboard/backend/src/providers"
)

const merchantCodeKey = "merchant_code"

// merchantCodePaths are the known locations of the merchant code in a
// profile document, in resolution order. Profile shape varies by
// account type and API revision.
var merchantCodePaths = []struct {
	object string // empty for top level
	field  string
}{
	{"", "merchant_code"},
	{"merchant_profile", "merchant_code"},
	{"profile", "merchant_code"},
}

// MerchantService caches the upstream merchant code discovered from the
// provider profile. The TTL is injectable policy rather than
// process-forever; a failed extraction is terminal for the current
// request but never poisons the cache.
type MerchantService struct {
	cache *cache.Cache
}

func NewMerchantService(ttl time.Duration) *MerchantService {
	return &MerchantService{cache: cache.New(ttl, 2*ttl)}
}

// MerchantCode returns the cached code or fetches the profile and
// extracts it.
func (s *MerchantService) MerchantCode(ctx context.Context, client providers.Client) (string, error) {
	if code, found := s.cache.Get(merchantCodeKey); found {
		return code.(string), nil
	}

	profile, err := client.Profile(ctx)
	if err != nil {
		return "", err
	}

	code := extractMerchantCode(profile)
	if code == "" {
		// Log the keys we did receive to aid diagnosing upstream schema drift.
		logger.FromContext(ctx).Error("Merchant code not found in profile", "profileKeys", topLevelKeys(profile))
		return "", providers.ErrMissingMerchantCode
	}

	s.cache.Set(merchantCodeKey, code, cache.DefaultExpiration)
	return code, nil
}

func extractMerchantCode(profile models.RawRecord) string {
	for _, path := range merchantCodePaths {
		record := profile
		if path.object != "" {
			nested, ok := profile[path.object].(map[string]any)
			if !ok {
				continue
			}
			record = nested
		}
		if code, ok := record[path.field].(string); ok && code != "" {
			return code
		}
	}
	return ""
}

func topLevelKeys(record models.RawRecord) []string {
	keys := make([]string, 0, len(record))
	for key := range record {
		keys = append(keys, key)
	}
	return keys
}
