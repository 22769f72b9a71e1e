package normalize

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/username/tillboard/backend/src/models"
)

// Normalizer maps provider-specific raw records into canonical
// transactions. Implementations are pure: a record that cannot be fully
// understood is normalized with defaults, never rejected.
type Normalizer interface {
	Normalize(records []models.RawRecord) []models.CanonicalTransaction
}

// ForProvider returns the normalizer for an upstream provider profile.
func ForProvider(provider string) (Normalizer, error) {
	switch provider {
	case "sumup":
		return NewSumUpNormalizer(), nil
	case "goodtill":
		return NewGoodTillNormalizer(), nil
	default:
		return nil, fmt.Errorf("no normalizer available for provider: %s", provider)
	}
}

// stringField returns the first non-empty string value among keys.
func stringField(r models.RawRecord, keys ...string) string {
	for _, key := range keys {
		if v, ok := r[key]; ok {
			if s := coerceString(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// floatField returns the first numeric value among keys, coercing JSON
// numbers and numeric strings. Absent or malformed values yield 0.
func floatField(r models.RawRecord, keys ...string) float64 {
	for _, key := range keys {
		v, ok := r[key]
		if !ok {
			continue
		}
		if f, ok := coerceFloat(v); ok {
			return f
		}
	}
	return 0
}

// nestedString digs one level into a nested object field.
func nestedString(r models.RawRecord, objKey, fieldKey string) string {
	obj, ok := r[objKey].(map[string]any)
	if !ok {
		return ""
	}
	return coerceString(obj[fieldKey])
}

func coerceString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return ""
	}
}

func coerceFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f, true
		}
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}
