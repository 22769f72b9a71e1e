package models

import (
	"bytes"
	"encoding/json"
	"math"
)

// OrderedBreakdown accumulates revenue and counts per group key while
// remembering the order groups were first seen, so the serialized JSON
// object keeps that order instead of Go's randomized map iteration.
// Revenue is kept unrounded during accumulation and rounded to two
// decimal places only when the breakdown is marshaled.
type OrderedBreakdown struct {
	keys    []string
	entries map[string]*BreakdownEntry
}

func NewOrderedBreakdown() *OrderedBreakdown {
	return &OrderedBreakdown{entries: make(map[string]*BreakdownEntry)}
}

// Add folds one transaction amount into the group for key.
func (b *OrderedBreakdown) Add(key string, amount float64) {
	entry, ok := b.entries[key]
	if !ok {
		entry = &BreakdownEntry{}
		b.entries[key] = entry
		b.keys = append(b.keys, key)
	}
	entry.Count++
	entry.Revenue += amount
}

// Len returns the number of distinct groups.
func (b *OrderedBreakdown) Len() int {
	return len(b.keys)
}

// Keys returns the group keys in first-seen order.
func (b *OrderedBreakdown) Keys() []string {
	out := make([]string, len(b.keys))
	copy(out, b.keys)
	return out
}

// Get returns the unrounded accumulator for key.
func (b *OrderedBreakdown) Get(key string) (BreakdownEntry, bool) {
	entry, ok := b.entries[key]
	if !ok {
		return BreakdownEntry{}, false
	}
	return *entry, true
}

// MarshalJSON writes the breakdown as a JSON object in first-seen key
// order, rounding revenue at this output boundary.
func (b *OrderedBreakdown) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range b.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		entry := *b.entries[key]
		entry.Revenue = math.Round(entry.Revenue*100) / 100
		entryJSON, err := json.Marshal(entry)
		if err != nil {
			return nil, err
		}
		buf.Write(entryJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
