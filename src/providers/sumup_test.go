package providers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSumUpTransactionsQuery(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotQuery = map[string]string{
			"limit":       r.URL.Query().Get("limit"),
			"oldest_time": r.URL.Query().Get("oldest_time"),
			"newest_time": r.URL.Query().Get("newest_time"),
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]any{{"id": "1", "status": "SUCCESSFUL", "amount": 10.0}},
		})
	}))
	defer server.Close()

	c := NewSumUpClient(server.URL, "test-key", 5*time.Second)
	records, err := c.Transactions(context.Background(), TransactionQuery{
		From:  time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC),
		To:    time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC),
		Limit: 1000,
	})
	if err != nil {
		t.Fatalf("transactions: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	if gotPath != "/me/transactions" {
		t.Fatalf("path = %q, want /me/transactions", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("auth header = %q", gotAuth)
	}
	if gotQuery["limit"] != "1000" {
		t.Fatalf("limit param = %q", gotQuery["limit"])
	}
	if gotQuery["oldest_time"] != "2024-02-14T00:00:00Z" {
		t.Fatalf("oldest_time = %q", gotQuery["oldest_time"])
	}
	if gotQuery["newest_time"] != "2024-03-15T23:59:59Z" {
		t.Fatalf("newest_time = %q", gotQuery["newest_time"])
	}
}

func TestSumUpTransactionsMerchantScopedPath(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"items": []map[string]any{}})
	}))
	defer server.Close()

	c := NewSumUpClient(server.URL, "test-key", 5*time.Second)
	if _, err := c.Transactions(context.Background(), TransactionQuery{MerchantCode: "M123"}); err != nil {
		t.Fatalf("transactions: %v", err)
	}
	if gotPath != "/merchants/M123/transactions" {
		t.Fatalf("path = %q, want /merchants/M123/transactions", gotPath)
	}
}

func TestSumUpProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/me" {
			t.Errorf("path = %q, want /me", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"merchant_code": "M123"})
	}))
	defer server.Close()

	c := NewSumUpClient(server.URL, "test-key", 5*time.Second)
	profile, err := c.Profile(context.Background())
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile["merchant_code"] != "M123" {
		t.Fatalf("profile: %+v", profile)
	}
}

func TestSumUpIsMerchantScoped(t *testing.T) {
	c := NewSumUpClient("http://localhost:0", "test-key", time.Second)
	var scoped MerchantScoped = c
	if !scoped.RequiresMerchantCode() {
		t.Fatalf("sumup queries should be merchant-scoped")
	}
}

func TestSumUpMissingAPIKey(t *testing.T) {
	c := NewSumUpClient("http://localhost:0", "", time.Second)
	if _, err := c.Profile(context.Background()); !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("err = %v, want ErrMissingCredential", err)
	}
	if _, err := c.Transactions(context.Background(), TransactionQuery{}); !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("err = %v, want ErrMissingCredential", err)
	}
}

func TestSumUpErrorMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrMissingCredential},
		{http.StatusForbidden, ErrMissingCredential},
		{http.StatusInternalServerError, ErrUpstreamUnavailable},
		{http.StatusBadGateway, ErrUpstreamUnavailable},
	}

	for _, tc := range tests {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", tc.status)
		}))
		c := NewSumUpClient(server.URL, "test-key", time.Second)
		_, err := c.Profile(context.Background())
		server.Close()
		if !errors.Is(err, tc.want) {
			t.Fatalf("status %d: err = %v, want %v", tc.status, err, tc.want)
		}
	}
}
