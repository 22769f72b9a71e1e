package providers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGoodTillLogin(t *testing.T) {
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"token": "upstream-token"})
	}))
	defer server.Close()

	c := NewGoodTillClient(server.URL, "shopx", 5*time.Second)
	token, err := c.Login(context.Background(), "alice", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token != "upstream-token" {
		t.Fatalf("token = %q", token)
	}
	if gotBody["subdomain"] != "shopx" || gotBody["username"] != "alice" || gotBody["password"] != "secret" {
		t.Fatalf("login body: %+v", gotBody)
	}
}

func TestGoodTillLoginWithoutToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer server.Close()

	c := NewGoodTillClient(server.URL, "shopx", time.Second)
	if _, err := c.Login(context.Background(), "alice", "secret"); !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("err = %v, want ErrMissingCredential", err)
	}
}

func TestGoodTillTransactionsRequireSessionToken(t *testing.T) {
	c := NewGoodTillClient("http://localhost:0", "shopx", time.Second)
	if _, err := c.Transactions(context.Background(), TransactionQuery{}); !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("err = %v, want ErrMissingCredential", err)
	}
}

func TestGoodTillTransactions(t *testing.T) {
	var gotAuth, gotFrom, gotTo string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/external/get_sales" {
			t.Errorf("path = %q", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		gotFrom = r.URL.Query().Get("from")
		gotTo = r.URL.Query().Get("to")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"sales_id": "s1", "status": "completed", "total": 9.5}},
		})
	}))
	defer server.Close()

	c := NewGoodTillClient(server.URL, "shopx", 5*time.Second)
	ctx := WithSessionToken(context.Background(), "upstream-token")
	records, err := c.Transactions(ctx, TransactionQuery{
		From: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 3, 2, 23, 59, 59, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("transactions: %v", err)
	}
	if len(records) != 1 || records[0]["sales_id"] != "s1" {
		t.Fatalf("records: %+v", records)
	}
	if gotAuth != "Bearer upstream-token" {
		t.Fatalf("auth header = %q", gotAuth)
	}
	if gotFrom != "2024-03-01 00:00:00" || gotTo != "2024-03-02 23:59:59" {
		t.Fatalf("window = %q .. %q", gotFrom, gotTo)
	}
}

func TestGoodTillProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/profile" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"profile": map[string]any{"merchant_code": "G42"},
		})
	}))
	defer server.Close()

	c := NewGoodTillClient(server.URL, "shopx", 5*time.Second)
	ctx := WithSessionToken(context.Background(), "upstream-token")
	profile, err := c.Profile(ctx)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	nested, ok := profile["profile"].(map[string]any)
	if !ok || nested["merchant_code"] != "G42" {
		t.Fatalf("profile: %+v", profile)
	}
}

func TestForProviderFactory(t *testing.T) {
	opts := Options{Timeout: time.Second}
	if _, err := ForProvider("sumup", opts); err != nil {
		t.Fatalf("sumup: %v", err)
	}
	client, err := ForProvider("goodtill", opts)
	if err != nil {
		t.Fatalf("goodtill: %v", err)
	}
	if _, ok := client.(SessionProvider); !ok {
		t.Fatalf("goodtill client should support session login")
	}
	if _, ok := client.(MerchantScoped); ok {
		t.Fatalf("goodtill queries are not merchant-scoped")
	}
	if _, err := ForProvider("izettle", opts); err == nil {
		t.Fatalf("expected error for unsupported provider")
	}
}
