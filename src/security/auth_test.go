package security

import (
	"testing"
	"time"
)

const testSecret = "a-test-secret-key-long-enough-for-hs256!"

func TestSessionTokenRoundTrip(t *testing.T) {
	a := NewAuthService(testSecret)

	token, err := a.GenerateSessionToken("upstream-token-123", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	upstream, err := a.ValidateSessionToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if upstream != "upstream-token-123" {
		t.Fatalf("upstream token = %q, want upstream-token-123", upstream)
	}
}

func TestSessionTokenRejectsEmptyUpstream(t *testing.T) {
	a := NewAuthService(testSecret)
	if _, err := a.GenerateSessionToken("", time.Hour); err == nil {
		t.Fatalf("expected error for empty upstream token")
	}
}

func TestSessionTokenWrongSecret(t *testing.T) {
	a := NewAuthService(testSecret)
	token, err := a.GenerateSessionToken("upstream-token-123", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	other := NewAuthService("a-different-secret-key-also-long-enough!")
	if _, err := other.ValidateSessionToken(token); err == nil {
		t.Fatalf("expected validation failure with wrong secret")
	}
}

func TestSessionTokenExpired(t *testing.T) {
	a := NewAuthService(testSecret)
	token, err := a.GenerateSessionToken("upstream-token-123", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := a.ValidateSessionToken(token); err == nil {
		t.Fatalf("expected validation failure for expired token")
	}
}

func TestSessionTokenGarbage(t *testing.T) {
	a := NewAuthService(testSecret)
	if _, err := a.ValidateSessionToken("not.a.jwt"); err == nil {
		t.Fatalf("expected validation failure for malformed token")
	}
}
