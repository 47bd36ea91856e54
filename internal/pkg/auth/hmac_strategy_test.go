package auth

import (
	"encoding/base64"
	"testing"
	"time"
)

func TestHMACStrategyRoundTrip(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Hour})

	token, err := strategy.IssueToken(7, "user@example.com")
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}

	userID, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if userID != 7 {
		t.Fatalf("expected user id 7, got %d", userID)
	}
}

func TestHMACStrategyRejectsTampering(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Hour})

	token, err := strategy.IssueToken(7, "user@example.com")
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}

	raw, _ := base64.StdEncoding.DecodeString(token)
	tampered := base64.StdEncoding.EncodeToString([]byte("9" + string(raw[1:])))
	if _, err := strategy.ParseToken(tampered); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestHMACStrategyRejectsExpired(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Hour})
	strategy.ttl = -time.Minute

	token, err := strategy.IssueToken(7, "user@example.com")
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}
	if _, err := strategy.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestHMACStrategyRejectsMalformed(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	cases := []string{
		"",
		"!!!not-base64!!!",
		base64.StdEncoding.EncodeToString([]byte("only-one-part")),
		base64.StdEncoding.EncodeToString([]byte("a:b:c:d")),
	}
	for _, token := range cases {
		if _, err := strategy.ParseToken(token); err != ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", token, err)
		}
	}
}

func TestHMACStrategyName(t *testing.T) {
	if got := NewHMACStrategy("secret", Options{}).Name(); got != "hmac" {
		t.Fatalf("unexpected strategy name %q", got)
	}
}
