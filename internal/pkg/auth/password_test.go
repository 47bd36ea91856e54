package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	if strings.Contains(hash, "s3cret") {
		t.Fatal("hash must not contain the plaintext")
	}
	if err := hasher.Compare(hash, "s3cret"); err != nil {
		t.Fatalf("expected password to verify: %v", err)
	}
	if err := hasher.Compare(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch error")
	}
}

func TestBcryptHasherSaltsPerCall(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("same-password")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	second, err := hasher.Hash("same-password")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	if first == second {
		t.Fatal("expected different salts to produce different hashes")
	}
}

func TestBcryptHasherMalformedHash(t *testing.T) {
	hasher := NewBcryptHasher(0)
	if err := hasher.Compare("not-a-bcrypt-hash", "password"); err == nil {
		t.Fatal("expected error for malformed hash")
	}
}

func TestNewBcryptHasherDefaultCost(t *testing.T) {
	hasher := NewBcryptHasher(0)
	if hasher.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost %d, got %d", bcrypt.DefaultCost, hasher.cost)
	}
}
