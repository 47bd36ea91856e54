package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func lookupFrom(values map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, lookupFrom(map[string]string{"DATABASE_URI": "postgres://localhost/fintrack"}))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.RunAddress != defaultRunAddress {
		t.Fatalf("unexpected run address %q", cfg.RunAddress)
	}
	if cfg.TokenSecret != defaultTokenSecret {
		t.Fatalf("unexpected token secret %q", cfg.TokenSecret)
	}
	if cfg.TokenStrategy != "jwt" {
		t.Fatalf("unexpected token strategy %q", cfg.TokenStrategy)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("unexpected token ttl %v", cfg.TokenTTL)
	}
	if cfg.BcryptCost != 10 {
		t.Fatalf("unexpected bcrypt cost %d", cfg.BcryptCost)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected shutdown timeout %v", cfg.ShutdownTimeout)
	}
}

func TestLoadMissingDatabaseURI(t *testing.T) {
	if _, err := load(nil, lookupFrom(nil)); err == nil {
		t.Fatal("expected error without database URI")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	cfg, err := load(nil, lookupFrom(map[string]string{
		"DATABASE_URI":   "postgres://localhost/fintrack",
		"RUN_ADDRESS":    ":9090",
		"JWT_SECRET":     "env-secret",
		"TOKEN_STRATEGY": "hmac",
		"TOKEN_TTL":      "2h",
		"BCRYPT_COST":    "12",
	}))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.RunAddress != ":9090" {
		t.Fatalf("unexpected run address %q", cfg.RunAddress)
	}
	if cfg.TokenSecret != "env-secret" {
		t.Fatalf("unexpected token secret %q", cfg.TokenSecret)
	}
	if cfg.TokenStrategy != "hmac" {
		t.Fatalf("unexpected token strategy %q", cfg.TokenStrategy)
	}
	if cfg.TokenTTL != 2*time.Hour {
		t.Fatalf("unexpected token ttl %v", cfg.TokenTTL)
	}
	if cfg.BcryptCost != 12 {
		t.Fatalf("unexpected bcrypt cost %d", cfg.BcryptCost)
	}
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	args := []string{"-a", ":7070", "-token-ttl", "30m", "-token-strategy", "jwt"}
	cfg, err := load(args, lookupFrom(map[string]string{
		"DATABASE_URI": "postgres://localhost/fintrack",
		"RUN_ADDRESS":  ":9090",
		"TOKEN_TTL":    "2h",
	}))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.RunAddress != ":7070" {
		t.Fatalf("expected flag to win, got %q", cfg.RunAddress)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Fatalf("unexpected token ttl %v", cfg.TokenTTL)
	}
}

func TestLoadSecretFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret")
	if err := os.WriteFile(path, []byte("file-secret"), 0o600); err != nil {
		t.Fatalf("write secret file: %v", err)
	}
	cfg, err := load(nil, lookupFrom(map[string]string{
		"DATABASE_URI":    "postgres://localhost/fintrack",
		"JWT_SECRET":      "env-secret",
		"JWT_SECRET_FILE": path,
	}))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.TokenSecret != "file-secret" {
		t.Fatalf("expected secret from file, got %q", cfg.TokenSecret)
	}
}

func TestLoadSecretFileMissing(t *testing.T) {
	_, err := load(nil, lookupFrom(map[string]string{
		"DATABASE_URI":    "postgres://localhost/fintrack",
		"JWT_SECRET_FILE": filepath.Join(t.TempDir(), "absent"),
	}))
	if err == nil {
		t.Fatal("expected error for missing secret file")
	}
}

func TestLoadUnknownStrategy(t *testing.T) {
	_, err := load(nil, lookupFrom(map[string]string{
		"DATABASE_URI":   "postgres://localhost/fintrack",
		"TOKEN_STRATEGY": "paseto",
	}))
	if err == nil {
		t.Fatal("expected error for unknown token strategy")
	}
}

func TestLoadInvalidDurationsFallBack(t *testing.T) {
	cfg, err := load(nil, lookupFrom(map[string]string{
		"DATABASE_URI":     "postgres://localhost/fintrack",
		"TOKEN_TTL":        "-1h",
		"SHUTDOWN_TIMEOUT": "-5s",
	}))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.TokenTTL != defaultTokenTTL {
		t.Fatalf("expected ttl fallback, got %v", cfg.TokenTTL)
	}
	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Fatalf("expected shutdown fallback, got %v", cfg.ShutdownTimeout)
	}
}
