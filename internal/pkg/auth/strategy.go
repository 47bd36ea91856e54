package auth

import (
	"errors"
	"time"
)

// ErrInvalidToken covers every verification failure: malformed input, bad
// signature and natural expiry all surface the same way to callers.
var ErrInvalidToken = errors.New("invalid auth token")

// Strategy issues and verifies identity tokens.
type Strategy interface {
	IssueToken(userID int64, email string) (string, error)
	ParseToken(token string) (int64, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}

const defaultTTL = 24 * time.Hour
