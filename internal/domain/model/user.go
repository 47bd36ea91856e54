package model

import "time"

// User represents a registered account. Email doubles as the login key.
type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
