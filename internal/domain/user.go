package domain

import "time"

// User is the domain entity for a user account. Email is stored normalized
// (trimmed, lowercased); PasswordHash is a bcrypt hash and never leaves the
// service layer.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
