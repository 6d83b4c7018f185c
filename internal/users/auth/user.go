// Copyright (c) 2026 Kasane. All rights reserved.

/*
Package auth implements account identity and session management.

Accounts live in PostgreSQL; refresh sessions live in Redis under a TTL
so an expired session disappears without a cleanup job. Access tokens are
short-lived RS256 JWTs carrying the user's ID, username, and role, which
lets the middleware authenticate requests without a database read.
*/
package auth

import (
	"time"

	"github.com/kasaneapp/kasane/internal/platform/sec"
)

// # Domain Entities

// User is a registered reader or staff account.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         sec.Role  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session is one active refresh-token session. The ID doubles as the
// refresh token itself: an unguessable UUIDv7 held only by the client
// cookie and the Redis entry.
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Role      string    `json:"role"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// # Validation Field Identifiers

const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldLogin    = "login"
)
