// Copyright (c) 2026 Kasane. All rights reserved.

package auth

import (
	"context"
	"time"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {
	/*
		Create persists a new account.

		Returns:
		  - error: apperr.Conflict when the username or email is taken
	*/
	Create(context context.Context, user *User) error

	/*
		FindByLogin returns the account whose username or email matches.

		Returns:
		  - *User: Including the password hash for credential checks
		  - error: apperr.NotFound when no account matches
	*/
	FindByLogin(context context.Context, login string) (*User, error)

	/*
		FindByID returns one account.

		Returns:
		  - *User: Including the password hash
		  - error: apperr.NotFound when absent
	*/
	FindByID(context context.Context, id int64) (*User, error)
}

// # Session Data Access

// SessionStore defines the volatile storage contract for refresh sessions.
//
// Sessions expire by TTL; there is no revocation list. Logout and refresh
// rotation delete the entry directly.
type SessionStore interface {
	// Save stores a session under its TTL.
	Save(context context.Context, session *Session, ttl time.Duration) error

	/*
		Find returns a live session.

		Returns:
		  - *Session
		  - error: apperr.Unauthorized when the session is absent or expired
	*/
	Find(context context.Context, sessionID string) (*Session, error)

	// Delete removes a session. Deleting an absent session is not an error.
	Delete(context context.Context, sessionID string) error
}
