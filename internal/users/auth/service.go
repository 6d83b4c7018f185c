// Copyright (c) 2026 Kasane. All rights reserved.

package auth

import (
	"context"
	"time"

	"github.com/kasaneapp/kasane/internal/platform/apperr"
	"github.com/kasaneapp/kasane/internal/platform/constants"
	"github.com/kasaneapp/kasane/internal/platform/sec"
	"github.com/kasaneapp/kasane/internal/platform/validate"
	"github.com/kasaneapp/kasane/pkg/uuidv7"
)

// # Contracts & Types

// TokenProvider defines the contract for minting access tokens.
type TokenProvider interface {
	GenerateAccessToken(userID int64, username, role string, timeToLive time.Duration) (string, error)
}

// Service implements account registration and the session lifecycle.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, login, or
// session rotation logic must be reviewed before merging.
type Service struct {
	users    UserRepository
	sessions SessionStore
	tokens   TokenProvider
}

// NewService constructs a new [Service] with its dependencies.
func NewService(users UserRepository, sessions SessionStore, tokens TokenProvider) *Service {
	return &Service{users: users, sessions: sessions, tokens: tokens}
}

// # Registration

// RegisterInput holds the data required to enroll a new reader.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

/*
Register validates input and creates a new reader account.

Description: Passwords are hashed with bcrypt before anything touches
storage. New accounts always start as readers; staff roles are granted out
of band.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: The created account without its hash exposed in JSON
  - error: Validation errors, apperr.Conflict when username/email is taken
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {
	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).
		MinLen(FieldUsername, input.Username, 3).
		MaxLen(FieldUsername, input.Username, 30)
	validator.Required(FieldEmail, input.Email).Email(FieldEmail, input.Email)
	validator.Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, 8).
		MaxLen(FieldPassword, input.Password, 72)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	hash, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := &User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         sec.RoleReader,
	}

	if err := service.users.Create(context, user); err != nil {
		return nil, err
	}

	return user, nil
}

// # Session Lifecycle

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Login    string
	Password string
}

// LoginSession is a successfully established session: the short-lived
// access token plus the refresh session backing it.
type LoginSession struct {
	User         *User
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

/*
Login verifies credentials and establishes a session.

Description: The login value matches username or email. Credential
failures of either kind (unknown account, wrong password) collapse into
one Unauthorized so responses don't reveal which accounts exist.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Access token, refresh session ID, and the account
  - error: apperr.Unauthorized on any credential failure
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {
	validator := &validate.Validator{}
	validator.Required(FieldLogin, input.Login).Required(FieldPassword, input.Password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	user, err := service.users.FindByLogin(context, input.Login)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	return service.establishSession(context, user)
}

/*
Refresh rotates a session and mints a fresh access token.

Description: The presented session is deleted before its replacement is
created, so a refresh token works exactly once; replaying a stolen one
after the legitimate client refreshed fails with Unauthorized. The account
is re-read so role changes and deletions take effect at the next rotation
rather than only at re-login.

Parameters:
  - context: context.Context
  - refreshToken: string (The session ID from the auth cookie)

Returns:
  - *LoginSession: New access token and replacement refresh session
  - error: apperr.Unauthorized when the session is absent, expired, or
    its account no longer exists
*/
func (service *Service) Refresh(context context.Context, refreshToken string) (*LoginSession, error) {
	if refreshToken == "" {
		return nil, apperr.Unauthorized("Missing refresh token")
	}

	session, err := service.sessions.Find(context, refreshToken)
	if err != nil {
		return nil, err
	}

	// Rotation: the old session dies before its successor exists.
	if err := service.sessions.Delete(context, session.ID); err != nil {
		return nil, err
	}

	user, err := service.users.FindByID(context, session.UserID)
	if err != nil {
		return nil, apperr.Unauthorized("Account no longer exists")
	}

	return service.establishSession(context, user)
}

/*
Logout revokes a session. Revoking an absent session succeeds silently so
logout is idempotent.
*/
func (service *Service) Logout(context context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	return service.sessions.Delete(context, refreshToken)
}

/*
Me returns the authenticated caller's account.
*/
func (service *Service) Me(context context.Context, userID int64) (*User, error) {
	return service.users.FindByID(context, userID)
}

// establishSession mints the access token and persists a new refresh
// session for the user.
func (service *Service) establishSession(context context.Context, user *User) (*LoginSession, error) {
	accessToken, err := service.tokens.GenerateAccessToken(
		user.ID, user.Username, string(user.Role), constants.AccessTokenTTL,
	)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	session := &Session{
		ID:        uuidv7.New(),
		UserID:    user.ID,
		Username:  user.Username,
		Role:      string(user.Role),
		ExpiresAt: time.Now().Add(constants.RefreshSessionTTL),
	}

	if err := service.sessions.Save(context, session, constants.RefreshSessionTTL); err != nil {
		return nil, apperr.Internal(err)
	}

	return &LoginSession{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: session.ID,
		ExpiresIn:    int64(constants.AccessTokenTTL.Seconds()),
	}, nil
}
