// Copyright (c) 2026 Kasane. All rights reserved.

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasaneapp/kasane/internal/platform/apperr"
	"github.com/kasaneapp/kasane/internal/platform/sec"
)

type fakeUsers struct {
	users map[string]*User // keyed by username and email
	byID  map[int64]*User

	nextID int64
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: map[string]*User{}, byID: map[int64]*User{}, nextID: 1}
}

func (f *fakeUsers) Create(_ context.Context, user *User) error {
	if _, exists := f.users[user.Username]; exists {
		return apperr.Conflict("Resource already exists")
	}
	if _, exists := f.users[user.Email]; exists {
		return apperr.Conflict("Resource already exists")
	}

	user.ID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now()

	f.users[user.Username] = user
	f.users[user.Email] = user
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUsers) FindByLogin(_ context.Context, login string) (*User, error) {
	if user, ok := f.users[login]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("Account")
}

func (f *fakeUsers) FindByID(_ context.Context, id int64) (*User, error) {
	if user, ok := f.byID[id]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("Account")
}

type fakeSessions struct {
	store map[string]*Session
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{store: map[string]*Session{}}
}

func (f *fakeSessions) Save(_ context.Context, session *Session, _ time.Duration) error {
	f.store[session.ID] = session
	return nil
}

func (f *fakeSessions) Find(_ context.Context, sessionID string) (*Session, error) {
	if session, ok := f.store[sessionID]; ok {
		return session, nil
	}
	return nil, apperr.Unauthorized("Session expired or revoked")
}

func (f *fakeSessions) Delete(_ context.Context, sessionID string) error {
	delete(f.store, sessionID)
	return nil
}

type fakeTokens struct{}

func (fakeTokens) GenerateAccessToken(int64, string, string, time.Duration) (string, error) {
	return "signed-token", nil
}

func newTestService() (*Service, *fakeUsers, *fakeSessions) {
	users := newFakeUsers()
	sessions := newFakeSessions()
	return NewService(users, sessions, fakeTokens{}), users, sessions
}

func register(t *testing.T, service *Service) *User {
	t.Helper()

	user, err := service.Register(context.Background(), RegisterInput{
		Username: "reader",
		Email:    "reader@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	return user
}

func TestRegister_HashesPasswordAndDefaultsRole(t *testing.T) {
	service, _, _ := newTestService()

	user := register(t, service)

	assert.Equal(t, sec.RoleReader, user.Role)
	assert.NotEqual(t, "correct horse battery", user.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("correct horse battery", user.PasswordHash))
}

func TestRegister_DuplicateConflicts(t *testing.T) {
	service, _, _ := newTestService()
	register(t, service)

	_, err := service.Register(context.Background(), RegisterInput{
		Username: "reader",
		Email:    "other@example.com",
		Password: "another password",
	})

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "CONFLICT", appErr.Code)
}

func TestRegister_RejectsShortPassword(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.Register(context.Background(), RegisterInput{
		Username: "reader",
		Email:    "reader@example.com",
		Password: "short",
	})
	assert.Error(t, err)
}

func TestLogin_ByUsernameAndEmail(t *testing.T) {
	service, _, sessions := newTestService()
	register(t, service)

	for _, login := range []string{"reader", "reader@example.com"} {
		session, err := service.Login(context.Background(), LoginInput{
			Login:    login,
			Password: "correct horse battery",
		})
		require.NoError(t, err)

		assert.Equal(t, "signed-token", session.AccessToken)
		assert.NotEmpty(t, session.RefreshToken)
		assert.Contains(t, sessions.store, session.RefreshToken)
	}
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	service, _, _ := newTestService()
	register(t, service)

	_, unknownErr := service.Login(context.Background(), LoginInput{Login: "ghost", Password: "whatever1"})
	_, wrongErr := service.Login(context.Background(), LoginInput{Login: "reader", Password: "wrong password"})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestRefresh_RotatesSession(t *testing.T) {
	service, _, sessions := newTestService()
	register(t, service)

	login, err := service.Login(context.Background(), LoginInput{
		Login:    "reader",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	refreshed, err := service.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)

	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)
	assert.NotContains(t, sessions.store, login.RefreshToken)
	assert.Contains(t, sessions.store, refreshed.RefreshToken)

	// The consumed token cannot be replayed.
	_, err = service.Refresh(context.Background(), login.RefreshToken)
	assert.Error(t, err)
}

func TestRefresh_MissingTokenFails(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.Refresh(context.Background(), "")
	assert.Error(t, err)
}

func TestLogout_IsIdempotent(t *testing.T) {
	service, _, sessions := newTestService()
	register(t, service)

	login, err := service.Login(context.Background(), LoginInput{
		Login:    "reader",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), login.RefreshToken))
	assert.NotContains(t, sessions.store, login.RefreshToken)

	require.NoError(t, service.Logout(context.Background(), login.RefreshToken))
	require.NoError(t, service.Logout(context.Background(), ""))
}
