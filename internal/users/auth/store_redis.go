// Copyright (c) 2026 Kasane. All rights reserved.

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kasaneapp/kasane/internal/platform/apperr"
	"github.com/kasaneapp/kasane/internal/platform/constants"
)

// # Session Store

// RedisSessionStore implements [SessionStore] on Redis. Expiry is handled
// entirely by the key TTL; a vanished key is an expired session.
type RedisSessionStore struct {
	client *redis.Client
}

// NewSessionStore constructs a Redis backed session store.
func NewSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

// sessionKey builds the taxonomy key for one refresh session.
func sessionKey(sessionID string) string {
	return constants.RedisPrefixSession + sessionID
}

// Save stores a session as JSON under its TTL.
func (store *RedisSessionStore) Save(context context.Context, session *Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("redis: failed to marshal session: %w", err)
	}

	if err := store.client.Set(context, sessionKey(session.ID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis: failed to save session: %w", err)
	}

	return nil
}

/*
Find returns a live session.

Returns:
  - *Session
  - error: apperr.Unauthorized when the session is absent or expired
*/
func (store *RedisSessionStore) Find(context context.Context, sessionID string) (*Session, error) {
	payload, err := store.client.Get(context, sessionKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.Unauthorized("Session expired or revoked")
		}
		return nil, fmt.Errorf("redis: failed to read session: %w", err)
	}

	session := &Session{}
	if err := json.Unmarshal(payload, session); err != nil {
		return nil, fmt.Errorf("redis: failed to unmarshal session: %w", err)
	}

	return session, nil
}

// Delete removes a session. Deleting an absent session is not an error.
func (store *RedisSessionStore) Delete(context context.Context, sessionID string) error {
	if err := store.client.Del(context, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis: failed to delete session: %w", err)
	}

	return nil
}
