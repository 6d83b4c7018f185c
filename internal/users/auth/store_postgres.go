// Copyright (c) 2026 Kasane. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kasaneapp/kasane/internal/platform/apperr"
	"github.com/kasaneapp/kasane/internal/platform/database/schema"
	"github.com/kasaneapp/kasane/internal/platform/dberr"
)

// # User Repository

// PostgresUserRepository implements [UserRepository] using pgx.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository constructs a PostgreSQL backed account store.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

/*
Create persists a new account.

Parameters:
  - context: context.Context
  - user: *User (Username, Email, PasswordHash, Role set)

Returns:
  - error: apperr.Conflict when the username or email is taken
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s, %s`,
		schema.UsersAccount.Table,
		schema.UsersAccount.Username, schema.UsersAccount.Email,
		schema.UsersAccount.PasswordHash, schema.UsersAccount.Role,
		schema.UsersAccount.ID, schema.UsersAccount.CreatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		user.Username, user.Email, user.PasswordHash, string(user.Role),
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create account")
	}

	return nil
}

/*
FindByLogin returns the account whose username or email matches.

Description: One query covers both login styles; usernames and emails
occupy disjoint namespaces (an email always contains '@', a username never
does), so the OR cannot match two rows.

Returns:
  - *User: Including the password hash
  - error: apperr.NotFound when no account matches
*/
func (repository *PostgresUserRepository) FindByLogin(context context.Context, login string) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 OR %s = $1`,
		schema.UsersAccount.ID, schema.UsersAccount.Username, schema.UsersAccount.Email,
		schema.UsersAccount.PasswordHash, schema.UsersAccount.Role, schema.UsersAccount.CreatedAt,
		schema.UsersAccount.Table,
		schema.UsersAccount.Username, schema.UsersAccount.Email,
	)

	return repository.scanUser(repository.pool.QueryRow(context, query, login))
}

/*
FindByID returns one account.

Returns:
  - *User: Including the password hash
  - error: apperr.NotFound when absent
*/
func (repository *PostgresUserRepository) FindByID(context context.Context, id int64) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1`,
		schema.UsersAccount.ID, schema.UsersAccount.Username, schema.UsersAccount.Email,
		schema.UsersAccount.PasswordHash, schema.UsersAccount.Role, schema.UsersAccount.CreatedAt,
		schema.UsersAccount.Table,
		schema.UsersAccount.ID,
	)

	return repository.scanUser(repository.pool.QueryRow(context, query, id))
}

// scanUser maps one account row, translating the empty result.
func (repository *PostgresUserRepository) scanUser(row pgx.Row) (*User, error) {
	user := &User{}
	err := row.Scan(
		&user.ID, &user.Username, &user.Email,
		&user.PasswordHash, &user.Role, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Account")
		}
		return nil, fmt.Errorf("postgres: failed to scan account: %w", err)
	}

	return user, nil
}
