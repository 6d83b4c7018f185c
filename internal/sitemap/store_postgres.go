// Copyright (c) 2026 Kasane. All rights reserved.

package sitemap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kasaneapp/kasane/internal/platform/apperr"
	"github.com/kasaneapp/kasane/internal/platform/database/schema"
)

// # Repository Implementation

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed sitemap store.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
ListBooks returns every published book of a realm with its freshest
ACTIVE chapter time.

Description: The lateral-free variant: a grouped LEFT JOIN over the
chapter table keeps books without chapters in the result with a NULL
timestamp, which renders as a lastmod-less entry.
*/
func (repository *PostgresRepository) ListBooks(context context.Context, isAdult bool) ([]BookEntry, error) {
	query := fmt.Sprintf(`
		SELECT b.%s, b.%s, MAX(c.%s) AS lastupload
		FROM %s b
		LEFT JOIN %s c ON c.%s = b.%s AND c.%s = 'ACTIVE'
		WHERE b.%s <> 'DRAFT' AND b.%s = $1
		GROUP BY b.%s, b.%s
		ORDER BY b.%s ASC`,
		schema.CoreBook.ID, schema.CoreBook.Slug, schema.CoreChapter.CreatedAt,
		schema.CoreBook.Table,
		schema.CoreChapter.Table, schema.CoreChapter.BookID, schema.CoreBook.ID, schema.CoreChapter.Status,
		schema.CoreBook.Status, schema.CoreBook.IsAdult,
		schema.CoreBook.ID, schema.CoreBook.Slug,
		schema.CoreBook.ID,
	)

	rows, err := repository.pool.Query(context, query, isAdult)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list sitemap books: %w", err)
	}
	defer rows.Close()

	entries := []BookEntry{}
	for rows.Next() {
		var entry BookEntry
		var lastUpload *time.Time

		if err := rows.Scan(&entry.ID, &entry.Slug, &lastUpload); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan sitemap book: %w", err)
		}

		if lastUpload != nil {
			entry.LastUpload = *lastUpload
		}

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

/*
FindBook returns one published book of a realm.

Returns:
  - *BookEntry: Slug and freshest ACTIVE chapter time
  - error: apperr.NotFound when absent, draft, or cross-realm
*/
func (repository *PostgresRepository) FindBook(context context.Context, bookID int64, isAdult bool) (*BookEntry, error) {
	query := fmt.Sprintf(`
		SELECT b.%s, b.%s, MAX(c.%s) AS lastupload
		FROM %s b
		LEFT JOIN %s c ON c.%s = b.%s AND c.%s = 'ACTIVE'
		WHERE b.%s = $1 AND b.%s <> 'DRAFT' AND b.%s = $2
		GROUP BY b.%s, b.%s`,
		schema.CoreBook.ID, schema.CoreBook.Slug, schema.CoreChapter.CreatedAt,
		schema.CoreBook.Table,
		schema.CoreChapter.Table, schema.CoreChapter.BookID, schema.CoreBook.ID, schema.CoreChapter.Status,
		schema.CoreBook.ID, schema.CoreBook.Status, schema.CoreBook.IsAdult,
		schema.CoreBook.ID, schema.CoreBook.Slug,
	)

	entry := &BookEntry{}
	var lastUpload *time.Time

	err := repository.pool.QueryRow(context, query, bookID, isAdult).Scan(&entry.ID, &entry.Slug, &lastUpload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Book")
		}
		return nil, fmt.Errorf("postgres: failed to find sitemap book: %w", err)
	}

	if lastUpload != nil {
		entry.LastUpload = *lastUpload
	}

	return entry, nil
}

// ListChapters returns a book's ACTIVE chapters, oldest first.
func (repository *PostgresRepository) ListChapters(context context.Context, bookID int64) ([]ChapterEntry, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = 'ACTIVE'
		ORDER BY %s ASC, %s ASC`,
		schema.CoreChapter.ID, schema.CoreChapter.Number, schema.CoreChapter.CreatedAt,
		schema.CoreChapter.Table,
		schema.CoreChapter.BookID, schema.CoreChapter.Status,
		schema.CoreChapter.Number, schema.CoreChapter.ID,
	)

	rows, err := repository.pool.Query(context, query, bookID)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list sitemap chapters: %w", err)
	}
	defer rows.Close()

	chapters := []ChapterEntry{}
	for rows.Next() {
		var chapter ChapterEntry
		if err := rows.Scan(&chapter.ID, &chapter.Number, &chapter.CreatedAt); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan sitemap chapter: %w", err)
		}
		chapters = append(chapters, chapter)
	}

	return chapters, rows.Err()
}
