// Copyright (c) 2026 Kasane. All rights reserved.

package bookmark

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kasaneapp/kasane/internal/platform/apperr"
	"github.com/kasaneapp/kasane/internal/platform/database/schema"
	"github.com/kasaneapp/kasane/internal/platform/dberr"
)

// # Repository Implementation

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed bookmark store.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// # Shelf Reads

/*
ListByUser returns one page of the reader's shelf within a realm.

Description: Joins the book summary and the bookmarked chapter onto each
row. The chapter join is LEFT because a chapter can be removed after being
bookmarked; the shelf row survives with its ref absent. Ordered by most
recently touched bookmark first.

Parameters:
  - context: context.Context
  - userID: int64
  - isAdult: bool
  - shelfType: Type (Empty means all types)
  - limit: int
  - offset: int

Returns:
  - []*Bookmark: Hydrated shelf page
  - int: Total shelf size under the same filters
  - error: Database execution failures
*/
func (repository *PostgresRepository) ListByUser(
	context context.Context,
	userID int64,
	isAdult bool,
	shelfType Type,
	limit, offset int,
) ([]*Bookmark, int, error) {

	conditions := []string{"m.userid = $1", "m.isadult = $2"}
	arguments := []any{userID, isAdult}
	argID := 3

	if shelfType != "" {
		conditions = append(conditions, fmt.Sprintf("m.type = $%d", argID))
		arguments = append(arguments, string(shelfType))
		argID++
	}

	query := fmt.Sprintf(`
		SELECT
			m.id, m.bookid, m.type, m.customtypeid,
			m.createdat, m.updatedat,
			b.id, b.slug, b.title, b.type, b.coverurl,
			c.id, c.number,
			COUNT(*) OVER() AS total
		FROM %s m
		JOIN %s b ON b.%s = m.%s
		LEFT JOIN %s c ON c.%s = m.%s
		WHERE %s
		ORDER BY m.updatedat DESC, m.id DESC
		LIMIT $%d OFFSET $%d`,
		schema.UsersBookmark.Table,
		schema.CoreBook.Table, schema.CoreBook.ID, schema.UsersBookmark.BookID,
		schema.CoreChapter.Table, schema.CoreChapter.ID, schema.UsersBookmark.ChapterID,
		strings.Join(conditions, " AND "),
		argID, argID+1,
	)
	arguments = append(arguments, limit, offset)

	rows, err := repository.pool.Query(context, query, arguments...)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to list bookmarks: %w", err)
	}
	defer rows.Close()

	marks := []*Bookmark{}
	total := 0

	for rows.Next() {
		mark := &Bookmark{UserID: userID, IsAdult: isAdult, Book: &BookRef{}}

		var chapterID *int64
		var chapterNumber *float64

		err := rows.Scan(
			&mark.ID, &mark.BookID, &mark.Type, &mark.CustomTypeID,
			&mark.CreatedAt, &mark.UpdatedAt,
			&mark.Book.ID, &mark.Book.Slug, &mark.Book.Title, &mark.Book.Type, &mark.Book.CoverURL,
			&chapterID, &chapterNumber,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan bookmark row: %w", err)
		}

		if chapterID != nil && chapterNumber != nil {
			mark.ChapterID = *chapterID
			mark.Chapter = &ChapterRef{ID: *chapterID, Number: *chapterNumber}
		}

		marks = append(marks, mark)
	}

	return marks, total, rows.Err()
}

/*
FindForBook returns the caller's bookmark on one book.

Parameters:
  - context: context.Context
  - userID: int64
  - bookID: int64

Returns:
  - *Bookmark: Bare row without book or chapter refs
  - error: apperr.NotFound when the book is not on the shelf
*/
func (repository *PostgresRepository) FindForBook(context context.Context, userID, bookID int64) (*Bookmark, error) {
	query := fmt.Sprintf(`
		SELECT id, userid, bookid, chapterid, type, customtypeid, isadult, createdat, updatedat
		FROM %s
		WHERE %s = $1 AND %s = $2`,
		schema.UsersBookmark.Table,
		schema.UsersBookmark.UserID, schema.UsersBookmark.BookID,
	)

	mark := &Bookmark{}
	var chapterID *int64
	err := repository.pool.QueryRow(context, query, userID, bookID).Scan(
		&mark.ID, &mark.UserID, &mark.BookID, &chapterID, &mark.Type,
		&mark.CustomTypeID, &mark.IsAdult, &mark.CreatedAt, &mark.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Bookmark")
		}
		return nil, fmt.Errorf("postgres: failed to find bookmark: %w", err)
	}

	if chapterID != nil {
		mark.ChapterID = *chapterID
	}

	return mark, nil
}

// # Shelf Writes

/*
Upsert creates the caller's bookmark on a book, or moves the existing one.

Description: Relies on the unique (userid, bookid) pair. A conflict turns
the insert into an update of chapter and type, so re-bookmarking a book is
always a move. Counter maintenance runs in the same transaction and only
when a new row was inserted; xmax is zero exactly for rows freshly inserted
by the current transaction, which distinguishes the two paths in one
round-trip.

Parameters:
  - context: context.Context
  - mark: *Bookmark (UserID, BookID, ChapterID, Type, IsAdult set)

Returns:
  - bool: True when a new row was inserted
  - error: apperr.Unprocessable when the book or chapter is missing
*/
func (repository *PostgresRepository) Upsert(context context.Context, mark *Bookmark) (bool, error) {
	tx, err := repository.pool.Begin(context)
	if err != nil {
		return false, fmt.Errorf("postgres: failed to begin bookmark upsert: %w", err)
	}
	defer tx.Rollback(context)

	query := fmt.Sprintf(`
		INSERT INTO %s (userid, bookid, chapterid, type, customtypeid, isadult)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (userid, bookid) DO UPDATE
		SET chapterid = EXCLUDED.chapterid,
		    type = EXCLUDED.type,
		    updatedat = now()
		RETURNING id, createdat, updatedat, (xmax = 0) AS inserted`,
		schema.UsersBookmark.Table,
	)

	var inserted bool
	err = tx.QueryRow(context, query,
		mark.UserID, mark.BookID, mark.ChapterID, string(mark.Type), mark.CustomTypeID, mark.IsAdult,
	).Scan(&mark.ID, &mark.CreatedAt, &mark.UpdatedAt, &inserted)
	if err != nil {
		return false, dberr.Wrap(err, "upsert bookmark")
	}

	if inserted {
		if err := adjustCounters(context, tx, mark.BookID, 1); err != nil {
			return false, err
		}
	}

	if err := tx.Commit(context); err != nil {
		return false, fmt.Errorf("postgres: failed to commit bookmark upsert: %w", err)
	}

	return inserted, nil
}

/*
Update changes the chapter and/or type of an owned bookmark.

Parameters:
  - context: context.Context
  - userID: int64 (Owner scope)
  - mark: *Bookmark (ID plus the attributes to change)

Returns:
  - error: apperr.NotFound when the ID is absent or not owned
*/
func (repository *PostgresRepository) Update(context context.Context, userID int64, mark *Bookmark) error {
	assignments := []string{"updatedat = now()"}
	arguments := []any{}
	argID := 1

	if mark.ChapterID != 0 {
		assignments = append(assignments, fmt.Sprintf("chapterid = $%d", argID))
		arguments = append(arguments, mark.ChapterID)
		argID++
	}

	if mark.Type != "" {
		assignments = append(assignments, fmt.Sprintf("type = $%d", argID))
		arguments = append(arguments, string(mark.Type))
		argID++
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s
		WHERE %s = $%d AND %s = $%d`,
		schema.UsersBookmark.Table,
		strings.Join(assignments, ", "),
		schema.UsersBookmark.ID, argID,
		schema.UsersBookmark.UserID, argID+1,
	)
	arguments = append(arguments, mark.ID, userID)

	tag, err := repository.pool.Exec(context, query, arguments...)
	if err != nil {
		return dberr.Wrap(err, "update bookmark")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Bookmark")
	}

	return nil
}

/*
Delete removes one owned bookmark and rolls back the book's counters.

Parameters:
  - context: context.Context
  - userID: int64 (Owner scope)
  - bookmarkID: int64

Returns:
  - error: apperr.NotFound when the ID is absent or not owned
*/
func (repository *PostgresRepository) Delete(context context.Context, userID, bookmarkID int64) error {
	tx, err := repository.pool.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin bookmark delete: %w", err)
	}
	defer tx.Rollback(context)

	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1 AND %s = $2
		RETURNING %s`,
		schema.UsersBookmark.Table,
		schema.UsersBookmark.ID, schema.UsersBookmark.UserID,
		schema.UsersBookmark.BookID,
	)

	var bookID int64
	if err := tx.QueryRow(context, query, bookmarkID, userID).Scan(&bookID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("Bookmark")
		}
		return fmt.Errorf("postgres: failed to delete bookmark: %w", err)
	}

	if err := adjustCounters(context, tx, bookID, -1); err != nil {
		return err
	}

	return tx.Commit(context)
}

/*
DeleteBulk removes a set of owned bookmarks in one transaction.

Description: IDs not owned by the caller are silently skipped; the delete
is scoped by userid so a crafted ID list cannot touch other shelves. Each
removed bookmark decrements its own book's counters.

Parameters:
  - context: context.Context
  - userID: int64 (Owner scope)
  - bookmarkIDs: []int64

Returns:
  - int: Number of bookmarks actually removed
  - error: Database execution failures
*/
func (repository *PostgresRepository) DeleteBulk(context context.Context, userID int64, bookmarkIDs []int64) (int, error) {
	tx, err := repository.pool.Begin(context)
	if err != nil {
		return 0, fmt.Errorf("postgres: failed to begin bulk delete: %w", err)
	}
	defer tx.Rollback(context)

	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = ANY($1) AND %s = $2
		RETURNING %s`,
		schema.UsersBookmark.Table,
		schema.UsersBookmark.ID, schema.UsersBookmark.UserID,
		schema.UsersBookmark.BookID,
	)

	rows, err := tx.Query(context, query, bookmarkIDs, userID)
	if err != nil {
		return 0, fmt.Errorf("postgres: failed to bulk delete bookmarks: %w", err)
	}

	bookIDs := []int64{}
	for rows.Next() {
		var bookID int64
		if err := rows.Scan(&bookID); err != nil {
			rows.Close()
			return 0, fmt.Errorf("postgres: failed to scan deleted bookmark: %w", err)
		}
		bookIDs = append(bookIDs, bookID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}

	for _, bookID := range bookIDs {
		if err := adjustCounters(context, tx, bookID, -1); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(context); err != nil {
		return 0, fmt.Errorf("postgres: failed to commit bulk delete: %w", err)
	}

	return len(bookIDs), nil
}

/*
Move changes the shelf type of a set of owned bookmarks.

Parameters:
  - context: context.Context
  - userID: int64 (Owner scope)
  - bookmarkIDs: []int64
  - shelfType: Type

Returns:
  - int: Number of bookmarks actually moved
  - error: Database execution failures
*/
func (repository *PostgresRepository) Move(context context.Context, userID int64, bookmarkIDs []int64, shelfType Type) (int, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET type = $1, updatedat = now()
		WHERE %s = ANY($2) AND %s = $3`,
		schema.UsersBookmark.Table,
		schema.UsersBookmark.ID, schema.UsersBookmark.UserID,
	)

	tag, err := repository.pool.Exec(context, query, string(shelfType), bookmarkIDs, userID)
	if err != nil {
		return 0, dberr.Wrap(err, "move bookmarks")
	}

	return int(tag.RowsAffected()), nil
}

// # Counter Maintenance

// adjustCounters shifts the book's bookmark counter and the day's analytic
// delta by the given amount within the caller's transaction. The stat
// counter is clamped at zero so repair scripts can't drive it negative.
func adjustCounters(context context.Context, tx pgx.Tx, bookID int64, delta int64) error {
	statQuery := fmt.Sprintf(`
		UPDATE %s
		SET %s = GREATEST(%s + $2, 0)
		WHERE %s = $1`,
		schema.CoreBookStat.Table,
		schema.CoreBookStat.CountBookmarks, schema.CoreBookStat.CountBookmarks,
		schema.CoreBookStat.BookID,
	)

	if _, err := tx.Exec(context, statQuery, bookID, delta); err != nil {
		return fmt.Errorf("postgres: failed to adjust bookmark counter: %w", err)
	}

	analyticQuery := fmt.Sprintf(`
		INSERT INTO %s (bookid, date, bookmarks, views, likes)
		VALUES ($1, CURRENT_DATE, $2, 0, 0)
		ON CONFLICT (bookid, date) DO UPDATE
		SET bookmarks = %s.bookmarks + $2`,
		schema.CoreBookAnalytic.Table,
		schema.CoreBookAnalytic.Table,
	)

	if _, err := tx.Exec(context, analyticQuery, bookID, delta); err != nil {
		return fmt.Errorf("postgres: failed to upsert analytic delta: %w", err)
	}

	return nil
}
