// Copyright (c) 2026 Kasane. All rights reserved.

/*
Package book (Postgres) implements the catalog's data access layer.

It leans on PostgreSQL features to keep the listing pipeline to a fixed
number of round-trips regardless of how many facets are requested:
  - Membership Cardinality: GROUP BY/HAVING COUNT(*) resolves an
    ALL-of-these facet in one aggregate pass over the junction table.
  - Array Binding: ANY($n) carries whole ID sets as single parameters.
  - Window Functions: COUNT(*) OVER() returns totals without a second query.

# Schema Table Mapping
  - core.book / core.bookstat: Catalog rows and interaction counters.
  - core.bookgenre / core.booktag: Facet membership junctions.
  - core.seriebook / core.collectionbook: Grouping junctions.
  - users.bookmark: Per-user enrichment source.
*/
package book

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
	"github.com/kasaneapp/kasane/pkg/slice"
)

// # Repository Implementation

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed catalog store.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// bookColumns is the aliased projection shared by every row-returning query.
// Stat counters come from the LEFT JOINed stat table and may be NULL for
// books without interactions yet.
const bookColumns = `
	b.id, b.slug, b.title, b.titleen, b.type, b.status, b.isadult,
	b.description, b.coverurl, b.lastchapterid, b.createdat, b.updatedat,
	b.newuploadat, s.countbookmarks, s.countviews, s.countlikes`

// # Facet Resolution

/*
ResolveGenreFacet returns the IDs of books attached to ALL the given genres.

Description: Runs the membership cardinality test over core.bookgenre: a
book appears once per matching genre, so a group whose row count equals the
value-set size is attached to every requested genre. The composite primary
key on the junction guarantees no pair is counted twice.

Parameters:
  - context: context.Context
  - genreIDs: []int64 (Deduplicated, non-empty)

Returns:
  - []int64: Matching book IDs ordered newest first
  - error: Database execution failures
*/
func (repository *PostgresRepository) ResolveGenreFacet(context context.Context, genreIDs []int64) ([]int64, error) {
	return repository.resolveFacet(context,
		schema.BookGenre.Table, schema.BookGenre.BookID, schema.BookGenre.GenreID,
		genreIDs,
	)
}

/*
ResolveTagFacet returns the IDs of books attached to ALL the given tags.

Description: Identical cardinality test over core.booktag. The value set is
the merged tag∪person facet: person credits are tags with type PERSON and
share the junction, so one aggregate pass covers both request parameters.

Parameters:
  - context: context.Context
  - tagIDs: []int64 (Deduplicated, non-empty)

Returns:
  - []int64: Matching book IDs ordered newest first
  - error: Database execution failures
*/
func (repository *PostgresRepository) ResolveTagFacet(context context.Context, tagIDs []int64) ([]int64, error) {
	return repository.resolveFacet(context,
		schema.BookTag.Table, schema.BookTag.BookID, schema.BookTag.TagID,
		tagIDs,
	)
}

// resolveFacet runs the shared GROUP BY / HAVING COUNT membership test over
// a junction table. Callers must never pass an empty value set; an empty
// facet means "not requested" and is decided in the service layer.
func (repository *PostgresRepository) resolveFacet(context context.Context, table, bookCol, valueCol string, values []int64) ([]int64, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = ANY($1)
		GROUP BY %s
		HAVING COUNT(*) = $2
		ORDER BY %s DESC`,
		bookCol, table, valueCol, bookCol, bookCol,
	)

	rows, err := repository.pool.Query(context, query, values, len(values))
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to resolve facet on %s: %w", table, err)
	}
	defer rows.Close()

	// The resolved set is kept non-nil even when empty: an empty result is
	// a real restriction (zero matches), not an absent facet.
	bookIDs := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan facet row: %w", err)
		}
		bookIDs = append(bookIDs, id)
	}

	return bookIDs, rows.Err()
}

// # Page Fetch

/*
FetchPage returns one catalog page and the total match count.

Description: Builds the final listing query dynamically. Two predicates are
unconditional: drafts never appear, and the realm flag always matches the
caller's content domain. The facet restriction, type filter, and serie
membership are appended only when present. Stat-keyed ordering reads from
the LEFT JOINed stat table with NULL counters coalesced to zero, and every
ordering ends with id DESC as a stable tie-break.

Parameters:
  - context: context.Context
  - catalogQuery: CatalogQuery
  - limit: int
  - offset: int

Returns:
  - []*Book: Page rows with stat counters attached
  - int: Total count matching the query
  - error: Database execution failures
*/
func (repository *PostgresRepository) FetchPage(context context.Context, catalogQuery CatalogQuery, limit, offset int) ([]*Book, int, error) {
	query, args := buildCatalogQuery(catalogQuery, limit, offset)

	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to fetch catalog page: %w", err)
	}
	defer rows.Close()

	// Row Iteration and Entity Hydration
	var books []*Book
	var totalCount int

	for rows.Next() {
		book, total, err := scanBookRow(rows, true)
		if err != nil {
			return nil, 0, err
		}
		totalCount = total
		books = append(books, book)
	}

	return books, totalCount, rows.Err()
}

// buildCatalogQuery assembles the listing SQL and its bind arguments. The
// draft-exclusion and realm predicates are unconditional; everything else is
// appended only when the query carries it.
func buildCatalogQuery(catalogQuery CatalogQuery, limit, offset int) (string, []any) {
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s b
		LEFT JOIN %s s ON s.%s = b.id
		WHERE b.%s <> '%s'`,
		bookColumns,
		schema.CoreBook.Table,
		schema.CoreBookStat.Table, schema.CoreBookStat.BookID,
		schema.CoreBook.Status, StatusDraft,
	))

	// Realm segregation is unconditional: the flag comes from the Host
	// classifier, never from user input.
	queryBuilder.WriteString(fmt.Sprintf(" AND b.%s = $%d", schema.CoreBook.IsAdult, argID))
	args = append(args, catalogQuery.IsAdult)
	argID++

	// Facet restriction injection. A Limited restriction applies even when
	// its ID set is empty; ANY over an empty array matches nothing, which
	// is exactly the contract.
	if catalogQuery.Restriction.Limited {
		queryBuilder.WriteString(fmt.Sprintf(" AND b.id = ANY($%d)", argID))
		args = append(args, catalogQuery.Restriction.IDs)
		argID++
	}

	// Type filtering (OR within the facet)
	if len(catalogQuery.Filters.Types) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND b.%s = ANY($%d)", schema.CoreBook.Type, argID))
		args = append(args, slice.Map(catalogQuery.Filters.Types, func(t Type) string { return string(t) }))
		argID++
	}

	// Serie membership filtering
	if catalogQuery.Filters.SerieID > 0 {
		queryBuilder.WriteString(fmt.Sprintf(
			" AND EXISTS (SELECT 1 FROM %s sb WHERE sb.%s = b.id AND sb.%s = $%d)",
			schema.SerieBook.Table, schema.SerieBook.BookID, schema.SerieBook.SerieID, argID,
		))
		args = append(args, catalogQuery.Filters.SerieID)
		argID++
	}

	// Apply Sorting Logic (closed key set, no raw user input)
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s", orderExpression(catalogQuery.Order)))

	// Pagination injection
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	return queryBuilder.String(), args
}

// orderExpression maps a resolved [Order] to a vetted ORDER BY clause.
// The switch is exhaustive over the closed key set.
func orderExpression(order Order) string {
	var column string
	switch order.Key {
	case OrderNew:
		column = "b." + schema.CoreBook.CreatedAt
	case OrderUpdate:
		column = "b." + schema.CoreBook.NewUploadAt
	case OrderBookmarks:
		column = "COALESCE(s." + schema.CoreBookStat.CountBookmarks + ", 0)"
	case OrderViews:
		column = "COALESCE(s." + schema.CoreBookStat.CountViews + ", 0)"
	case OrderLikes:
		column = "COALESCE(s." + schema.CoreBookStat.CountLikes + ", 0)"
	default:
		column = "b." + schema.CoreBook.CreatedAt
	}

	direction := "ASC"
	if order.Desc {
		direction = "DESC"
	}

	return fmt.Sprintf("%s %s, b.id DESC", column, direction)
}

// scannable is satisfied by both pgx.Row and pgx.Rows.
type scannable interface {
	Scan(dest ...any) error
}

// scanBookRow hydrates one book from the shared projection. When withTotal
// is set, the trailing window-function column is scanned as well.
func scanBookRow(row scannable, withTotal bool) (*Book, int, error) {
	book := &Book{}
	var countBookmarks, countViews, countLikes *int64
	var totalCount int

	targets := []any{
		&book.ID, &book.Slug, &book.Title, &book.TitleEn, &book.Type,
		&book.Status, &book.IsAdult, &book.Description, &book.CoverURL,
		&book.LastChapterID, &book.CreatedAt, &book.UpdatedAt,
		&book.NewUploadAt, &countBookmarks, &countViews, &countLikes,
	}
	if withTotal {
		targets = append(targets, &totalCount)
	}

	if err := row.Scan(targets...); err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to scan book: %w", err)
	}

	// A missing stat row leaves the counters NULL; the entity keeps Stat
	// nil in that case instead of fabricating zeros.
	if countBookmarks != nil || countViews != nil || countLikes != nil {
		book.Stat = &Stat{
			BookID:         book.ID,
			CountBookmarks: derefInt64(countBookmarks),
			CountViews:     derefInt64(countViews),
			CountLikes:     derefInt64(countLikes),
		}
	}

	return book, totalCount, nil
}

func derefInt64(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

// # Bookmark Enrichment

/*
BookmarksFor returns the caller's bookmarks over the given books.

Description: A single keyed query over the unique (userid, bookid) index.
The uniqueness constraint guarantees at most one row per book, which is
what lets the service flatten the result onto page rows without changing
their cardinality.

Parameters:
  - context: context.Context
  - userID: int64
  - bookIDs: []int64

Returns:
  - map[int64]*BookmarkInfo: Keyed by book ID
  - error: Database execution failures
*/
func (repository *PostgresRepository) BookmarksFor(context context.Context, userID int64, bookIDs []int64) (map[int64]*BookmarkInfo, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = ANY($2)`,
		schema.UsersBookmark.ID, schema.UsersBookmark.BookID,
		schema.UsersBookmark.ChapterID, schema.UsersBookmark.Type,
		schema.UsersBookmark.Table,
		schema.UsersBookmark.UserID, schema.UsersBookmark.BookID,
	)

	rows, err := repository.pool.Query(context, query, userID, bookIDs)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to fetch bookmarks for enrichment: %w", err)
	}
	defer rows.Close()

	marks := make(map[int64]*BookmarkInfo, len(bookIDs))
	for rows.Next() {
		info := &BookmarkInfo{}
		var bookID int64
		if err := rows.Scan(&info.ID, &bookID, &info.ChapterID, &info.Type); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan bookmark: %w", err)
		}
		marks[bookID] = info
	}

	return marks, rows.Err()
}

// # Lookups

/*
FindBySlug returns the published book matching the SEO slug within a realm.

Parameters:
  - context: context.Context
  - slug: string
  - isAdult: bool

Returns:
  - *Book: Hydrated entity with stat counters
  - error: apperr.NotFound if missing, draft, or in the other realm
*/
func (repository *PostgresRepository) FindBySlug(context context.Context, slug string, isAdult bool) (*Book, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s b
		LEFT JOIN %s s ON s.%s = b.id
		WHERE b.%s = $1 AND b.%s = $2 AND b.%s <> '%s'`,
		bookColumns,
		schema.CoreBook.Table,
		schema.CoreBookStat.Table, schema.CoreBookStat.BookID,
		schema.CoreBook.Slug, schema.CoreBook.IsAdult,
		schema.CoreBook.Status, StatusDraft,
	)

	book, _, err := scanBookRow(repository.pool.QueryRow(context, query, slug, isAdult), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Book")
		}
		return nil, err
	}

	return book, nil
}

/*
FindByID returns the book with the given ID regardless of status or realm.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - *Book: Hydrated entity
  - error: apperr.NotFound if missing
*/
func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Book, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s b
		LEFT JOIN %s s ON s.%s = b.id
		WHERE b.%s = $1`,
		bookColumns,
		schema.CoreBook.Table,
		schema.CoreBookStat.Table, schema.CoreBookStat.BookID,
		schema.CoreBook.ID,
	)

	book, _, err := scanBookRow(repository.pool.QueryRow(context, query, id), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Book")
		}
		return nil, err
	}

	return book, nil
}

// # Management

/*
Create persists a new book and its zeroed stat row atomically.

Description: Both inserts run in one transaction so a book can never exist
without its stat row; the interaction side effects increment it blindly.

Parameters:
  - context: context.Context
  - book: *Book (ID populated on return)

Returns:
  - error: apperr.Conflict on duplicate slug, otherwise execution failures
*/
func (repository *PostgresRepository) Create(context context.Context, book *Book) error {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin create transaction: %w", err)
	}
	defer transaction.Rollback(context)

	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s, %s, %s, %s`,
		schema.CoreBook.Table,
		schema.CoreBook.Slug, schema.CoreBook.Title, schema.CoreBook.TitleEn,
		schema.CoreBook.Type, schema.CoreBook.Status, schema.CoreBook.IsAdult,
		schema.CoreBook.Description, schema.CoreBook.CoverURL,
		schema.CoreBook.ID, schema.CoreBook.CreatedAt, schema.CoreBook.UpdatedAt,
		schema.CoreBook.NewUploadAt,
	)

	err = transaction.QueryRow(context, insertQuery,
		book.Slug, book.Title, book.TitleEn,
		book.Type, book.Status, book.IsAdult,
		book.Description, book.CoverURL,
	).Scan(&book.ID, &book.CreatedAt, &book.UpdatedAt, &book.NewUploadAt)
	if err != nil {
		return dberr.Wrap(err, "create_book")
	}

	statQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, 0, 0, 0)`,
		schema.CoreBookStat.Table,
		schema.CoreBookStat.BookID, schema.CoreBookStat.CountBookmarks,
		schema.CoreBookStat.CountViews, schema.CoreBookStat.CountLikes,
	)

	if _, err := transaction.Exec(context, statQuery, book.ID); err != nil {
		return fmt.Errorf("postgres: failed to create book stat row: %w", err)
	}

	if err := transaction.Commit(context); err != nil {
		return fmt.Errorf("postgres: failed to commit create transaction: %w", err)
	}

	return nil
}

/*
Update persists changes to a book's mutable fields.

Description: PATCH-style partial update built with a dynamic SET block;
zero-valued fields in the input leave their columns untouched.

Parameters:
  - context: context.Context
  - book: *Book

Returns:
  - error: apperr.NotFound if the target does not exist
*/
func (repository *PostgresRepository) Update(context context.Context, book *Book) error {

	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf("UPDATE %s SET %s = NOW()", schema.CoreBook.Table, schema.CoreBook.UpdatedAt))

	var args []any
	argID := 1

	if book.Slug != "" {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.CoreBook.Slug, argID))
		args = append(args, book.Slug)
		argID++
	}

	if book.Title != "" {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.CoreBook.Title, argID))
		args = append(args, book.Title)
		argID++
	}

	if book.TitleEn != "" {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.CoreBook.TitleEn, argID))
		args = append(args, book.TitleEn)
		argID++
	}

	if book.Type != "" {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.CoreBook.Type, argID))
		args = append(args, book.Type)
		argID++
	}

	if book.Status != "" {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.CoreBook.Status, argID))
		args = append(args, book.Status)
		argID++
	}

	if book.Description != "" {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.CoreBook.Description, argID))
		args = append(args, book.Description)
		argID++
	}

	if book.CoverURL != "" {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.CoreBook.CoverURL, argID))
		args = append(args, book.CoverURL)
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(" WHERE %s = $%d", schema.CoreBook.ID, argID))
	args = append(args, book.ID)

	result, err := repository.pool.Exec(context, queryBuilder.String(), args...)
	if err != nil {
		return dberr.Wrap(err, "update_book")
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Book")
	}

	return nil
}

/*
Delete removes a book; junction and stat rows cascade at the schema level.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - error: apperr.NotFound if the target does not exist
*/
func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.CoreBook.Table, schema.CoreBook.ID)

	result, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete book: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Book")
	}

	return nil
}

// # Discovery Surfaces

/*
Search returns published books whose titles contain the term.

Description: Case-insensitive substring match over both the native and
English titles via ILIKE. The term is bound as a parameter with LIKE
metacharacters escaped, so user input cannot widen the pattern.

Parameters:
  - context: context.Context
  - term: string
  - isAdult: bool
  - limit: int
  - offset: int

Returns:
  - []*Book: Matches ordered by title ascending
  - int: Total match count
  - error: Database execution failures
*/
func (repository *PostgresRepository) Search(context context.Context, term string, isAdult bool, limit, offset int) ([]*Book, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s b
		LEFT JOIN %s s ON s.%s = b.id
		WHERE (b.%s ILIKE $1 OR b.%s ILIKE $1)
		  AND b.%s = $2 AND b.%s <> '%s'
		ORDER BY b.%s ASC, b.id DESC
		LIMIT $3 OFFSET $4`,
		bookColumns,
		schema.CoreBook.Table,
		schema.CoreBookStat.Table, schema.CoreBookStat.BookID,
		schema.CoreBook.Title, schema.CoreBook.TitleEn,
		schema.CoreBook.IsAdult, schema.CoreBook.Status, StatusDraft,
		schema.CoreBook.Title,
	)

	pattern := "%" + escapeLike(term) + "%"

	rows, err := repository.pool.Query(context, query, pattern, isAdult, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to search books: %w", err)
	}
	defer rows.Close()

	var books []*Book
	var totalCount int
	for rows.Next() {
		book, total, err := scanBookRow(rows, true)
		if err != nil {
			return nil, 0, err
		}
		totalCount = total
		books = append(books, book)
	}

	return books, totalCount, rows.Err()
}

// escapeLike neutralises LIKE metacharacters in a user-supplied term.
func escapeLike(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}

/*
Updates returns published books ordered by latest content upload.

Parameters:
  - context: context.Context
  - isAdult: bool
  - limit: int
  - offset: int

Returns:
  - []*Book: Feed rows, most recently updated first
  - int: Total row count
  - error: Database execution failures
*/
func (repository *PostgresRepository) Updates(context context.Context, isAdult bool, limit, offset int) ([]*Book, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s b
		LEFT JOIN %s s ON s.%s = b.id
		WHERE b.%s = $1 AND b.%s <> '%s'
		ORDER BY b.%s DESC, b.id DESC
		LIMIT $2 OFFSET $3`,
		bookColumns,
		schema.CoreBook.Table,
		schema.CoreBookStat.Table, schema.CoreBookStat.BookID,
		schema.CoreBook.IsAdult, schema.CoreBook.Status, StatusDraft,
		schema.CoreBook.NewUploadAt,
	)

	rows, err := repository.pool.Query(context, query, isAdult, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to list updates: %w", err)
	}
	defer rows.Close()

	var books []*Book
	var totalCount int
	for rows.Next() {
		book, total, err := scanBookRow(rows, true)
		if err != nil {
			return nil, 0, err
		}
		totalCount = total
		books = append(books, book)
	}

	return books, totalCount, rows.Err()
}

// # Sub-resource Management

/*
ListTags returns all tags and persons attached to a book, sorted by name.
*/
func (repository *PostgresRepository) ListTags(context context.Context, bookID int64) ([]*TagRef, error) {
	query := fmt.Sprintf(`
		SELECT t.%s, t.%s, t.%s
		FROM %s t
		JOIN %s bt ON bt.%s = t.%s
		WHERE bt.%s = $1
		ORDER BY t.%s ASC`,
		schema.CoreTag.ID, schema.CoreTag.Name, schema.CoreTag.Type,
		schema.CoreTag.Table,
		schema.BookTag.Table, schema.BookTag.TagID, schema.CoreTag.ID,
		schema.BookTag.BookID,
		schema.CoreTag.Name,
	)

	rows, err := repository.pool.Query(context, query, bookID)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list book tags: %w", err)
	}
	defer rows.Close()

	var tags []*TagRef
	for rows.Next() {
		var tag TagRef
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Type); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan tag: %w", err)
		}
		tags = append(tags, &tag)
	}

	return tags, rows.Err()
}

/*
ListSeries returns the series a book belongs to, sorted by name.
*/
func (repository *PostgresRepository) ListSeries(context context.Context, bookID int64) ([]*SerieRef, error) {
	query := fmt.Sprintf(`
		SELECT se.%s, se.%s
		FROM %s se
		JOIN %s sb ON sb.%s = se.%s
		WHERE sb.%s = $1
		ORDER BY se.%s ASC`,
		schema.CoreSerie.ID, schema.CoreSerie.Name,
		schema.CoreSerie.Table,
		schema.SerieBook.Table, schema.SerieBook.SerieID, schema.CoreSerie.ID,
		schema.SerieBook.BookID,
		schema.CoreSerie.Name,
	)

	rows, err := repository.pool.Query(context, query, bookID)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list book series: %w", err)
	}
	defer rows.Close()

	var series []*SerieRef
	for rows.Next() {
		var serie SerieRef
		if err := rows.Scan(&serie.ID, &serie.Name); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan serie: %w", err)
		}
		series = append(series, &serie)
	}

	return series, rows.Err()
}

/*
ListCollections returns the collections a book belongs to, sorted by name.
*/
func (repository *PostgresRepository) ListCollections(context context.Context, bookID int64) ([]*CollectionRef, error) {
	query := fmt.Sprintf(`
		SELECT c.%s, c.%s, c.%s
		FROM %s c
		JOIN %s cb ON cb.%s = c.%s
		WHERE cb.%s = $1
		ORDER BY c.%s ASC`,
		schema.CoreCollection.ID, schema.CoreCollection.Slug, schema.CoreCollection.Name,
		schema.CoreCollection.Table,
		schema.CollectionBook.Table, schema.CollectionBook.CollectionID, schema.CoreCollection.ID,
		schema.CollectionBook.BookID,
		schema.CoreCollection.Name,
	)

	rows, err := repository.pool.Query(context, query, bookID)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list book collections: %w", err)
	}
	defer rows.Close()

	var collections []*CollectionRef
	for rows.Next() {
		var collection CollectionRef
		if err := rows.Scan(&collection.ID, &collection.Slug, &collection.Name); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan collection: %w", err)
		}
		collections = append(collections, &collection)
	}

	return collections, rows.Err()
}

/*
AttachTag links a tag to a book. The composite primary key turns duplicate
attaches into CONFLICT and missing endpoints into UNPROCESSABLE via dberr.
*/
func (repository *PostgresRepository) AttachTag(context context.Context, bookID, tagID int64) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (%s, %s) VALUES ($1, $2)",
		schema.BookTag.Table, schema.BookTag.BookID, schema.BookTag.TagID,
	)

	_, err := repository.pool.Exec(context, query, bookID, tagID)
	return dberr.Wrap(err, "attach_tag")
}

/*
DetachTag removes a tag link.
*/
func (repository *PostgresRepository) DetachTag(context context.Context, bookID, tagID int64) error {
	query := fmt.Sprintf(
		"DELETE FROM %s WHERE %s = $1 AND %s = $2",
		schema.BookTag.Table, schema.BookTag.BookID, schema.BookTag.TagID,
	)

	result, err := repository.pool.Exec(context, query, bookID, tagID)
	if err != nil {
		return fmt.Errorf("postgres: failed to detach tag: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("Tag attachment")
	}

	return nil
}

/*
AttachSerie links a book into a series.
*/
func (repository *PostgresRepository) AttachSerie(context context.Context, serieID, bookID int64) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (%s, %s) VALUES ($1, $2)",
		schema.SerieBook.Table, schema.SerieBook.SerieID, schema.SerieBook.BookID,
	)

	_, err := repository.pool.Exec(context, query, serieID, bookID)
	return dberr.Wrap(err, "attach_serie")
}

/*
DetachSerie removes a series link.
*/
func (repository *PostgresRepository) DetachSerie(context context.Context, serieID, bookID int64) error {
	query := fmt.Sprintf(
		"DELETE FROM %s WHERE %s = $1 AND %s = $2",
		schema.SerieBook.Table, schema.SerieBook.SerieID, schema.SerieBook.BookID,
	)

	result, err := repository.pool.Exec(context, query, serieID, bookID)
	if err != nil {
		return fmt.Errorf("postgres: failed to detach serie: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("Serie attachment")
	}

	return nil
}

/*
AttachCollection links a book into a collection.
*/
func (repository *PostgresRepository) AttachCollection(context context.Context, collectionID, bookID int64) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (%s, %s) VALUES ($1, $2)",
		schema.CollectionBook.Table, schema.CollectionBook.CollectionID, schema.CollectionBook.BookID,
	)

	_, err := repository.pool.Exec(context, query, collectionID, bookID)
	return dberr.Wrap(err, "attach_collection")
}

/*
DetachCollection removes a collection link.
*/
func (repository *PostgresRepository) DetachCollection(context context.Context, collectionID, bookID int64) error {
	query := fmt.Sprintf(
		"DELETE FROM %s WHERE %s = $1 AND %s = $2",
		schema.CollectionBook.Table, schema.CollectionBook.CollectionID, schema.CollectionBook.BookID,
	)

	result, err := repository.pool.Exec(context, query, collectionID, bookID)
	if err != nil {
		return fmt.Errorf("postgres: failed to detach collection: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("Collection attachment")
	}

	return nil
}
