// Copyright (c) 2026 Kasane. All rights reserved.

package reference

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
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

// NewRepository constructs a PostgreSQL backed vocabulary store.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// # Vocabulary Listings

// ListGenres returns the full genre vocabulary, name ascending.
func (repository *PostgresRepository) ListGenres(context context.Context) ([]*Genre, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.CoreGenre.ID, schema.CoreGenre.Name,
		schema.CoreGenre.Table, schema.CoreGenre.Name,
	)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list genres: %w", err)
	}
	defer rows.Close()

	genres := []*Genre{}
	for rows.Next() {
		genre := &Genre{}
		if err := rows.Scan(&genre.ID, &genre.Name); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan genre: %w", err)
		}
		genres = append(genres, genre)
	}

	return genres, rows.Err()
}

// ListTags returns tags of one role, name ascending.
func (repository *PostgresRepository) ListTags(context context.Context, tagType TagType) ([]*Tag, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC`,
		schema.CoreTag.ID, schema.CoreTag.Name, schema.CoreTag.Type, schema.CoreTag.SerieID,
		schema.CoreTag.Table,
		schema.CoreTag.Type,
		schema.CoreTag.Name,
	)

	rows, err := repository.pool.Query(context, query, string(tagType))
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list tags: %w", err)
	}
	defer rows.Close()

	tags := []*Tag{}
	for rows.Next() {
		tag := &Tag{}
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Type, &tag.SerieID); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan tag: %w", err)
		}
		tags = append(tags, tag)
	}

	return tags, rows.Err()
}

// ListSeries returns the full series list, name ascending.
func (repository *PostgresRepository) ListSeries(context context.Context) ([]*Serie, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.CoreSerie.ID, schema.CoreSerie.Name,
		schema.CoreSerie.Table, schema.CoreSerie.Name,
	)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list series: %w", err)
	}
	defer rows.Close()

	series := []*Serie{}
	for rows.Next() {
		serie := &Serie{}
		if err := rows.Scan(&serie.ID, &serie.Name); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan serie: %w", err)
		}
		series = append(series, serie)
	}

	return series, rows.Err()
}

// ListCollections returns the full collection list, name ascending.
func (repository *PostgresRepository) ListCollections(context context.Context) ([]*Collection, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC`,
		schema.CoreCollection.ID, schema.CoreCollection.Slug,
		schema.CoreCollection.Name, schema.CoreCollection.ParentCollectionID,
		schema.CoreCollection.Table,
		schema.CoreCollection.Name,
	)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list collections: %w", err)
	}
	defer rows.Close()

	collections := []*Collection{}
	for rows.Next() {
		collection := &Collection{}
		if err := rows.Scan(&collection.ID, &collection.Slug, &collection.Name, &collection.ParentCollectionID); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan collection: %w", err)
		}
		collections = append(collections, collection)
	}

	return collections, rows.Err()
}

// # Vocabulary Writes

/*
CreateSerie persists a new series.

Returns:
  - error: apperr.Conflict when the name is already taken
*/
func (repository *PostgresRepository) CreateSerie(context context.Context, serie *Serie) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1) RETURNING %s`,
		schema.CoreSerie.Table, schema.CoreSerie.Name, schema.CoreSerie.ID,
	)

	if err := repository.pool.QueryRow(context, query, serie.Name).Scan(&serie.ID); err != nil {
		return dberr.Wrap(err, "create serie")
	}

	return nil
}

/*
CreateTag persists a new tag or person credit.

Description: A person credit may point at its serie. A dangling serie
reference is a caller mistake rather than a storage fault, so the foreign
key violation maps to a field-level validation error instead of the
generic 422.

Returns:
  - error: apperr.Conflict on a duplicate (name, type) pair
*/
func (repository *PostgresRepository) CreateTag(context context.Context, tag *Tag) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3) RETURNING %s`,
		schema.CoreTag.Table,
		schema.CoreTag.Name, schema.CoreTag.Type, schema.CoreTag.SerieID,
		schema.CoreTag.ID,
	)

	err := repository.pool.QueryRow(context, query, tag.Name, string(tag.Type), tag.SerieID).Scan(&tag.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return apperr.ValidationError("Referenced serie does not exist",
				apperr.FieldError{Field: FieldSerieID, Message: "serie not found"},
			)
		}
		return dberr.Wrap(err, "create tag")
	}

	return nil
}

/*
CreateGenre persists a new genre.

Returns:
  - error: apperr.Conflict when the name is already taken
*/
func (repository *PostgresRepository) CreateGenre(context context.Context, genre *Genre) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1) RETURNING %s`,
		schema.CoreGenre.Table, schema.CoreGenre.Name, schema.CoreGenre.ID,
	)

	if err := repository.pool.QueryRow(context, query, genre.Name).Scan(&genre.ID); err != nil {
		return dberr.Wrap(err, "create genre")
	}

	return nil
}
