// Copyright (c) 2026 Kasane. All rights reserved.

package reference

import "context"

// # Storage Contract

// Repository defines the persistence operations for the vocabulary tables.
//
// Listings are unpaginated: the vocabularies are small and clients consume
// them whole to build filter controls. Everything is sorted by name.
type Repository interface {
	// ListGenres returns the full genre vocabulary, name ascending.
	ListGenres(context context.Context) ([]*Genre, error)

	// ListTags returns tags of one role, name ascending.
	ListTags(context context.Context, tagType TagType) ([]*Tag, error)

	// ListSeries returns the full series list, name ascending.
	ListSeries(context context.Context) ([]*Serie, error)

	// ListCollections returns the full collection list, name ascending.
	ListCollections(context context.Context) ([]*Collection, error)

	/*
		CreateSerie persists a new series.

		Returns:
		  - error: apperr.Conflict when the name is already taken
	*/
	CreateSerie(context context.Context, serie *Serie) error

	/*
		CreateTag persists a new tag or person credit.

		Returns:
		  - error: apperr.Conflict on a duplicate (name, type) pair;
		    validation error when the referenced serie does not exist
	*/
	CreateTag(context context.Context, tag *Tag) error

	/*
		CreateGenre persists a new genre.

		Returns:
		  - error: apperr.Conflict when the name is already taken
	*/
	CreateGenre(context context.Context, genre *Genre) error
}
