// Copyright (c) 2026 Kasane. All rights reserved.

package reference

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/kasaneapp/kasane/internal/platform/validate"
	"github.com/kasaneapp/kasane/pkg/slice"
)

// # Service Layer

// Service orchestrates vocabulary reads and admin-side writes.
type Service struct {
	repo Repository
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// # Listings

// ListGenres returns the genre vocabulary.
func (service *Service) ListGenres(context context.Context) ([]*Genre, error) {
	return service.repo.ListGenres(context)
}

// ListTags returns subject tags.
func (service *Service) ListTags(context context.Context) ([]*Tag, error) {
	return service.repo.ListTags(context, TagGeneral)
}

// ListPersons returns person credits.
func (service *Service) ListPersons(context context.Context) ([]*Tag, error) {
	return service.repo.ListTags(context, TagPerson)
}

// ListSeries returns the series list.
func (service *Service) ListSeries(context context.Context) ([]*Serie, error) {
	return service.repo.ListSeries(context)
}

// ListCollections returns the collection list.
func (service *Service) ListCollections(context context.Context) ([]*Collection, error) {
	return service.repo.ListCollections(context)
}

/*
ListEntities returns several vocabularies in one response.

Description: Clients bootstrapping a filter UI need most vocabularies at
once; this endpoint batches them into a single round-trip. Group names are
parsed permissively: unknown names are dropped, duplicates collapse. The
requested groups are fetched concurrently.

Parameters:
  - context: context.Context
  - groups: []string (Requested group names)

Returns:
  - *Entities: Requested groups populated, the rest nil
  - error: Validation error when no recognised group was requested
*/
func (service *Service) ListEntities(context context.Context, groups []string) (*Entities, error) {
	requested := slice.Unique(slice.Filter(groups, func(name string) bool {
		switch name {
		case GroupGenres, GroupTags, GroupPersons, GroupSeries, GroupCollections:
			return true
		}
		return false
	}))

	if len(requested) == 0 {
		return nil, validate.RequiredError(FieldEntities, "at least one known entity group is required")
	}

	entities := &Entities{}
	group, groupCtx := errgroup.WithContext(context)

	for _, name := range requested {
		switch name {
		case GroupGenres:
			group.Go(func() error {
				genres, err := service.repo.ListGenres(groupCtx)
				entities.Genres = genres
				return err
			})
		case GroupTags:
			group.Go(func() error {
				tags, err := service.repo.ListTags(groupCtx, TagGeneral)
				entities.Tags = tags
				return err
			})
		case GroupPersons:
			group.Go(func() error {
				persons, err := service.repo.ListTags(groupCtx, TagPerson)
				entities.Persons = persons
				return err
			})
		case GroupSeries:
			group.Go(func() error {
				series, err := service.repo.ListSeries(groupCtx)
				entities.Series = series
				return err
			})
		case GroupCollections:
			group.Go(func() error {
				collections, err := service.repo.ListCollections(groupCtx)
				entities.Collections = collections
				return err
			})
		}
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return entities, nil
}

// # Vocabulary Management

/*
CreateSerie validates and persists a new series.

Returns:
  - error: Validation errors, apperr.Conflict on a duplicate name
*/
func (service *Service) CreateSerie(context context.Context, serie *Serie) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, serie.Name).MaxLen(FieldName, serie.Name, 200)
	if err := validator.Err(); err != nil {
		return err
	}

	return service.repo.CreateSerie(context, serie)
}

/*
CreateTag validates and persists a new tag or person credit.

Description: An absent type defaults to GENERAL so plain tag creation
needs only a name. Person credits may carry a serie reference.

Returns:
  - error: Validation errors, apperr.Conflict on a duplicate (name, type)
*/
func (service *Service) CreateTag(context context.Context, tag *Tag) error {
	if tag.Type == "" {
		tag.Type = TagGeneral
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, tag.Name).MaxLen(FieldName, tag.Name, 200)
	validator.OneOf(FieldType, string(tag.Type), string(TagGeneral), string(TagPerson))

	if tag.SerieID != nil {
		validator.Positive(FieldSerieID, *tag.SerieID)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	return service.repo.CreateTag(context, tag)
}

/*
CreateGenre validates and persists a new genre.

Returns:
  - error: Validation errors, apperr.Conflict on a duplicate name
*/
func (service *Service) CreateGenre(context context.Context, genre *Genre) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, genre.Name).MaxLen(FieldName, genre.Name, 100)
	if err := validator.Err(); err != nil {
		return err
	}

	return service.repo.CreateGenre(context, genre)
}
