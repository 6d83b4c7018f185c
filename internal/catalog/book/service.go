// Copyright (c) 2026 Kasane. All rights reserved.

package book

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/kasaneapp/kasane/internal/platform/validate"
	"github.com/kasaneapp/kasane/pkg/pagination"
	"github.com/kasaneapp/kasane/pkg/slice"
	"github.com/kasaneapp/kasane/pkg/slug"
)

// # Service Layer

// Service orchestrates the catalog listing pipeline and book management.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Catalog Listing

/*
ListCatalog runs the full listing pipeline and returns one catalog page.

Description: The pipeline has four stages:

 1. Facet resolution — each requested facet (genres; merged tags∪persons)
    is resolved to a book ID set. The two resolutions are independent
    aggregate queries and run concurrently; an unrequested facet is
    skipped entirely, so zero facets cost zero extra queries.
 2. Combination — no facet resolved means no restriction; one facet means
    its set verbatim; both mean the intersection. An empty resolved set is
    preserved as a real restriction that matches nothing.
 3. Page fetch — the restriction joins the row-local filters (types,
    serie), the caller's realm, and the resolved ordering.
 4. Enrichment — authenticated callers get their bookmarks flattened onto
    the page rows via one keyed query; anonymous callers skip this stage.

Facet resolution and the page fetch are separate read-committed queries. A
book whose memberships change between them can appear in the page under
facets it no longer satisfies (or be missed); the window is a few
milliseconds and the next request self-corrects, which is acceptable for a
browsing surface.

Parameters:
  - context: context.Context
  - filters: Filters (Normalised facet values)
  - order: Order (Resolved sort instruction)
  - isAdult: bool (Caller's content domain, from the Host classifier)
  - userID: int64 (Zero for anonymous callers)
  - params: pagination.Params (Device-classified page window)

Returns:
  - []*Book: The page, enriched for authenticated callers
  - int: Total count matching the restriction and filters
  - error: Resolution, fetch, or enrichment failures
*/
func (service *Service) ListCatalog(
	context context.Context,
	filters Filters,
	order Order,
	isAdult bool,
	userID int64,
	params pagination.Params,
) ([]*Book, int, error) {

	// ── 1. Concurrent Facet Resolution ────────────────────────────────
	restriction, err := service.resolveRestriction(context, filters)
	if err != nil {
		return nil, 0, err
	}

	// ── 2. Empty Restriction Short-circuit ────────────────────────────
	// A limited restriction with no IDs can never match; skip the fetch.
	if restriction.Limited && len(restriction.IDs) == 0 {
		return []*Book{}, 0, nil
	}

	// ── 3. Page Fetch ─────────────────────────────────────────────────
	catalogQuery := CatalogQuery{
		Filters:     filters,
		Order:       order,
		Restriction: restriction,
		IsAdult:     isAdult,
	}

	books, total, err := service.repo.FetchPage(context, catalogQuery, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, err
	}

	// ── 4. Bookmark Enrichment ────────────────────────────────────────
	if err := service.enrichBookmarks(context, userID, books); err != nil {
		return nil, 0, err
	}

	return books, total, nil
}

// resolveRestriction resolves the requested facets concurrently and combines
// their ID sets. The zero value return means "no restriction".
func (service *Service) resolveRestriction(context context.Context, filters Filters) (IDRestriction, error) {
	genreRequested := filters.HasGenreFacet()
	tagRequested := filters.HasTagFacet()

	if !genreRequested && !tagRequested {
		return IDRestriction{}, nil
	}

	var genreIDs, tagIDs []int64

	group, groupCtx := errgroup.WithContext(context)

	if genreRequested {
		group.Go(func() error {
			resolved, err := service.repo.ResolveGenreFacet(groupCtx, filters.GenreIDs)
			if err != nil {
				return err
			}
			genreIDs = resolved
			return nil
		})
	}

	if tagRequested {
		group.Go(func() error {
			resolved, err := service.repo.ResolveTagFacet(groupCtx, filters.MergedTagIDs())
			if err != nil {
				return err
			}
			tagIDs = resolved
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return IDRestriction{}, err
	}

	// Combine: single facet passes through verbatim, both intersect.
	switch {
	case genreRequested && tagRequested:
		return Restrict(slice.Intersect(genreIDs, tagIDs)), nil
	case genreRequested:
		return Restrict(genreIDs), nil
	default:
		return Restrict(tagIDs), nil
	}
}

// enrichBookmarks flattens the caller's bookmarks onto the page rows.
// Anonymous callers (userID zero) and empty pages are no-ops.
func (service *Service) enrichBookmarks(context context.Context, userID int64, books []*Book) error {
	if userID == 0 || len(books) == 0 {
		return nil
	}

	bookIDs := slice.Map(books, func(b *Book) int64 { return b.ID })

	marks, err := service.repo.BookmarksFor(context, userID, bookIDs)
	if err != nil {
		return err
	}

	for _, book := range books {
		if info, ok := marks[book.ID]; ok {
			book.Bookmark = info
		}
	}

	return nil
}

// # Lookups & Discovery

/*
GetBook fetches a published book by its SEO slug within the caller's realm.

Parameters:
  - context: context.Context
  - slugValue: string
  - isAdult: bool
  - userID: int64 (Zero for anonymous; enriches the bookmark when set)

Returns:
  - *Book: Hydrated entity
  - error: apperr.NotFound if absent, draft, or cross-realm
*/
func (service *Service) GetBook(context context.Context, slugValue string, isAdult bool, userID int64) (*Book, error) {
	found, err := service.repo.FindBySlug(context, slugValue, isAdult)
	if err != nil {
		return nil, err
	}

	if err := service.enrichBookmarks(context, userID, []*Book{found}); err != nil {
		return nil, err
	}

	return found, nil
}

/*
SearchBooks returns published books whose titles contain the term.

Parameters:
  - context: context.Context
  - term: string (Required)
  - isAdult: bool
  - params: pagination.Params

Returns:
  - []*Book: Matches ordered by title
  - int: Total match count
  - error: Validation error when the term is empty
*/
func (service *Service) SearchBooks(context context.Context, term string, isAdult bool, params pagination.Params) ([]*Book, int, error) {
	validator := &validate.Validator{}
	validator.Required(FieldQuery, term).MaxLen(FieldQuery, term, 200)
	if err := validator.Err(); err != nil {
		return nil, 0, err
	}

	return service.repo.Search(context, term, isAdult, params.Limit, params.Offset())
}

/*
ListUpdates returns the realm's update feed, most recent upload first.
*/
func (service *Service) ListUpdates(context context.Context, isAdult bool, params pagination.Params) ([]*Book, int, error) {
	return service.repo.Updates(context, isAdult, params.Limit, params.Offset())
}

// # Book Management

/*
CreateBook validates and persists a new book.

Description: Generates the SEO slug from the title when absent, defaults
the status to DRAFT so new books stay invisible until published, and
creates the zeroed stat row alongside the record.

Parameters:
  - context: context.Context
  - book: *Book

Returns:
  - error: Validation errors, apperr.Conflict on duplicate slug
*/
func (service *Service) CreateBook(context context.Context, book *Book) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, book.Title).MaxLen(FieldTitle, book.Title, 500)

	validator.Required(FieldType, string(book.Type)).OneOf(FieldType, string(book.Type),
		string(TypeManga),
		string(TypeManhwa),
		string(TypeManhua),
		string(TypeComic),
		string(TypeNovel),
	)

	if book.Status == "" {
		book.Status = StatusDraft
	}
	validator.OneOf(FieldStatus, string(book.Status),
		string(StatusDraft),
		string(StatusActive),
		string(StatusFinished),
		string(StatusDropped),
	)

	if book.Slug == "" {
		book.Slug = slug.From(book.Title)
	}
	validator.Slug(FieldSlug, book.Slug)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.Create(context, book); err != nil {
		return err
	}

	service.logger.Info("book_created",
		slog.Int64("book_id", book.ID),
		slog.String("slug", book.Slug),
	)

	return nil
}

/*
UpdateBook applies a partial update to an existing book.

Parameters:
  - context: context.Context
  - book: *Book (Target ID and modified attributes)

Returns:
  - error: Validation or persistence errors
*/
func (service *Service) UpdateBook(context context.Context, book *Book) error {
	validator := &validate.Validator{}
	validator.Positive(FieldID, book.ID)

	if book.Title != "" {
		validator.MaxLen(FieldTitle, book.Title, 500)
	}

	if book.Slug != "" {
		validator.Slug(FieldSlug, book.Slug)
	}

	if book.Type != "" {
		validator.OneOf(FieldType, string(book.Type),
			string(TypeManga),
			string(TypeManhwa),
			string(TypeManhua),
			string(TypeComic),
			string(TypeNovel),
		)
	}

	if book.Status != "" {
		validator.OneOf(FieldStatus, string(book.Status),
			string(StatusDraft),
			string(StatusActive),
			string(StatusFinished),
			string(StatusDropped),
		)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.Update(context, book); err != nil {
		return err
	}

	service.logger.Info("book_updated", slog.Int64("book_id", book.ID))

	return nil
}

/*
DeleteBook removes a book and its dependent rows.
*/
func (service *Service) DeleteBook(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("book_deleted", slog.Int64("book_id", id))

	return nil
}

// # Sub-resources

// ListBookTags returns the tags and persons attached to a book.
func (service *Service) ListBookTags(context context.Context, bookID int64) ([]*TagRef, error) {
	return service.repo.ListTags(context, bookID)
}

// ListBookSeries returns the series a book belongs to.
func (service *Service) ListBookSeries(context context.Context, bookID int64) ([]*SerieRef, error) {
	return service.repo.ListSeries(context, bookID)
}

// ListBookCollections returns the collections a book belongs to.
func (service *Service) ListBookCollections(context context.Context, bookID int64) ([]*CollectionRef, error) {
	return service.repo.ListCollections(context, bookID)
}

// AttachTag links a tag or person to a book.
func (service *Service) AttachTag(context context.Context, bookID, tagID int64) error {
	validator := &validate.Validator{}
	validator.Positive(FieldID, bookID).Positive(FieldTagID, tagID)
	if err := validator.Err(); err != nil {
		return err
	}

	return service.repo.AttachTag(context, bookID, tagID)
}

// DetachTag removes a tag link from a book.
func (service *Service) DetachTag(context context.Context, bookID, tagID int64) error {
	return service.repo.DetachTag(context, bookID, tagID)
}

// AttachSerie links a book into a series.
func (service *Service) AttachSerie(context context.Context, serieID, bookID int64) error {
	validator := &validate.Validator{}
	validator.Positive(FieldSerieID, serieID).Positive(FieldID, bookID)
	if err := validator.Err(); err != nil {
		return err
	}

	return service.repo.AttachSerie(context, serieID, bookID)
}

// DetachSerie removes a series link.
func (service *Service) DetachSerie(context context.Context, serieID, bookID int64) error {
	return service.repo.DetachSerie(context, serieID, bookID)
}

// AttachCollection links a book into a collection.
func (service *Service) AttachCollection(context context.Context, collectionID, bookID int64) error {
	validator := &validate.Validator{}
	validator.Positive("collection_id", collectionID).Positive(FieldID, bookID)
	if err := validator.Err(); err != nil {
		return err
	}

	return service.repo.AttachCollection(context, collectionID, bookID)
}

// DetachCollection removes a collection link.
func (service *Service) DetachCollection(context context.Context, collectionID, bookID int64) error {
	return service.repo.DetachCollection(context, collectionID, bookID)
}
