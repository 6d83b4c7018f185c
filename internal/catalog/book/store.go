// Copyright (c) 2026 Kasane. All rights reserved.

package book

import "context"

// # Catalog Query

// CatalogQuery carries everything the page fetcher needs to produce one
// catalog page. The Restriction is the combined facet outcome; Filters
// contribute only their row-local predicates (types, serie) at this stage.
type CatalogQuery struct {
	Filters     Filters
	Order       Order
	Restriction IDRestriction
	IsAdult     bool
}

// # Book Data Access

// Repository defines the data access contract for the book catalog.
type Repository interface {

	// ## Facet Resolution

	/*
		ResolveGenreFacet returns the IDs of books attached to ALL the given genres.

		Parameters:
		  - context: context.Context
		  - genreIDs: []int64 (Deduplicated, non-empty value set)

		Returns:
		  - []int64: Matching book IDs, newest first
		  - error: Database retrieval failures
	*/
	ResolveGenreFacet(context context.Context, genreIDs []int64) ([]int64, error)

	/*
		ResolveTagFacet returns the IDs of books attached to ALL the given tags.

		The value set is the merged tag∪person facet; both roles share the
		same membership table.

		Parameters:
		  - context: context.Context
		  - tagIDs: []int64 (Deduplicated, non-empty value set)

		Returns:
		  - []int64: Matching book IDs, newest first
		  - error: Database retrieval failures
	*/
	ResolveTagFacet(context context.Context, tagIDs []int64) ([]int64, error)

	// ## Page Fetch & Enrichment

	/*
		FetchPage returns one catalog page and the total match count.

		Parameters:
		  - context: context.Context
		  - query: CatalogQuery (Restriction, row-local filters, order, realm)
		  - limit: int
		  - offset: int

		Returns:
		  - []*Book: Page rows with stat counters attached
		  - int: Total count of rows matching the query
		  - error: Database retrieval failures
	*/
	FetchPage(context context.Context, query CatalogQuery, limit, offset int) ([]*Book, int, error)

	/*
		BookmarksFor returns the caller's bookmarks over the given books.

		Parameters:
		  - context: context.Context
		  - userID: int64 (Never zero; anonymous callers skip enrichment)
		  - bookIDs: []int64

		Returns:
		  - map[int64]*BookmarkInfo: At most one entry per book ID
		  - error: Database retrieval failures
	*/
	BookmarksFor(context context.Context, userID int64, bookIDs []int64) (map[int64]*BookmarkInfo, error)

	// ## Lookups

	/*
		FindBySlug returns the published book matching the SEO slug within a realm.

		Parameters:
		  - context: context.Context
		  - slug: string
		  - isAdult: bool (Caller's content domain)

		Returns:
		  - *Book: The hydrated entity with stat counters
		  - error: apperr.NotFound if missing, draft, or in the other realm
	*/
	FindBySlug(context context.Context, slug string, isAdult bool) (*Book, error)

	/*
		FindByID returns the book with the given ID regardless of status or realm.

		Used by management surfaces only.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - *Book: The hydrated entity
		  - error: apperr.NotFound if missing
	*/
	FindByID(context context.Context, id int64) (*Book, error)

	// ## Management

	/*
		Create persists a new book and its zeroed stat row atomically.

		Parameters:
		  - context: context.Context
		  - book: *Book (ID populated on return)

		Returns:
		  - error: apperr.Conflict on duplicate slug, or persistence failures
	*/
	Create(context context.Context, book *Book) error

	/*
		Update persists changes to a book's mutable fields (partial update).

		Parameters:
		  - context: context.Context
		  - book: *Book (Target ID and modified attributes)

		Returns:
		  - error: apperr.NotFound if the target does not exist
	*/
	Update(context context.Context, book *Book) error

	/*
		Delete removes a book; junction and stat rows cascade.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - error: apperr.NotFound if the target does not exist
	*/
	Delete(context context.Context, id int64) error

	// ## Discovery Surfaces

	/*
		Search returns published books whose titles contain the term.

		Parameters:
		  - context: context.Context
		  - term: string (Substring, matched case-insensitively)
		  - isAdult: bool (Caller's content domain)
		  - limit: int
		  - offset: int

		Returns:
		  - []*Book: Matches ordered by title ascending
		  - int: Total match count
		  - error: Database retrieval failures
	*/
	Search(context context.Context, term string, isAdult bool, limit, offset int) ([]*Book, int, error)

	/*
		Updates returns published books ordered by latest content upload.

		Parameters:
		  - context: context.Context
		  - isAdult: bool (Caller's content domain)
		  - limit: int
		  - offset: int

		Returns:
		  - []*Book: Feed rows, most recently updated first
		  - int: Total row count
		  - error: Database retrieval failures
	*/
	Updates(context context.Context, isAdult bool, limit, offset int) ([]*Book, int, error)

	// ## Sub-resource Management

	/*
		ListTags returns all tags and persons attached to a book.
	*/
	ListTags(context context.Context, bookID int64) ([]*TagRef, error)

	/*
		ListSeries returns the series a book belongs to.
	*/
	ListSeries(context context.Context, bookID int64) ([]*SerieRef, error)

	/*
		ListCollections returns the collections a book belongs to.
	*/
	ListCollections(context context.Context, bookID int64) ([]*CollectionRef, error)

	/*
		AttachTag links a tag to a book.

		Returns:
		  - error: apperr.Conflict if already attached, apperr.Unprocessable if
		    either side is missing
	*/
	AttachTag(context context.Context, bookID, tagID int64) error

	/*
		DetachTag removes a tag link.

		Returns:
		  - error: apperr.NotFound if the link does not exist
	*/
	DetachTag(context context.Context, bookID, tagID int64) error

	/*
		AttachSerie links a book into a series.

		Returns:
		  - error: apperr.Conflict if already linked, apperr.Unprocessable if
		    either side is missing
	*/
	AttachSerie(context context.Context, serieID, bookID int64) error

	/*
		DetachSerie removes a series link.

		Returns:
		  - error: apperr.NotFound if the link does not exist
	*/
	DetachSerie(context context.Context, serieID, bookID int64) error

	/*
		AttachCollection links a book into a collection.

		Returns:
		  - error: apperr.Conflict if already linked, apperr.Unprocessable if
		    either side is missing
	*/
	AttachCollection(context context.Context, collectionID, bookID int64) error

	/*
		DetachCollection removes a collection link.

		Returns:
		  - error: apperr.NotFound if the link does not exist
	*/
	DetachCollection(context context.Context, collectionID, bookID int64) error
}
