// Copyright (c) 2026 Kasane. All rights reserved.

package book

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasaneapp/kasane/pkg/pagination"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeRepo is an in-memory [Repository] used to test the listing pipeline
// without a database.
type fakeRepo struct {
	genreResult []int64
	tagResult   []int64

	genreCalls int
	tagCalls   int
	genreArgs  []int64
	tagArgs    []int64

	fetchCalls int
	lastQuery  CatalogQuery
	lastLimit  int
	lastOffset int
	fetchBooks []*Book
	fetchTotal int

	bookmarks        map[int64]*BookmarkInfo
	bookmarksCalls   int
	bookmarksUser    int64
	bookmarksBookIDs []int64
}

func (f *fakeRepo) ResolveGenreFacet(_ context.Context, genreIDs []int64) ([]int64, error) {
	f.genreCalls++
	f.genreArgs = genreIDs
	return f.genreResult, nil
}

func (f *fakeRepo) ResolveTagFacet(_ context.Context, tagIDs []int64) ([]int64, error) {
	f.tagCalls++
	f.tagArgs = tagIDs
	return f.tagResult, nil
}

func (f *fakeRepo) FetchPage(_ context.Context, query CatalogQuery, limit, offset int) ([]*Book, int, error) {
	f.fetchCalls++
	f.lastQuery = query
	f.lastLimit = limit
	f.lastOffset = offset
	return f.fetchBooks, f.fetchTotal, nil
}

func (f *fakeRepo) BookmarksFor(_ context.Context, userID int64, bookIDs []int64) (map[int64]*BookmarkInfo, error) {
	f.bookmarksCalls++
	f.bookmarksUser = userID
	f.bookmarksBookIDs = bookIDs
	return f.bookmarks, nil
}

func (f *fakeRepo) FindBySlug(context.Context, string, bool) (*Book, error)    { return nil, nil }
func (f *fakeRepo) FindByID(context.Context, int64) (*Book, error)             { return nil, nil }
func (f *fakeRepo) Create(context.Context, *Book) error                        { return nil }
func (f *fakeRepo) Update(context.Context, *Book) error                        { return nil }
func (f *fakeRepo) Delete(context.Context, int64) error                        { return nil }
func (f *fakeRepo) ListTags(context.Context, int64) ([]*TagRef, error)         { return nil, nil }
func (f *fakeRepo) ListSeries(context.Context, int64) ([]*SerieRef, error)     { return nil, nil }
func (f *fakeRepo) AttachTag(context.Context, int64, int64) error              { return nil }
func (f *fakeRepo) DetachTag(context.Context, int64, int64) error              { return nil }
func (f *fakeRepo) AttachSerie(context.Context, int64, int64) error            { return nil }
func (f *fakeRepo) DetachSerie(context.Context, int64, int64) error            { return nil }
func (f *fakeRepo) AttachCollection(context.Context, int64, int64) error       { return nil }
func (f *fakeRepo) DetachCollection(context.Context, int64, int64) error       { return nil }
func (f *fakeRepo) Search(context.Context, string, bool, int, int) ([]*Book, int, error) {
	return nil, 0, nil
}
func (f *fakeRepo) Updates(context.Context, bool, int, int) ([]*Book, int, error) {
	return nil, 0, nil
}
func (f *fakeRepo) ListCollections(context.Context, int64) ([]*CollectionRef, error) {
	return nil, nil
}

func page(limit int) pagination.Params {
	return pagination.Params{Page: 1, Limit: limit}
}

/*
TestListCatalog_NoFacets verifies the identity law: with no facets
requested, no resolution query runs and the fetch carries no restriction.
*/
func TestListCatalog_NoFacets(t *testing.T) {
	repo := &fakeRepo{fetchBooks: []*Book{{ID: 1}, {ID: 2}}, fetchTotal: 2}
	service := NewService(repo, discardLogger())

	books, total, err := service.ListCatalog(context.Background(), Filters{}, DefaultOrder, false, 0, page(30))
	require.NoError(t, err)

	assert.Equal(t, 0, repo.genreCalls)
	assert.Equal(t, 0, repo.tagCalls)
	assert.Equal(t, 1, repo.fetchCalls)
	assert.False(t, repo.lastQuery.Restriction.Limited)
	assert.Len(t, books, 2)
	assert.Equal(t, 2, total)
}

/*
TestListCatalog_GenreFacet verifies that a single facet's resolved set is
applied verbatim as the restriction.
*/
func TestListCatalog_GenreFacet(t *testing.T) {
	repo := &fakeRepo{genreResult: []int64{10, 20, 30}}
	service := NewService(repo, discardLogger())

	_, _, err := service.ListCatalog(context.Background(), Filters{GenreIDs: []int64{3, 5}}, DefaultOrder, false, 0, page(30))
	require.NoError(t, err)

	assert.Equal(t, 1, repo.genreCalls)
	assert.Equal(t, []int64{3, 5}, repo.genreArgs)
	assert.Equal(t, 0, repo.tagCalls)
	assert.True(t, repo.lastQuery.Restriction.Limited)
	assert.Equal(t, []int64{10, 20, 30}, repo.lastQuery.Restriction.IDs)
}

/*
TestListCatalog_TagsAndPersonsMerge verifies that tag and person values
resolve as one facet over their shared membership table.
*/
func TestListCatalog_TagsAndPersonsMerge(t *testing.T) {
	repo := &fakeRepo{tagResult: []int64{10}}
	service := NewService(repo, discardLogger())

	filters := Filters{TagIDs: []int64{7}, PersonIDs: []int64{12}}
	_, _, err := service.ListCatalog(context.Background(), filters, DefaultOrder, false, 0, page(30))
	require.NoError(t, err)

	assert.Equal(t, 1, repo.tagCalls)
	assert.Equal(t, []int64{7, 12}, repo.tagArgs)
	assert.Equal(t, 0, repo.genreCalls)
}

/*
TestListCatalog_BothFacetsIntersect verifies the AND-across-facets rule.
*/
func TestListCatalog_BothFacetsIntersect(t *testing.T) {
	repo := &fakeRepo{
		genreResult: []int64{1, 2, 3},
		tagResult:   []int64{2, 3, 4},
	}
	service := NewService(repo, discardLogger())

	filters := Filters{GenreIDs: []int64{3}, TagIDs: []int64{7}}
	_, _, err := service.ListCatalog(context.Background(), filters, DefaultOrder, false, 0, page(30))
	require.NoError(t, err)

	assert.True(t, repo.lastQuery.Restriction.Limited)
	assert.Equal(t, []int64{2, 3}, repo.lastQuery.Restriction.IDs)
}

/*
TestListCatalog_EmptyResolutionShortCircuits verifies that an empty
resolved set yields an empty page without touching the book table.
*/
func TestListCatalog_EmptyResolutionShortCircuits(t *testing.T) {
	repo := &fakeRepo{genreResult: []int64{}}
	service := NewService(repo, discardLogger())

	books, total, err := service.ListCatalog(context.Background(), Filters{GenreIDs: []int64{3}}, DefaultOrder, false, 0, page(30))
	require.NoError(t, err)

	assert.Empty(t, books)
	assert.Equal(t, 0, total)
	assert.Equal(t, 0, repo.fetchCalls)
}

/*
TestListCatalog_DisjointFacetsYieldEmpty verifies that intersecting
disjoint sets produces a real zero-match restriction, not "no restriction".
*/
func TestListCatalog_DisjointFacetsYieldEmpty(t *testing.T) {
	repo := &fakeRepo{
		genreResult: []int64{1, 2},
		tagResult:   []int64{3, 4},
	}
	service := NewService(repo, discardLogger())

	filters := Filters{GenreIDs: []int64{3}, TagIDs: []int64{7}}
	books, total, err := service.ListCatalog(context.Background(), filters, DefaultOrder, false, 0, page(30))
	require.NoError(t, err)

	assert.Empty(t, books)
	assert.Equal(t, 0, total)
	assert.Equal(t, 0, repo.fetchCalls)
}

/*
TestListCatalog_BookmarkEnrichment verifies that the caller's bookmarks are
flattened onto the page without changing its order or cardinality.
*/
func TestListCatalog_BookmarkEnrichment(t *testing.T) {
	repo := &fakeRepo{
		fetchBooks: []*Book{{ID: 5}, {ID: 6}, {ID: 7}},
		fetchTotal: 3,
		bookmarks: map[int64]*BookmarkInfo{
			6: {ID: 99, ChapterID: 12, Type: "READING"},
		},
	}
	service := NewService(repo, discardLogger())

	books, _, err := service.ListCatalog(context.Background(), Filters{}, DefaultOrder, false, 42, page(30))
	require.NoError(t, err)

	require.Len(t, books, 3)
	assert.Equal(t, int64(5), books[0].ID)
	assert.Equal(t, int64(6), books[1].ID)
	assert.Equal(t, int64(7), books[2].ID)

	assert.Nil(t, books[0].Bookmark)
	require.NotNil(t, books[1].Bookmark)
	assert.Equal(t, int64(99), books[1].Bookmark.ID)
	assert.Nil(t, books[2].Bookmark)

	assert.Equal(t, 1, repo.bookmarksCalls)
	assert.Equal(t, int64(42), repo.bookmarksUser)
	assert.Equal(t, []int64{5, 6, 7}, repo.bookmarksBookIDs)
}

/*
TestListCatalog_AnonymousSkipsEnrichment verifies that anonymous callers
never trigger the bookmark query.
*/
func TestListCatalog_AnonymousSkipsEnrichment(t *testing.T) {
	repo := &fakeRepo{fetchBooks: []*Book{{ID: 5}}, fetchTotal: 1}
	service := NewService(repo, discardLogger())

	books, _, err := service.ListCatalog(context.Background(), Filters{}, DefaultOrder, false, 0, page(30))
	require.NoError(t, err)

	assert.Equal(t, 0, repo.bookmarksCalls)
	assert.Nil(t, books[0].Bookmark)
}

/*
TestListCatalog_QueryPropagation verifies realm, order, and pagination
reach the fetcher unchanged.
*/
func TestListCatalog_QueryPropagation(t *testing.T) {
	repo := &fakeRepo{}
	service := NewService(repo, discardLogger())

	order := Order{Key: OrderViews, Desc: true}
	params := pagination.Params{Page: 3, Limit: 30}

	_, _, err := service.ListCatalog(context.Background(), Filters{Types: []Type{TypeManga}}, order, true, 0, params)
	require.NoError(t, err)

	assert.True(t, repo.lastQuery.IsAdult)
	assert.Equal(t, order, repo.lastQuery.Order)
	assert.Equal(t, []Type{TypeManga}, repo.lastQuery.Filters.Types)
	assert.Equal(t, 30, repo.lastLimit)
	assert.Equal(t, 60, repo.lastOffset)
}

/*
TestSearchBooks_RequiresTerm verifies that an empty search term is a
validation error before any query runs.
*/
func TestSearchBooks_RequiresTerm(t *testing.T) {
	service := NewService(&fakeRepo{}, discardLogger())

	_, _, err := service.SearchBooks(context.Background(), "", false, page(30))
	assert.Error(t, err)
}

/*
TestCreateBook_Defaults verifies slug generation and the DRAFT default.
*/
func TestCreateBook_Defaults(t *testing.T) {
	repo := &fakeRepo{}
	service := NewService(repo, discardLogger())

	created := &Book{Title: "Kage no Hana", Type: TypeManga}
	err := service.CreateBook(context.Background(), created)
	require.NoError(t, err)

	assert.Equal(t, "kage-no-hana", created.Slug)
	assert.Equal(t, StatusDraft, created.Status)
}

/*
TestCreateBook_RejectsUnknownType verifies the closed type enum.
*/
func TestCreateBook_RejectsUnknownType(t *testing.T) {
	service := NewService(&fakeRepo{}, discardLogger())

	err := service.CreateBook(context.Background(), &Book{Title: "X", Type: Type("DOUJIN")})
	assert.Error(t, err)
}
