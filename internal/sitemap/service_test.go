// Copyright (c) 2026 Kasane. All rights reserved.

package sitemap

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasaneapp/kasane/internal/platform/apperr"
)

type fakeRepo struct {
	books    []BookEntry
	chapters []ChapterEntry

	listCalls int
}

func (f *fakeRepo) ListBooks(context.Context, bool) ([]BookEntry, error) {
	f.listCalls++
	return f.books, nil
}

func (f *fakeRepo) FindBook(_ context.Context, bookID int64, _ bool) (*BookEntry, error) {
	for _, book := range f.books {
		if book.ID == bookID {
			return &book, nil
		}
	}
	return nil, apperr.NotFound("Book")
}

func (f *fakeRepo) ListChapters(context.Context, int64) ([]ChapterEntry, error) {
	return f.chapters, nil
}

type fakeCache struct {
	store map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string][]byte{}}
}

func (f *fakeCache) Get(_ context.Context, isAdult bool, name string) ([]byte, error) {
	return f.store[cacheKey(isAdult, name)], nil
}

func (f *fakeCache) Set(_ context.Context, isAdult bool, name string, body []byte) error {
	f.store[cacheKey(isAdult, name)] = body
	return nil
}

type fakeURLs struct{}

func (fakeURLs) BaseURL(isAdult bool) string {
	if isAdult {
		return "https://adult.example.com"
	}
	return "https://example.com"
}

func testDate(day int) time.Time {
	return time.Date(2026, time.March, day, 10, 0, 0, 0, time.UTC)
}

func TestIndex_DocumentShape(t *testing.T) {
	repo := &fakeRepo{books: []BookEntry{
		{ID: 1, Slug: "kage-no-hana", LastUpload: testDate(5)},
		{ID: 2, Slug: "tsuki-watari"},
	}}
	service := NewService(repo, newFakeCache(), fakeURLs{})

	body, err := service.Index(context.Background(), false)
	require.NoError(t, err)

	document := string(body)
	assert.Contains(t, document, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, document, `<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, document, "<loc>https://example.com/</loc>")
	assert.Contains(t, document, "<loc>https://example.com/sitemap/1.xml</loc>")
	assert.Contains(t, document, "<lastmod>2026-03-05</lastmod>")

	// A book with no chapters yet carries no lastmod at all.
	assert.Contains(t, document, "<loc>https://example.com/sitemap/2.xml</loc>")
	assert.Equal(t, 1, strings.Count(document, "<lastmod>"))
}

func TestIndex_ServedFromCache(t *testing.T) {
	repo := &fakeRepo{books: []BookEntry{{ID: 1, Slug: "kage-no-hana"}}}
	service := NewService(repo, newFakeCache(), fakeURLs{})

	first, err := service.Index(context.Background(), false)
	require.NoError(t, err)

	second, err := service.Index(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.listCalls)
}

func TestIndex_RealmsAreSegregated(t *testing.T) {
	repo := &fakeRepo{books: []BookEntry{{ID: 1, Slug: "kage-no-hana"}}}
	service := NewService(repo, newFakeCache(), fakeURLs{})

	public, err := service.Index(context.Background(), false)
	require.NoError(t, err)

	adult, err := service.Index(context.Background(), true)
	require.NoError(t, err)

	assert.Contains(t, string(public), "https://example.com")
	assert.Contains(t, string(adult), "https://adult.example.com")
	assert.Equal(t, 2, repo.listCalls)
}

func TestBook_DocumentShape(t *testing.T) {
	repo := &fakeRepo{
		books: []BookEntry{{ID: 1, Slug: "kage-no-hana", LastUpload: testDate(9)}},
		chapters: []ChapterEntry{
			{ID: 11, Number: 1, CreatedAt: testDate(3)},
			{ID: 12, Number: 2, CreatedAt: testDate(9)},
		},
	}
	service := NewService(repo, newFakeCache(), fakeURLs{})

	body, err := service.Book(context.Background(), 1, false)
	require.NoError(t, err)

	document := string(body)
	assert.Contains(t, document, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, document, "<loc>https://example.com/books/kage-no-hana</loc>")
	assert.Contains(t, document, "<loc>https://example.com/books/kage-no-hana/chapters/11</loc>")
	assert.Contains(t, document, "<loc>https://example.com/books/kage-no-hana/chapters/12</loc>")
	assert.Contains(t, document, "<lastmod>2026-03-03</lastmod>")
}

func TestBook_UnknownBookFails(t *testing.T) {
	service := NewService(&fakeRepo{}, newFakeCache(), fakeURLs{})

	_, err := service.Book(context.Background(), 404, false)
	assert.Error(t, err)
}

func TestRobots_AdvertisesSitemap(t *testing.T) {
	service := NewService(&fakeRepo{}, newFakeCache(), fakeURLs{})

	body := service.Robots(false)
	assert.Contains(t, body, "User-agent: *")
	assert.Contains(t, body, "Disallow: /api/")
	assert.Contains(t, body, "Sitemap: https://example.com/sitemap/index.xml")
}
