// Copyright (c) 2026 Kasane. All rights reserved.

package sitemap

import (
	"context"
	"fmt"
)

// # Service Layer

// DocumentCache stores rendered documents. [Cache] is the redis
// implementation; tests substitute their own.
type DocumentCache interface {
	Get(context context.Context, isAdult bool, name string) ([]byte, error)
	Set(context context.Context, isAdult bool, name string, body []byte) error
}

// SiteURLs resolves the public site root for a content domain.
type SiteURLs interface {
	BaseURL(isAdult bool) string
}

// Service renders and caches the crawl documents.
type Service struct {
	repo  Repository
	cache DocumentCache
	urls  SiteURLs
}

// NewService constructs a new [Service].
func NewService(repo Repository, cache DocumentCache, urls SiteURLs) *Service {
	return &Service{repo: repo, cache: cache, urls: urls}
}

const indexDocument = "index.xml"

/*
Index returns the realm's sitemapindex document.

Description: The index carries the static pages first, then one sitemap
entry per published book pointing at its chapter urlset, each stamped with
the book's freshest ACTIVE chapter date. Served from cache when present;
a fresh render is cached best-effort so a cache fault never breaks the
crawl response.

Parameters:
  - context: context.Context
  - isAdult: bool

Returns:
  - []byte: The XML document
  - error: Database or rendering failures
*/
func (service *Service) Index(context context.Context, isAdult bool) ([]byte, error) {
	if cached, err := service.cache.Get(context, isAdult, indexDocument); err == nil && cached != nil {
		return cached, nil
	}

	books, err := service.repo.ListBooks(context, isAdult)
	if err != nil {
		return nil, err
	}

	base := service.urls.BaseURL(isAdult)

	document := Index{XMLNS: xmlns}
	document.Sitemaps = append(document.Sitemaps,
		IndexEntry{Loc: base + "/"},
		IndexEntry{Loc: base + "/updates"},
	)

	for _, book := range books {
		document.Sitemaps = append(document.Sitemaps, IndexEntry{
			Loc:     fmt.Sprintf("%s/sitemap/%d.xml", base, book.ID),
			LastMod: lastMod(book.LastUpload),
		})
	}

	body, err := render(document)
	if err != nil {
		return nil, err
	}

	_ = service.cache.Set(context, isAdult, indexDocument, body)

	return body, nil
}

/*
Book returns one book's urlset document.

Description: Lists the book page followed by its ACTIVE chapters in
reading order. A book outside the caller's realm renders nothing; the
NotFound passes through so crawlers drop the stale index entry.

Parameters:
  - context: context.Context
  - bookID: int64
  - isAdult: bool

Returns:
  - []byte: The XML document
  - error: apperr.NotFound when the book is absent, draft, or cross-realm
*/
func (service *Service) Book(context context.Context, bookID int64, isAdult bool) ([]byte, error) {
	name := fmt.Sprintf("%d.xml", bookID)

	if cached, err := service.cache.Get(context, isAdult, name); err == nil && cached != nil {
		return cached, nil
	}

	book, err := service.repo.FindBook(context, bookID, isAdult)
	if err != nil {
		return nil, err
	}

	chapters, err := service.repo.ListChapters(context, bookID)
	if err != nil {
		return nil, err
	}

	base := service.urls.BaseURL(isAdult)
	bookURL := fmt.Sprintf("%s/books/%s", base, book.Slug)

	document := URLSet{XMLNS: xmlns}
	document.URLs = append(document.URLs, URLEntry{
		Loc:     bookURL,
		LastMod: lastMod(book.LastUpload),
	})

	for _, chapter := range chapters {
		document.URLs = append(document.URLs, URLEntry{
			Loc:     fmt.Sprintf("%s/chapters/%d", bookURL, chapter.ID),
			LastMod: lastMod(chapter.CreatedAt),
		})
	}

	body, err := render(document)
	if err != nil {
		return nil, err
	}

	_ = service.cache.Set(context, isAdult, name, body)

	return body, nil
}

/*
Robots returns the realm's robots.txt body.

Description: The API surface is disallowed; everything else is open, with
the sitemap index advertised. Static per realm, so no storage is touched.
*/
func (service *Service) Robots(isAdult bool) string {
	base := service.urls.BaseURL(isAdult)

	return fmt.Sprintf(
		"User-agent: *\nDisallow: /api/\nAllow: /\n\nSitemap: %s/sitemap/index.xml\n",
		base,
	)
}
