// Copyright (c) 2026 Kasane. All rights reserved.

package sitemap

import (
	"context"
	"time"
)

// # Crawl Entries

// BookEntry is one book of the index with its freshest content timestamp.
type BookEntry struct {
	ID         int64
	Slug       string
	LastUpload time.Time
}

// ChapterEntry is one crawlable chapter of a book sitemap.
type ChapterEntry struct {
	ID        int64
	Number    float64
	CreatedAt time.Time
}

// # Storage Contract

// Repository defines the reads backing sitemap generation.
type Repository interface {
	/*
		ListBooks returns every published book of a realm with the
		creation time of its newest ACTIVE chapter.

		Returns:
		  - []BookEntry: Ordered by book ID for stable document diffs
		  - error: Database execution failures
	*/
	ListBooks(context context.Context, isAdult bool) ([]BookEntry, error)

	/*
		FindBook returns one published book of a realm.

		Returns:
		  - *BookEntry: Slug and freshest chapter timestamp
		  - error: apperr.NotFound when absent, draft, or cross-realm
	*/
	FindBook(context context.Context, bookID int64, isAdult bool) (*BookEntry, error)

	/*
		ListChapters returns a book's ACTIVE chapters, oldest first.
	*/
	ListChapters(context context.Context, bookID int64) ([]ChapterEntry, error)
}
