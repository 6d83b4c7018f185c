// Copyright (c) 2026 Kasane. All rights reserved.

/*
Package book defines the core catalog domain: faceted listing, lookup,
search, and the update feed for the platform's books.

Core Responsibility:

  - Catalog: Defines publication types (Manga, Manhwa) and lifecycle statuses.
  - Discovery: Resolves genre/tag/person facets into filtered, sorted pages.
  - Personalisation: Flattens the caller's bookmark onto listed rows.

The listing pipeline is the heart of the platform: facets are resolved to
book ID sets in the database, combined in the service layer, and the final
page is fetched with the caller's content domain and device class applied.
*/
package book

import "time"

// # Domain Enums

// Type represents the publication format of a book.
type Type string

const (
	TypeManga  Type = "MANGA"
	TypeManhwa Type = "MANHWA"
	TypeManhua Type = "MANHUA"
	TypeComic  Type = "COMIC"
	TypeNovel  Type = "NOVEL"
)

// IsValid reports whether t is a recognised [Type] value.
func (t Type) IsValid() bool {
	switch t {
	case
		TypeManga,
		TypeManhwa,
		TypeManhua,
		TypeComic,
		TypeNovel:
		return true
	}
	return false
}

// Status represents the publication status of a book.
type Status string

const (
	// StatusDraft marks a book that is not yet published. Draft books are
	// excluded from every public surface unconditionally.
	StatusDraft Status = "DRAFT"

	// StatusActive indicates the book is published and updating.
	StatusActive Status = "ACTIVE"

	// StatusFinished indicates no further chapters are expected.
	StatusFinished Status = "FINISHED"

	// StatusDropped indicates the publication was discontinued.
	StatusDropped Status = "DROPPED"
)

// IsValid reports whether s is a recognised [Status] value.
func (s Status) IsValid() bool {
	switch s {
	case
		StatusDraft,
		StatusActive,
		StatusFinished,
		StatusDropped:
		return true
	}
	return false
}

// # Core Entities

// Book is the central aggregate of the Kasane catalog.
type Book struct {
	ID            int64     `json:"id"`
	Slug          string    `json:"slug"` // URL-safe identifier
	Title         string    `json:"title"`
	TitleEn       string    `json:"title_en"`
	Type          Type      `json:"type"`
	Status        Status    `json:"status"`
	IsAdult       bool      `json:"is_adult"` // Content domain flag; never crosses realms
	Description   string    `json:"description"`
	CoverURL      string    `json:"cover_url"`
	LastChapterID *int64    `json:"last_chapter_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	NewUploadAt   time.Time `json:"new_upload_at"` // Timestamp of the latest content upload

	// Stat carries the denormalised counters maintained by interaction
	// side effects. Nil when the book has no stat row yet.
	Stat *Stat `json:"stat,omitempty"`

	// Bookmark is the calling user's bookmark on this book, flattened onto
	// the row during enrichment. Nil for anonymous callers or unmarked books.
	Bookmark *BookmarkInfo `json:"bookmark,omitempty"`
}

// Stat holds the per-book interaction counters.
type Stat struct {
	BookID         int64 `json:"book_id"`
	CountBookmarks int64 `json:"count_bookmarks"`
	CountViews     int64 `json:"count_views"`
	CountLikes     int64 `json:"count_likes"`
}

// BookmarkInfo is the slim bookmark projection used for row enrichment.
// The full bookmark aggregate lives in the bookmark domain.
type BookmarkInfo struct {
	ID        int64  `json:"id"`
	ChapterID int64  `json:"chapter_id"`
	Type      string `json:"type"`
}

// TagRef is a tag or person attached to a book.
type TagRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"` // GENERAL or PERSON
}

// SerieRef is a series a book belongs to.
type SerieRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CollectionRef is a curated collection a book belongs to.
type CollectionRef struct {
	ID   int64  `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// # Facet Restriction

// IDRestriction is the outcome of facet resolution.
//
// The zero value means "no restriction": no facet was requested, so the
// page fetch runs unrestricted. A Limited restriction with an empty ID set
// is a real constraint that matches nothing; the two states must never be
// conflated.
type IDRestriction struct {
	Limited bool
	IDs     []int64
}

// Restrict builds a limited [IDRestriction] over the given set.
func Restrict(ids []int64) IDRestriction {
	if ids == nil {
		ids = []int64{}
	}
	return IDRestriction{Limited: true, IDs: ids}
}

// # Field Identifiers

// Global field names for validation and dynamic query mapping.
const (
	FieldID          = "id"
	FieldSlug        = "slug"
	FieldTitle       = "title"
	FieldTitleEn     = "title_en"
	FieldType        = "type"
	FieldStatus      = "status"
	FieldDescription = "description"
	FieldCoverURL    = "cover_url"
	FieldQuery       = "query"
	FieldTagID       = "tag_id"
	FieldSerieID     = "serie_id"
	FieldGenreID     = "genre_id"
)
