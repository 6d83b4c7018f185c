// Copyright (c) 2026 Kasane. All rights reserved.

/*
Package bookmark implements the reader-side bookmark shelf.

A bookmark ties a reader to a book at a chapter, under one of a closed set
of shelf types. The unique pair (userid, bookid) means a reader holds at
most one bookmark per book; creating again moves the existing bookmark to
the new chapter instead of duplicating it.

Bookmark mutations keep the book's interaction counters in step: a create
increments core.bookstat.countbookmarks and the day's analytic row, and a
delete decrements them. Both happen in the same transaction as the
bookmark write.
*/
package bookmark

import "time"

// # Shelf Types

// Type classifies a bookmark on the reader's shelf.
type Type string

const (
	TypeReading  Type = "READING"
	TypePlanned  Type = "PLANNED"
	TypeFinished Type = "FINISHED"
	TypeFavorite Type = "FAVORITE"
	TypeDropped  Type = "DROPPED"
)

// IsValid reports whether the type is one of the closed shelf set.
func (t Type) IsValid() bool {
	switch t {
	case TypeReading, TypePlanned, TypeFinished, TypeFavorite, TypeDropped:
		return true
	}
	return false
}

// # Entities

// Bookmark is one row of a reader's shelf.
type Bookmark struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"-"`
	BookID       int64     `json:"book_id"`
	ChapterID    int64     `json:"chapter_id"`
	Type         Type      `json:"type"`
	CustomTypeID *int64    `json:"custom_type_id,omitempty"`
	IsAdult      bool      `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Book and Chapter hydrate the shelf listing; single-row lookups leave
	// them nil.
	Book    *BookRef    `json:"book,omitempty"`
	Chapter *ChapterRef `json:"chapter,omitempty"`
}

// BookRef is the book summary joined onto a shelf listing.
type BookRef struct {
	ID       int64  `json:"id"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Type     string `json:"type"`
	CoverURL string `json:"cover_url"`
}

// ChapterRef is the chapter position joined onto a shelf listing.
type ChapterRef struct {
	ID     int64   `json:"id"`
	Number float64 `json:"number"`
}

// # Validation Field Identifiers

const (
	FieldID        = "id"
	FieldIDs       = "ids"
	FieldBookID    = "book_id"
	FieldChapterID = "chapter_id"
	FieldType      = "type"
)
