// Copyright (c) 2026 Kasane. All rights reserved.

package bookmark

import "context"

// # Storage Contract

// Repository defines the persistence operations for the bookmark shelf.
//
// Every mutating operation takes the owning user's ID and scopes its write
// to rows owned by that user; a mismatch surfaces as NotFound rather than
// Forbidden so bookmark IDs are not probeable.
type Repository interface {
	/*
		ListByUser returns one page of the reader's shelf within a realm.

		Parameters:
		  - context: context.Context
		  - userID: int64
		  - isAdult: bool (Realm flag; shelves never mix domains)
		  - shelfType: Type (Empty means all types)
		  - limit: int
		  - offset: int

		Returns:
		  - []*Bookmark: Hydrated with book and chapter refs, newest first
		  - int: Total shelf size under the same filters
		  - error: Database execution failures
	*/
	ListByUser(context context.Context, userID int64, isAdult bool, shelfType Type, limit, offset int) ([]*Bookmark, int, error)

	/*
		FindForBook returns the caller's bookmark on one book.

		Returns:
		  - *Bookmark: Bare row without refs
		  - error: apperr.NotFound when the book is not on the shelf
	*/
	FindForBook(context context.Context, userID, bookID int64) (*Bookmark, error)

	/*
		Upsert creates the caller's bookmark on a book, or moves the
		existing one to the given chapter and type.

		Description: Runs in one transaction. Only a genuine insert touches
		the counters: countbookmarks is incremented and the day's analytic
		delta row is upserted. A conflict update leaves counters alone.

		Returns:
		  - bool: True when a new row was inserted
		  - error: apperr.Unprocessable when the book or chapter is missing
	*/
	Upsert(context context.Context, mark *Bookmark) (bool, error)

	/*
		Update changes the chapter and/or type of an owned bookmark.

		Returns:
		  - error: apperr.NotFound when the ID is absent or not owned
	*/
	Update(context context.Context, userID int64, mark *Bookmark) error

	/*
		Delete removes one owned bookmark and decrements the book's
		counters in the same transaction.

		Returns:
		  - error: apperr.NotFound when the ID is absent or not owned
	*/
	Delete(context context.Context, userID, bookmarkID int64) error

	/*
		DeleteBulk removes a set of owned bookmarks, decrementing each
		affected book's counters. IDs not owned by the caller are skipped.

		Returns:
		  - int: Number of bookmarks actually removed
		  - error: Database execution failures
	*/
	DeleteBulk(context context.Context, userID int64, bookmarkIDs []int64) (int, error)

	/*
		Move changes the shelf type of a set of owned bookmarks. IDs not
		owned by the caller are skipped.

		Returns:
		  - int: Number of bookmarks actually moved
		  - error: Database execution failures
	*/
	Move(context context.Context, userID int64, bookmarkIDs []int64, shelfType Type) (int, error)
}
