// Copyright (c) 2026 Kasane. All rights reserved.

package bookmark

import (
	"context"
	"log/slog"

	"github.com/kasaneapp/kasane/internal/platform/validate"
	"github.com/kasaneapp/kasane/pkg/pagination"
	"github.com/kasaneapp/kasane/pkg/slice"
)

// # Service Layer

// Service orchestrates shelf reads and ownership-scoped mutations.
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

// shelfTypeNames enumerates the closed shelf set for OneOf validation.
var shelfTypeNames = []string{
	string(TypeReading),
	string(TypePlanned),
	string(TypeFinished),
	string(TypeFavorite),
	string(TypeDropped),
}

/*
ListShelf returns one page of the caller's shelf within their realm.

Parameters:
  - context: context.Context
  - userID: int64
  - isAdult: bool
  - shelfType: Type (Empty means all types)
  - params: pagination.Params

Returns:
  - []*Bookmark: Hydrated shelf page, most recently touched first
  - int: Total shelf size under the same filters
  - error: Validation or persistence errors
*/
func (service *Service) ListShelf(context context.Context, userID int64, isAdult bool, shelfType Type, params pagination.Params) ([]*Bookmark, int, error) {
	if shelfType != "" && !shelfType.IsValid() {
		return nil, 0, validate.RequiredError(FieldType, "unknown bookmark type")
	}

	return service.repo.ListByUser(context, userID, isAdult, shelfType, params.Limit, params.Offset())
}

/*
GetForBook returns the caller's bookmark on one book.

Returns:
  - *Bookmark: Bare row
  - error: apperr.NotFound when the book is not on the shelf
*/
func (service *Service) GetForBook(context context.Context, userID, bookID int64) (*Bookmark, error) {
	validator := &validate.Validator{}
	validator.Positive(FieldBookID, bookID)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	return service.repo.FindForBook(context, userID, bookID)
}

/*
SaveBookmark creates or moves the caller's bookmark on a book.

Description: Re-bookmarking an already shelved book moves the existing
bookmark to the new chapter and type rather than failing, so clients can
treat "bookmark this chapter" as idempotent.

Parameters:
  - context: context.Context
  - mark: *Bookmark (UserID, BookID, ChapterID, Type, IsAdult set)

Returns:
  - bool: True when the shelf grew (a new bookmark)
  - error: Validation errors, apperr.Unprocessable on missing book/chapter
*/
func (service *Service) SaveBookmark(context context.Context, mark *Bookmark) (bool, error) {
	validator := &validate.Validator{}
	validator.Positive(FieldBookID, mark.BookID).Positive(FieldChapterID, mark.ChapterID)
	validator.Required(FieldType, string(mark.Type)).OneOf(FieldType, string(mark.Type), shelfTypeNames...)
	if err := validator.Err(); err != nil {
		return false, err
	}

	created, err := service.repo.Upsert(context, mark)
	if err != nil {
		return false, err
	}

	if created {
		service.logger.Info("bookmark_created",
			slog.Int64("bookmark_id", mark.ID),
			slog.Int64("book_id", mark.BookID),
		)
	}

	return created, nil
}

/*
UpdateBookmark changes the chapter and/or type of an owned bookmark.

Parameters:
  - context: context.Context
  - userID: int64 (Owner scope)
  - mark: *Bookmark (ID plus the attributes to change)

Returns:
  - error: Validation errors, apperr.NotFound for unowned IDs
*/
func (service *Service) UpdateBookmark(context context.Context, userID int64, mark *Bookmark) error {
	validator := &validate.Validator{}
	validator.Positive(FieldID, mark.ID)

	if mark.Type != "" {
		validator.OneOf(FieldType, string(mark.Type), shelfTypeNames...)
	}

	validator.Custom(FieldID, mark.Type == "" && mark.ChapterID == 0, "nothing to update")

	if err := validator.Err(); err != nil {
		return err
	}

	return service.repo.Update(context, userID, mark)
}

/*
DeleteBookmark removes one owned bookmark.
*/
func (service *Service) DeleteBookmark(context context.Context, userID, bookmarkID int64) error {
	validator := &validate.Validator{}
	validator.Positive(FieldID, bookmarkID)
	if err := validator.Err(); err != nil {
		return err
	}

	return service.repo.Delete(context, userID, bookmarkID)
}

/*
DeleteBookmarks removes a set of owned bookmarks.

Returns:
  - int: Number of bookmarks actually removed
  - error: Validation or persistence errors
*/
func (service *Service) DeleteBookmarks(context context.Context, userID int64, bookmarkIDs []int64) (int, error) {
	ids, err := validIDSet(bookmarkIDs)
	if err != nil {
		return 0, err
	}

	return service.repo.DeleteBulk(context, userID, ids)
}

/*
MoveBookmarks changes the shelf type of a set of owned bookmarks.

Returns:
  - int: Number of bookmarks actually moved
  - error: Validation or persistence errors
*/
func (service *Service) MoveBookmarks(context context.Context, userID int64, bookmarkIDs []int64, shelfType Type) (int, error) {
	validator := &validate.Validator{}
	validator.Required(FieldType, string(shelfType)).OneOf(FieldType, string(shelfType), shelfTypeNames...)
	if err := validator.Err(); err != nil {
		return 0, err
	}

	ids, err := validIDSet(bookmarkIDs)
	if err != nil {
		return 0, err
	}

	return service.repo.Move(context, userID, ids, shelfType)
}

// validIDSet deduplicates a bulk ID list, dropping non-positive entries.
// An empty result is a validation error; bulk operations need a target.
func validIDSet(ids []int64) ([]int64, error) {
	cleaned := slice.Unique(slice.Filter(ids, func(id int64) bool { return id > 0 }))
	if len(cleaned) == 0 {
		return nil, validate.RequiredError(FieldIDs, "at least one id is required")
	}

	return cleaned, nil
}
