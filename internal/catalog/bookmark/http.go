// Copyright (c) 2026 Kasane. All rights reserved.

/*
Package bookmark provides the HTTP interface for the reader's shelf.

Every endpoint requires an authenticated caller; the shelf has no
anonymous surface. The realm flag comes from the Host header, so a shelf
request only ever sees bookmarks from the domain it was made against.
*/
package bookmark

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kasaneapp/kasane/internal/platform/middleware"
	"github.com/kasaneapp/kasane/internal/platform/realm"
	requestutil "github.com/kasaneapp/kasane/internal/platform/request"
	"github.com/kasaneapp/kasane/internal/platform/respond"
	"github.com/kasaneapp/kasane/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for the bookmark shelf.
type Handler struct {
	service    *Service
	classifier *realm.Classifier
}

// NewHandler constructs a new bookmark [Handler].
func NewHandler(service *Service, classifier *realm.Classifier) *Handler {
	return &Handler{service: service, classifier: classifier}
}

// Routes returns a [chi.Router] with the shelf endpoints, all auth-gated.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listShelf)
	router.Post("/", handler.saveBookmark)
	router.Patch("/{id}", handler.updateBookmark)
	router.Delete("/{id}", handler.deleteBookmark)
	router.Delete("/", handler.deleteBookmarks)
	router.Post("/move", handler.moveBookmarks)

	return router
}

/*
GET /api/v1/bookmarks.

Request:
  - type: string (Optional shelf filter: READING, PLANNED, FINISHED,
    FAVORITE, DROPPED)
  - page: int
  - limit: int

Response:
  - 200: []Bookmark: The shelf page with book and chapter refs
*/
func (handler *Handler) listShelf(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	isAdult := handler.classifier.IsAdult(request.Host)
	shelfType := Type(request.URL.Query().Get("type"))

	marks, total, err := handler.service.ListShelf(request.Context(), userID, isAdult, shelfType, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, marks, pagination.NewMeta(params.Page, params.Limit, total))
}

// saveBookmarkRequest is the payload for bookmark creation and moves.
type saveBookmarkRequest struct {
	BookID       int64  `json:"book_id"`
	ChapterID    int64  `json:"chapter_id"`
	Type         string `json:"type"`
	CustomTypeID *int64 `json:"custom_type_id"`
}

/*
POST /api/v1/bookmarks.

Description: Idempotent per (caller, book): a second call for the same
book moves the existing bookmark to the new chapter and type.

Response:
  - 201: Bookmark: A new bookmark was shelved
  - 200: Bookmark: An existing bookmark was moved
  - 422: The book or chapter does not exist
*/
func (handler *Handler) saveBookmark(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload saveBookmarkRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	mark := &Bookmark{
		UserID:       userID,
		BookID:       payload.BookID,
		ChapterID:    payload.ChapterID,
		Type:         Type(payload.Type),
		CustomTypeID: payload.CustomTypeID,
		IsAdult:      handler.classifier.IsAdult(request.Host),
	}

	created, err := handler.service.SaveBookmark(request.Context(), mark)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if created {
		respond.Created(writer, mark)
		return
	}

	respond.OK(writer, mark)
}

/*
PATCH /api/v1/bookmarks/{id}.

Response:
  - 204: The bookmark was updated
  - 404: The ID is unknown or belongs to another reader
*/
func (handler *Handler) updateBookmark(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookmarkID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload saveBookmarkRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	mark := &Bookmark{
		ID:        bookmarkID,
		ChapterID: payload.ChapterID,
		Type:      Type(payload.Type),
	}

	if err := handler.service.UpdateBookmark(request.Context(), userID, mark); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
DELETE /api/v1/bookmarks/{id}.

Response:
  - 204: The bookmark was removed and the book's counter decremented
  - 404: The ID is unknown or belongs to another reader
*/
func (handler *Handler) deleteBookmark(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookmarkID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteBookmark(request.Context(), userID, bookmarkID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// bulkRequest is the payload for bulk shelf operations.
type bulkRequest struct {
	IDs  []int64 `json:"ids"`
	Type string  `json:"type"`
}

// bulkResult reports how many bookmarks a bulk operation touched.
type bulkResult struct {
	Affected int `json:"affected"`
}

/*
DELETE /api/v1/bookmarks.

Response:
  - 200: {affected}: Number of bookmarks removed; unowned IDs are skipped
*/
func (handler *Handler) deleteBookmarks(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload bulkRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	affected, err := handler.service.DeleteBookmarks(request.Context(), userID, payload.IDs)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, bulkResult{Affected: affected})
}

/*
POST /api/v1/bookmarks/move.

Response:
  - 200: {affected}: Number of bookmarks moved to the new shelf type
*/
func (handler *Handler) moveBookmarks(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload bulkRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	affected, err := handler.service.MoveBookmarks(request.Context(), userID, payload.IDs, Type(payload.Type))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, bulkResult{Affected: affected})
}

/*
BookBookmark handles GET /api/v1/books/{id}/bookmark.

Description: Returns the caller's bookmark on one book. Mounted from the
book router so the URL reads as a book sub-resource.

Response:
  - 200: Bookmark
  - 404: The book is not on the caller's shelf
*/
func (handler *Handler) BookBookmark(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	mark, err := handler.service.GetForBook(request.Context(), userID, bookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, mark)
}
