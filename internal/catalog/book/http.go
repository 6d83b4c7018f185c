// Copyright (c) 2026 Kasane. All rights reserved.

/*
Package book provides the HTTP interface for catalog discovery and management.

# Routing Strategy

  - Public (v1): Listing, lookup, search, and update-feed endpoints for all
    visitors; anonymous and authenticated callers share them.
  - Restricted (v1): Mutative endpoints requiring the Admin role.

Every public endpoint derives two request traits before touching the
service: the content domain from the Host header and the page size from the
client device class. Neither is accepted from query parameters.
*/
package book

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kasaneapp/kasane/internal/platform/constants"
	"github.com/kasaneapp/kasane/internal/platform/middleware"
	"github.com/kasaneapp/kasane/internal/platform/realm"
	requestutil "github.com/kasaneapp/kasane/internal/platform/request"
	"github.com/kasaneapp/kasane/internal/platform/respond"
	"github.com/kasaneapp/kasane/internal/platform/sec"
	"github.com/kasaneapp/kasane/pkg/pagination"
	"github.com/kasaneapp/kasane/pkg/useragent"
)

// # Handler Implementation

// Handler implements the HTTP layer for the book catalog.
type Handler struct {
	service    *Service
	classifier *realm.Classifier
}

// NewHandler constructs a new book [Handler].
func NewHandler(service *Service, classifier *realm.Classifier) *Handler {
	return &Handler{service: service, classifier: classifier}
}

// Routes returns a [chi.Router] configured with the book domain's endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public Discovery Endpoints
	router.Get("/", handler.listCatalog)
	router.Get("/{slug}", handler.getBook)
	router.Get("/{id}/tags", handler.listTags)
	router.Get("/{id}/series", handler.listSeries)
	router.Get("/{id}/collections", handler.listCollections)

	// ## Catalog Management (Admin Protected)
	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))

		admin.Post("/", handler.createBook)
		admin.Patch("/{id}", handler.updateBook)
		admin.Delete("/{id}", handler.deleteBook)

		// Attachments
		admin.Post("/{id}/tags/{tagID}", handler.attachTag)
		admin.Delete("/{id}/tags/{tagID}", handler.detachTag)
		admin.Post("/{id}/series/{serieID}", handler.attachSerie)
		admin.Delete("/{id}/series/{serieID}", handler.detachSerie)
		admin.Post("/{id}/collections/{collectionID}", handler.attachCollection)
		admin.Delete("/{id}/collections/{collectionID}", handler.detachCollection)
	})

	return router
}

// catalogPage derives the device-classified page window. Phones get the
// smaller fixed page size; everything else gets the desktop size. The
// limit parameter is never honoured on catalog surfaces.
func catalogPage(request *http.Request) pagination.Params {
	size := constants.CatalogPageSizeDesktop
	if useragent.FromRequest(request) {
		size = constants.CatalogPageSizeMobile
	}
	return pagination.FromRequestFixed(request, size)
}

// # Catalog Endpoints

/*
GET /api/v1/books.

Description: The faceted catalog listing. Facet parameters accept scalar or
list form; invalid numeric entries are dropped rather than rejected.

Request:
  - types: []string (MANGA, MANHWA, MANHUA, COMIC, NOVEL; case-insensitive)
  - genres: []int (Book must carry ALL of them)
  - tags: []int (Merged with persons; book must carry ALL of the union)
  - persons: []int
  - serie: int
  - orderBy: string (new, update, bookmarks, views, likes; "-" prefix = desc)
  - page: int

Response:
  - 200: []Book: Paginated catalog page, bookmark-enriched when signed in
*/
func (handler *Handler) listCatalog(writer http.ResponseWriter, request *http.Request) {
	params := catalogPage(request)
	filters := ParseFilters(request.URL.Query())
	order := ParseOrder(request.URL.Query().Get("orderBy"))
	isAdult := handler.classifier.IsAdult(request.Host)
	userID := requestutil.UserID(request)

	books, total, err := handler.service.ListCatalog(request.Context(), filters, order, isAdult, userID, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, books, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
GET /api/v1/books/{slug}.

Response:
  - 200: Book: The published book, bookmark-enriched when signed in
  - 404: The slug is unknown, a draft, or belongs to the other realm
*/
func (handler *Handler) getBook(writer http.ResponseWriter, request *http.Request) {
	slugValue := requestutil.Param(request, "slug")
	isAdult := handler.classifier.IsAdult(request.Host)
	userID := requestutil.UserID(request)

	found, err := handler.service.GetBook(request.Context(), slugValue, isAdult, userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, found)
}

/*
SearchBooks handles GET /api/v1/search.

Request:
  - query: string (Required substring; matched on both titles)
  - page: int

Response:
  - 200: []Book: Matches ordered by title ascending
*/
func (handler *Handler) SearchBooks(writer http.ResponseWriter, request *http.Request) {
	params := catalogPage(request)
	term := request.URL.Query().Get("query")
	isAdult := handler.classifier.IsAdult(request.Host)

	books, total, err := handler.service.SearchBooks(request.Context(), term, isAdult, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, books, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
ListUpdates handles GET /api/v1/updates.

Response:
  - 200: []Book: Realm feed ordered by latest content upload
*/
func (handler *Handler) ListUpdates(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequestFixed(request, constants.UpdatesPageSize)
	isAdult := handler.classifier.IsAdult(request.Host)

	books, total, err := handler.service.ListUpdates(request.Context(), isAdult, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, books, pagination.NewMeta(params.Page, params.Limit, total))
}

// # Sub-resource Endpoints

// GET /api/v1/books/{id}/tags.
func (handler *Handler) listTags(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	tags, err := handler.service.ListBookTags(request.Context(), bookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, tags)
}

// GET /api/v1/books/{id}/series.
func (handler *Handler) listSeries(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	series, err := handler.service.ListBookSeries(request.Context(), bookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, series)
}

// GET /api/v1/books/{id}/collections.
func (handler *Handler) listCollections(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	collections, err := handler.service.ListBookCollections(request.Context(), bookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, collections)
}

// # Management Endpoints

// createBookRequest is the payload for book creation and updates.
type createBookRequest struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	TitleEn     string `json:"title_en"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	IsAdult     bool   `json:"is_adult"`
	Description string `json:"description"`
	CoverURL    string `json:"cover_url"`
}

/*
POST /api/v1/books. (Admin)

Response:
  - 201: Book: The created record with its generated ID and slug
  - 409: A book with the same slug already exists
*/
func (handler *Handler) createBook(writer http.ResponseWriter, request *http.Request) {
	var payload createBookRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created := &Book{
		Slug:        payload.Slug,
		Title:       payload.Title,
		TitleEn:     payload.TitleEn,
		Type:        Type(payload.Type),
		Status:      Status(payload.Status),
		IsAdult:     payload.IsAdult,
		Description: payload.Description,
		CoverURL:    payload.CoverURL,
	}

	if err := handler.service.CreateBook(request.Context(), created); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

// PATCH /api/v1/books/{id}. (Admin)
func (handler *Handler) updateBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload createBookRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated := &Book{
		ID:          bookID,
		Slug:        payload.Slug,
		Title:       payload.Title,
		TitleEn:     payload.TitleEn,
		Type:        Type(payload.Type),
		Status:      Status(payload.Status),
		Description: payload.Description,
		CoverURL:    payload.CoverURL,
	}

	if err := handler.service.UpdateBook(request.Context(), updated); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// DELETE /api/v1/books/{id}. (Admin)
func (handler *Handler) deleteBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteBook(request.Context(), bookID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// # Attachment Endpoints (Admin)

// attachmentIDs parses the book ID and the named companion ID from the URL.
func attachmentIDs(request *http.Request, paramName string) (int64, int64, error) {
	bookID, err := requestutil.IntParam(request, "id")
	if err != nil {
		return 0, 0, err
	}

	valueID, err := requestutil.IntParam(request, paramName)
	if err != nil {
		return 0, 0, err
	}

	return bookID, valueID, nil
}

// POST /api/v1/books/{id}/tags/{tagID}.
func (handler *Handler) attachTag(writer http.ResponseWriter, request *http.Request) {
	bookID, tagID, err := attachmentIDs(request, "tagID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AttachTag(request.Context(), bookID, tagID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// DELETE /api/v1/books/{id}/tags/{tagID}.
func (handler *Handler) detachTag(writer http.ResponseWriter, request *http.Request) {
	bookID, tagID, err := attachmentIDs(request, "tagID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DetachTag(request.Context(), bookID, tagID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// POST /api/v1/books/{id}/series/{serieID}.
func (handler *Handler) attachSerie(writer http.ResponseWriter, request *http.Request) {
	bookID, serieID, err := attachmentIDs(request, "serieID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AttachSerie(request.Context(), serieID, bookID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// DELETE /api/v1/books/{id}/series/{serieID}.
func (handler *Handler) detachSerie(writer http.ResponseWriter, request *http.Request) {
	bookID, serieID, err := attachmentIDs(request, "serieID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DetachSerie(request.Context(), serieID, bookID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// POST /api/v1/books/{id}/collections/{collectionID}.
func (handler *Handler) attachCollection(writer http.ResponseWriter, request *http.Request) {
	bookID, collectionID, err := attachmentIDs(request, "collectionID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AttachCollection(request.Context(), collectionID, bookID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// DELETE /api/v1/books/{id}/collections/{collectionID}.
func (handler *Handler) detachCollection(writer http.ResponseWriter, request *http.Request) {
	bookID, collectionID, err := attachmentIDs(request, "collectionID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DetachCollection(request.Context(), collectionID, bookID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
