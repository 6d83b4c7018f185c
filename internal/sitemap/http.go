// Copyright (c) 2026 Kasane. All rights reserved.

package sitemap

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kasaneapp/kasane/internal/platform/realm"
	requestutil "github.com/kasaneapp/kasane/internal/platform/request"
	"github.com/kasaneapp/kasane/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for the crawl documents.
type Handler struct {
	service    *Service
	classifier *realm.Classifier
}

// NewHandler constructs a new sitemap [Handler].
func NewHandler(service *Service, classifier *realm.Classifier) *Handler {
	return &Handler{service: service, classifier: classifier}
}

// Register mounts the crawl endpoints onto the given router. These live
// outside the versioned API tree: crawlers expect them at the site root.
func (handler *Handler) Register(router chi.Router) {
	router.Get("/sitemap/index.xml", handler.index)
	router.Get("/sitemap/{id:[0-9]+}.xml", handler.book)
	router.Get("/robots.txt", handler.robots)
}

/*
GET /sitemap/index.xml.

Response:
  - 200: XML sitemapindex of the caller's realm
*/
func (handler *Handler) index(writer http.ResponseWriter, request *http.Request) {
	isAdult := handler.classifier.IsAdult(request.Host)

	body, err := handler.service.Index(request.Context(), isAdult)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.XML(writer, body)
}

/*
GET /sitemap/{id}.xml.

Response:
  - 200: XML urlset of the book's ACTIVE chapters
  - 404: The book is absent, a draft, or belongs to the other realm
*/
func (handler *Handler) book(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	isAdult := handler.classifier.IsAdult(request.Host)

	body, err := handler.service.Book(request.Context(), bookID, isAdult)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.XML(writer, body)
}

/*
GET /robots.txt.

Response:
  - 200: Plain-text crawl policy advertising the realm's sitemap index
*/
func (handler *Handler) robots(writer http.ResponseWriter, request *http.Request) {
	isAdult := handler.classifier.IsAdult(request.Host)
	respond.Text(writer, handler.service.Robots(isAdult))
}
