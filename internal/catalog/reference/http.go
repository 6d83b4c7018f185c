// Copyright (c) 2026 Kasane. All rights reserved.

package reference

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kasaneapp/kasane/internal/platform/middleware"
	requestutil "github.com/kasaneapp/kasane/internal/platform/request"
	"github.com/kasaneapp/kasane/internal/platform/respond"
	"github.com/kasaneapp/kasane/internal/platform/sec"
	"github.com/kasaneapp/kasane/pkg/query"
)

// # Handler Implementation

// Handler implements the HTTP layer for the classification vocabulary.
type Handler struct {
	service *Service
}

// NewHandler constructs a new reference [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register mounts the vocabulary endpoints onto the given router. The
// vocabulary spans several top-level path segments, so it registers onto
// the API root instead of owning a single subtree.
func (handler *Handler) Register(router chi.Router) {
	// ## Public Vocabulary Listings
	router.Get("/genres", handler.listGenres)
	router.Get("/tags", handler.listTags)
	router.Get("/persons", handler.listPersons)
	router.Get("/series", handler.listSeries)
	router.Get("/collections", handler.listCollections)
	router.Get("/entities", handler.listEntities)

	// ## Vocabulary Management (Admin Protected)
	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))

		admin.Post("/genres", handler.createGenre)
		admin.Post("/tags", handler.createTag)
		admin.Post("/series", handler.createSerie)
	})
}

// # Listing Endpoints

// GET /api/v1/genres.
func (handler *Handler) listGenres(writer http.ResponseWriter, request *http.Request) {
	genres, err := handler.service.ListGenres(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, genres)
}

// GET /api/v1/tags.
func (handler *Handler) listTags(writer http.ResponseWriter, request *http.Request) {
	tags, err := handler.service.ListTags(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, tags)
}

// GET /api/v1/persons.
func (handler *Handler) listPersons(writer http.ResponseWriter, request *http.Request) {
	persons, err := handler.service.ListPersons(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, persons)
}

// GET /api/v1/series.
func (handler *Handler) listSeries(writer http.ResponseWriter, request *http.Request) {
	series, err := handler.service.ListSeries(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, series)
}

// GET /api/v1/collections.
func (handler *Handler) listCollections(writer http.ResponseWriter, request *http.Request) {
	collections, err := handler.service.ListCollections(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, collections)
}

/*
GET /api/v1/entities.

Request:
  - entities: []string (genres, tags, persons, series, collections;
    scalar or list form)

Response:
  - 200: Entities: The requested groups, each sorted by name
  - 400: No recognised group was requested
*/
func (handler *Handler) listEntities(writer http.ResponseWriter, request *http.Request) {
	groups := query.StringSlice(request.URL.Query()["entities"])

	entities, err := handler.service.ListEntities(request.Context(), groups)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entities)
}

// # Management Endpoints

// namedRequest is the payload for single-name vocabulary entries.
type namedRequest struct {
	Name string `json:"name"`
}

// createTagRequest is the payload for tag and person creation.
type createTagRequest struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	SerieID *int64 `json:"serie_id"`
}

/*
POST /api/v1/genres. (Admin)

Response:
  - 201: Genre
  - 409: The name is already taken
*/
func (handler *Handler) createGenre(writer http.ResponseWriter, request *http.Request) {
	var payload namedRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	genre := &Genre{Name: payload.Name}
	if err := handler.service.CreateGenre(request.Context(), genre); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, genre)
}

/*
POST /api/v1/tags. (Admin)

Description: Creates a subject tag or, with type PERSON, a person credit.

Response:
  - 201: Tag
  - 400: The referenced serie does not exist
  - 409: The (name, type) pair is already taken
*/
func (handler *Handler) createTag(writer http.ResponseWriter, request *http.Request) {
	var payload createTagRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	tag := &Tag{
		Name:    payload.Name,
		Type:    TagType(payload.Type),
		SerieID: payload.SerieID,
	}

	if err := handler.service.CreateTag(request.Context(), tag); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, tag)
}

/*
POST /api/v1/series. (Admin)

Response:
  - 201: Serie
  - 409: The name is already taken
*/
func (handler *Handler) createSerie(writer http.ResponseWriter, request *http.Request) {
	var payload namedRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	serie := &Serie{Name: payload.Name}
	if err := handler.service.CreateSerie(request.Context(), serie); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, serie)
}
