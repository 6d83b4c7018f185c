// Copyright (c) 2026 Kasane. All rights reserved.

/*
Package reference serves the catalog's classification vocabulary.

Genres, tags, persons, series, and collections are small, slowly changing
tables that the reading surfaces consume as filter vocabularies. Persons
are not a table of their own: a person credit is a tag with type PERSON
sharing the tag namespace and the booktag junction.
*/
package reference

// # Tag Roles

// TagType separates free-form subject tags from person credits.
type TagType string

const (
	TagGeneral TagType = "GENERAL"
	TagPerson  TagType = "PERSON"
)

// IsValid reports whether the tag type is one of the two roles.
func (t TagType) IsValid() bool {
	return t == TagGeneral || t == TagPerson
}

// # Entities

// Genre is one row of the genre vocabulary.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Tag is one subject tag or person credit.
type Tag struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Type    TagType `json:"type"`
	SerieID *int64  `json:"serie_id,omitempty"`
}

// Serie groups related books under one franchise name.
type Serie struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Collection is a curated, optionally nested grouping of books.
type Collection struct {
	ID                 int64  `json:"id"`
	Slug               string `json:"slug"`
	Name               string `json:"name"`
	ParentCollectionID *int64 `json:"parent_collection_id,omitempty"`
}

// # Aggregate Groups

// Group names accepted by the combined entities endpoint.
const (
	GroupGenres      = "genres"
	GroupTags        = "tags"
	GroupPersons     = "persons"
	GroupSeries      = "series"
	GroupCollections = "collections"
)

// Entities carries the groups requested from the combined endpoint.
// Unrequested groups stay nil and are omitted from the response body.
type Entities struct {
	Genres      []*Genre      `json:"genres,omitempty"`
	Tags        []*Tag        `json:"tags,omitempty"`
	Persons     []*Tag        `json:"persons,omitempty"`
	Series      []*Serie      `json:"series,omitempty"`
	Collections []*Collection `json:"collections,omitempty"`
}

// # Validation Field Identifiers

const (
	FieldName     = "name"
	FieldType     = "type"
	FieldSerieID  = "serie_id"
	FieldEntities = "entities"
)
