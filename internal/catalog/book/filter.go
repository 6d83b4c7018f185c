// Copyright (c) 2026 Kasane. All rights reserved.

package book

import (
	"net/url"
	"strings"

	"github.com/kasaneapp/kasane/pkg/query"
	"github.com/kasaneapp/kasane/pkg/slice"
)

// # Facet Normalisation

// Filters holds the normalised facet values for a catalog listing request.
//
// A nil slice means the facet was not requested. Facets whose raw values
// were all invalid normalise to "not requested" as well: a broken filter
// link degrades to a broader listing instead of failing the request.
type Filters struct {
	Types     []Type  `json:"types,omitempty"`
	GenreIDs  []int64 `json:"genres,omitempty"`
	TagIDs    []int64 `json:"tags,omitempty"`
	PersonIDs []int64 `json:"persons,omitempty"`
	SerieID   int64   `json:"serie,omitempty"`
}

/*
ParseFilters normalises raw query parameters into a [Filters] value.

Description: Every facet accepts both repeated keys and comma-separated
lists. Type values are upper-cased before validation so "manga" and "MANGA"
are equivalent; unrecognised types are dropped. Numeric facets drop entries
that are not positive integers. The serie facet is a scalar; when repeated,
the first valid value wins.

Parameters:
  - values: url.Values (raw request query)

Returns:
  - Filters: Normalised facet values, deduplicated per facet
*/
func ParseFilters(values url.Values) Filters {
	filters := Filters{
		GenreIDs:  slice.Unique(query.Int64Slice(values["genres"])),
		TagIDs:    slice.Unique(query.Int64Slice(values["tags"])),
		PersonIDs: slice.Unique(query.Int64Slice(values["persons"])),
	}

	// Types: case-insensitive, validated against the closed enum.
	for _, raw := range query.StringSlice(values["types"]) {
		candidate := Type(strings.ToUpper(raw))
		if candidate.IsValid() {
			filters.Types = append(filters.Types, candidate)
		}
	}
	filters.Types = slice.Unique(filters.Types)

	// Serie: scalar; first valid value wins.
	for _, raw := range values["serie"] {
		if id := query.Int64(raw); id > 0 {
			filters.SerieID = id
			break
		}
	}

	return filters
}

// HasGenreFacet reports whether the genre facet carries any values.
func (f Filters) HasGenreFacet() bool {
	return len(f.GenreIDs) > 0
}

// HasTagFacet reports whether the merged tag facet carries any values.
func (f Filters) HasTagFacet() bool {
	return len(f.TagIDs) > 0 || len(f.PersonIDs) > 0
}

// MergedTagIDs returns the union of the tag and person facets.
//
// Tags and persons live in the same membership table (a person is a tag
// with type PERSON), so they resolve as one facet with the combined value
// set. The union is deduplicated; an ID requested under both keys counts
// once toward the membership cardinality test.
func (f Filters) MergedTagIDs() []int64 {
	if !f.HasTagFacet() {
		return nil
	}

	merged := make([]int64, 0, len(f.TagIDs)+len(f.PersonIDs))
	merged = append(merged, f.TagIDs...)
	merged = append(merged, f.PersonIDs...)

	return slice.Unique(merged)
}
