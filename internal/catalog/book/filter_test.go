// Copyright (c) 2026 Kasane. All rights reserved.

package book

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestParseFilters verifies facet normalisation: scalar-or-list acceptance,
case-insensitive type validation, and silent dropping of invalid entries.
*/
func TestParseFilters(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Filters
	}{
		{
			name:  "repeated_params",
			query: "genres=3&genres=5",
			want:  Filters{GenreIDs: []int64{3, 5}},
		},
		{
			name:  "comma_separated",
			query: "genres=3,5&tags=7,9",
			want:  Filters{GenreIDs: []int64{3, 5}, TagIDs: []int64{7, 9}},
		},
		{
			name:  "scalar_value",
			query: "genres=3",
			want:  Filters{GenreIDs: []int64{3}},
		},
		{
			name:  "types_upper_cased",
			query: "types=manga,manhwa",
			want:  Filters{Types: []Type{TypeManga, TypeManhwa}},
		},
		{
			name:  "unknown_type_dropped",
			query: "types=MANGA,doujin",
			want:  Filters{Types: []Type{TypeManga}},
		},
		{
			name:  "invalid_numeric_dropped",
			query: "genres=3,abc,5&persons=-1,12",
			want:  Filters{GenreIDs: []int64{3, 5}, PersonIDs: []int64{12}},
		},
		{
			name:  "all_invalid_means_not_requested",
			query: "genres=abc,xyz",
			want:  Filters{},
		},
		{
			name:  "serie_scalar_first_valid_wins",
			query: "serie=junk&serie=4&serie=9",
			want:  Filters{SerieID: 4},
		},
		{
			name:  "duplicates_removed",
			query: "tags=7,7,9",
			want:  Filters{TagIDs: []int64{7, 9}},
		},
		{
			name:  "empty_query",
			query: "",
			want:  Filters{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)

			assert.Equal(t, tt.want, ParseFilters(values))
		})
	}
}

/*
TestFilters_MergedTagIDs verifies that tags and persons merge into one
deduplicated value set.
*/
func TestFilters_MergedTagIDs(t *testing.T) {
	tests := []struct {
		name    string
		filters Filters
		want    []int64
	}{
		{"tags_only", Filters{TagIDs: []int64{7, 9}}, []int64{7, 9}},
		{"persons_only", Filters{PersonIDs: []int64{12}}, []int64{12}},
		{"merged", Filters{TagIDs: []int64{7}, PersonIDs: []int64{12}}, []int64{7, 12}},
		{"overlap_counted_once", Filters{TagIDs: []int64{7, 9}, PersonIDs: []int64{9}}, []int64{7, 9}},
		{"neither_requested", Filters{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filters.MergedTagIDs())
		})
	}
}

func TestFilters_FacetPresence(t *testing.T) {
	assert.False(t, Filters{}.HasGenreFacet())
	assert.False(t, Filters{}.HasTagFacet())
	assert.True(t, Filters{GenreIDs: []int64{1}}.HasGenreFacet())
	assert.True(t, Filters{TagIDs: []int64{1}}.HasTagFacet())
	assert.True(t, Filters{PersonIDs: []int64{1}}.HasTagFacet())
}
