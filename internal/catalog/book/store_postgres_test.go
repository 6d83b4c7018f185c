// Copyright (c) 2026 Kasane. All rights reserved.

package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestBuildCatalogQuery_UnconditionalPredicates verifies that every listing
query excludes drafts and pins the caller's realm, and that an unrestricted
query carries no facet clause.
*/
func TestBuildCatalogQuery_UnconditionalPredicates(t *testing.T) {
	query, args := buildCatalogQuery(CatalogQuery{IsAdult: true, Order: DefaultOrder}, 30, 0)

	assert.Contains(t, query, "WHERE b.status <> 'DRAFT'")
	assert.Contains(t, query, "AND b.isadult = $1")
	assert.NotContains(t, query, "b.id = ANY")
	assert.Equal(t, []any{true, 30, 0}, args)
}

/*
TestBuildCatalogQuery_RestrictionAndFilters verifies the conditional clauses
and their bind-argument numbering when every filter is present.
*/
func TestBuildCatalogQuery_RestrictionAndFilters(t *testing.T) {
	catalogQuery := CatalogQuery{
		Filters:     Filters{Types: []Type{TypeManga, TypeManhwa}, SerieID: 9},
		Order:       Order{Key: OrderViews, Desc: true},
		Restriction: Restrict([]int64{2, 3}),
		IsAdult:     false,
	}

	query, args := buildCatalogQuery(catalogQuery, 60, 120)

	assert.Contains(t, query, "WHERE b.status <> 'DRAFT'")
	assert.Contains(t, query, "AND b.isadult = $1")
	assert.Contains(t, query, "AND b.id = ANY($2)")
	assert.Contains(t, query, "AND b.type = ANY($3)")
	assert.Contains(t, query, "sb.serieid = $4")
	assert.Contains(t, query, "ORDER BY COALESCE(s.countviews, 0) DESC, b.id DESC")
	assert.Contains(t, query, "LIMIT $5 OFFSET $6")

	require.Len(t, args, 6)
	assert.Equal(t, false, args[0])
	assert.Equal(t, []int64{2, 3}, args[1])
	assert.Equal(t, []string{"MANGA", "MANHWA"}, args[2])
	assert.Equal(t, int64(9), args[3])
	assert.Equal(t, 60, args[4])
	assert.Equal(t, 120, args[5])
}

/*
TestBuildCatalogQuery_EmptyRestrictionStillBinds verifies that a limited
restriction with no IDs keeps its clause: ANY over an empty array matches
nothing, which is the zero-results contract.
*/
func TestBuildCatalogQuery_EmptyRestrictionStillBinds(t *testing.T) {
	catalogQuery := CatalogQuery{Restriction: Restrict(nil), Order: DefaultOrder}

	query, args := buildCatalogQuery(catalogQuery, 30, 0)

	assert.Contains(t, query, "AND b.id = ANY($2)")
	require.Len(t, args, 4)
	assert.Equal(t, []int64{}, args[1])
}
