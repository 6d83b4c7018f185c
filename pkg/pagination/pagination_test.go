// Copyright (c) 2026 Kasane. All rights reserved.

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kasaneapp/kasane/pkg/pagination"
)

/*
TestParams_Offset verifies the (page-1)*limit window arithmetic.
*/
func TestParams_Offset(t *testing.T) {
	tests := []struct {
		name   string
		page   int
		limit  int
		offset int
	}{
		{"first_page", 1, 30, 0},
		{"second_page", 2, 30, 30},
		{"deep_page", 5, 60, 240},
		{"zero_page_clamps", 0, 30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pagination.Params{Page: tt.page, Limit: tt.limit}
			assert.Equal(t, tt.offset, p.Offset())
		})
	}
}

/*
TestFromRequestFixed verifies that the limit is pinned and page parsing is tolerant.
*/
func TestFromRequestFixed(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		limit    int
		wantPage int
	}{
		{"default_page", "/books", 30, 1},
		{"explicit_page", "/books?page=3", 30, 3},
		{"negative_page", "/books?page=-2", 30, 1},
		{"garbage_page", "/books?page=abc", 30, 1},
		{"limit_param_ignored", "/books?page=2&limit=999", 60, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)
			p := pagination.FromRequestFixed(r, tt.limit)

			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.limit, p.Limit)
		})
	}
}

/*
TestNewMeta verifies total-page rounding.
*/
func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(1, 30, 61)

	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 61, meta.Total)
}
