// Copyright (c) 2026 Kasane. All rights reserved.

package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestParseOrder verifies sort-key resolution: "-" prefix direction, bare-key
ascending, and the default fallback on unknown input.
*/
func TestParseOrder(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Order
	}{
		{"descending_prefix", "-views", Order{Key: OrderViews, Desc: true}},
		{"bare_key_ascending", "views", Order{Key: OrderViews, Desc: false}},
		{"new_descending", "-new", Order{Key: OrderNew, Desc: true}},
		{"update_ascending", "update", Order{Key: OrderUpdate, Desc: false}},
		{"bookmarks", "-bookmarks", Order{Key: OrderBookmarks, Desc: true}},
		{"likes", "likes", Order{Key: OrderLikes, Desc: false}},
		{"unknown_key_falls_back", "rating", DefaultOrder},
		{"unknown_with_prefix_falls_back", "-rating", DefaultOrder},
		{"empty_falls_back", "", DefaultOrder},
		{"bare_dash_falls_back", "-", DefaultOrder},
		{"whitespace_falls_back", "   ", DefaultOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOrder(tt.raw))
		})
	}
}

func TestDefaultOrder(t *testing.T) {
	assert.Equal(t, Order{Key: OrderNew, Desc: true}, DefaultOrder)
}

func TestOrderKey_IsStat(t *testing.T) {
	assert.True(t, OrderBookmarks.IsStat())
	assert.True(t, OrderViews.IsStat())
	assert.True(t, OrderLikes.IsStat())
	assert.False(t, OrderNew.IsStat())
	assert.False(t, OrderUpdate.IsStat())
}

/*
TestOrderExpression verifies that every resolved order maps to a vetted
column with the id tie-break appended.
*/
func TestOrderExpression(t *testing.T) {
	tests := []struct {
		name  string
		order Order
		want  string
	}{
		{"new_desc", Order{Key: OrderNew, Desc: true}, "b.createdat DESC, b.id DESC"},
		{"update_asc", Order{Key: OrderUpdate, Desc: false}, "b.newuploadat ASC, b.id DESC"},
		{"bookmarks_desc", Order{Key: OrderBookmarks, Desc: true}, "COALESCE(s.countbookmarks, 0) DESC, b.id DESC"},
		{"views_asc", Order{Key: OrderViews, Desc: false}, "COALESCE(s.countviews, 0) ASC, b.id DESC"},
		{"likes_desc", Order{Key: OrderLikes, Desc: true}, "COALESCE(s.countlikes, 0) DESC, b.id DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orderExpression(tt.order))
		})
	}
}
