// Copyright (c) 2026 Kasane. All rights reserved.

package slice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kasaneapp/kasane/pkg/slice"
)

func TestMap(t *testing.T) {
	doubled := slice.Map([]int{1, 2, 3}, func(v int) int { return v * 2 })
	assert.Equal(t, []int{2, 4, 6}, doubled)

	assert.Nil(t, slice.Map(nil, func(v int) int { return v }))
}

func TestFilter(t *testing.T) {
	evens := slice.Filter([]int{1, 2, 3, 4}, func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{2, 4}, evens)
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name string
		a    []int64
		b    []int64
		want []int64
	}{
		{"common_elements", []int64{1, 2, 3, 4}, []int64{2, 4, 6}, []int64{2, 4}},
		{"preserves_a_order", []int64{4, 2, 1}, []int64{1, 2, 4}, []int64{4, 2, 1}},
		{"disjoint", []int64{1, 2}, []int64{3, 4}, []int64{}},
		{"empty_b_yields_empty", []int64{1, 2}, []int64{}, []int64{}},
		{"nil_a_yields_nil", nil, []int64{1}, nil},
		{"duplicates_emitted_once", []int64{2, 2, 3}, []int64{2, 3}, []int64{2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slice.Intersect(tt.a, tt.b))
		})
	}
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []int64{3, 5, 7}, slice.Unique([]int64{3, 5, 3, 7, 5}))
	assert.Nil(t, slice.Unique[int64](nil))
}

func TestReduce(t *testing.T) {
	sum := slice.Reduce([]int{1, 2, 3}, 0, func(acc int, v int) int { return acc + v })
	assert.Equal(t, 6, sum)
}
