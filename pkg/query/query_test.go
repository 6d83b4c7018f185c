// Copyright (c) 2026 Kasane. All rights reserved.

package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kasaneapp/kasane/pkg/query"
)

func TestInt64Slice(t *testing.T) {
	tests := []struct {
		name string
		vals []string
		want []int64
	}{
		{"repeated_params", []string{"3", "5"}, []int64{3, 5}},
		{"comma_separated", []string{"3,5"}, []int64{3, 5}},
		{"mixed_shapes", []string{"3,5", "7"}, []int64{3, 5, 7}},
		{"drops_invalid", []string{"3", "abc", "5"}, []int64{3, 5}},
		{"drops_negative_and_zero", []string{"-1", "0", "9"}, []int64{9}},
		{"whitespace_tolerant", []string{" 3 , 5 "}, []int64{3, 5}},
		{"empty_input", nil, nil},
		{"all_invalid", []string{"x", ""}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, query.Int64Slice(tt.vals))
		})
	}
}

func TestInt64(t *testing.T) {
	assert.Equal(t, int64(42), query.Int64("42"))
	assert.Equal(t, int64(0), query.Int64("abc"))
	assert.Equal(t, int64(0), query.Int64("-3"))
	assert.Equal(t, int64(0), query.Int64(""))
}

func TestStringSlice(t *testing.T) {
	assert.Equal(t, []string{"MANGA", "MANHWA"}, query.StringSlice([]string{"MANGA,MANHWA"}))
	assert.Equal(t, []string{"MANGA", "MANHWA"}, query.StringSlice([]string{"MANGA", " MANHWA "}))
	assert.Nil(t, query.StringSlice([]string{""}))
}
