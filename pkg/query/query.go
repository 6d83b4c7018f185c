// Copyright (c) 2026 Kasane. All rights reserved.

/*
Package query parses URL query parameter values into domain-friendly types.

Catalog filter parameters accept both repeated keys (?genre=1&genre=2) and
comma-separated lists (?genre=1,2), so every helper here normalizes both
shapes. Malformed entries are dropped rather than rejected: a filter link
with one bad ID should still apply its valid parts.
*/
package query

import (
	"strconv"
	"strings"
)

// Int64Slice parses query parameter values into a slice of int64 identifiers.
//
// Each value may itself be a comma-separated list. Entries that are not
// valid positive integers are ignored.
func Int64Slice(vals []string) []int64 {
	var res []int64
	for _, val := range vals {
		for _, part := range strings.Split(val, ",") {
			clean := strings.TrimSpace(part)
			if clean == "" {
				continue
			}
			if id, err := strconv.ParseInt(clean, 10, 64); err == nil && id > 0 {
				res = append(res, id)
			}
		}
	}
	return res
}

// Int64 parses a single query parameter as an int64 identifier.
// It returns 0 if the value is empty or malformed.
func Int64(val string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// StringSlice parses query parameter values into a trimmed slice of strings,
// expanding comma-separated entries.
func StringSlice(vals []string) []string {
	var res []string
	for _, val := range vals {
		for _, part := range strings.Split(val, ",") {
			clean := strings.TrimSpace(part)
			if clean != "" {
				res = append(res, clean)
			}
		}
	}
	return res
}
