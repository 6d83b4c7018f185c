// Copyright (c) 2026 Kasane. All rights reserved.

package book

import "strings"

// # Sort Resolution

// OrderKey identifies a catalog sort column. The set is closed: the store
// maps each key to a vetted column expression, so user input can never
// reach the ORDER BY clause as raw text.
type OrderKey string

const (
	// OrderNew sorts by catalog arrival (createdat).
	OrderNew OrderKey = "new"

	// OrderUpdate sorts by latest content upload (newuploadat).
	OrderUpdate OrderKey = "update"

	// OrderBookmarks sorts by the bookmark counter.
	OrderBookmarks OrderKey = "bookmarks"

	// OrderViews sorts by the view counter.
	OrderViews OrderKey = "views"

	// OrderLikes sorts by the like counter.
	OrderLikes OrderKey = "likes"
)

// IsValid reports whether k is a recognised [OrderKey] value.
func (k OrderKey) IsValid() bool {
	switch k {
	case
		OrderNew,
		OrderUpdate,
		OrderBookmarks,
		OrderViews,
		OrderLikes:
		return true
	}
	return false
}

// IsStat reports whether the key orders by an interaction counter, which
// requires joining the stat table.
func (k OrderKey) IsStat() bool {
	switch k {
	case OrderBookmarks, OrderViews, OrderLikes:
		return true
	}
	return false
}

// Order is the resolved sort instruction for a catalog page.
type Order struct {
	Key  OrderKey `json:"key"`
	Desc bool     `json:"desc"`
}

// DefaultOrder is applied when the sort parameter is absent or unknown:
// newest arrivals first.
var DefaultOrder = Order{Key: OrderNew, Desc: true}

/*
ParseOrder resolves a raw sort parameter into an [Order].

Description: A leading "-" selects descending direction; a bare key sorts
ascending. Unknown or empty keys fall back to [DefaultOrder] rather than
erroring, so stale links keep working when sort keys are renamed.

Parameters:
  - raw: string (e.g. "-views", "new", "")

Returns:
  - Order: The resolved key and direction
*/
func ParseOrder(raw string) Order {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultOrder
	}

	desc := false
	if strings.HasPrefix(raw, "-") {
		desc = true
		raw = raw[1:]
	}

	key := OrderKey(raw)
	if !key.IsValid() {
		return DefaultOrder
	}

	return Order{Key: key, Desc: desc}
}
