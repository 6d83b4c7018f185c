// Copyright (c) 2026 Kasane. All rights reserved.

// Package useragent classifies requests by client device.
//
// # Usage
//
// Catalog pages use a fixed page size per device class (phones get smaller
// pages than desktops), so listing endpoints need a cheap mobile check. This
// is a heuristic over the User-Agent header, not a full device database;
// unknown clients are treated as desktop.
package useragent

import (
	"net/http"
	"regexp"
)

// mobilePattern matches the User-Agent substrings emitted by phone browsers.
// Tablets ("iPad") are intentionally not matched; they get desktop-sized pages.
var mobilePattern = regexp.MustCompile(`(?i)(mobile|iphone|ipod|android.*mobile|windows phone|blackberry|opera mini)`)

// IsMobile reports whether the User-Agent belongs to a phone-class device.
func IsMobile(userAgent string) bool {
	if userAgent == "" {
		return false
	}
	return mobilePattern.MatchString(userAgent)
}

// FromRequest classifies the request's client device from its headers.
func FromRequest(request *http.Request) bool {
	return IsMobile(request.Header.Get("User-Agent"))
}
