// Copyright (c) 2026 Kasane. All rights reserved.

/*
Package realm classifies requests into content domains.

The platform serves two segregated catalogs from one backend: the standard
domain and the restricted (adult) domain. Which catalog a request sees is
derived deterministically from the Host header — never from user input — so
a standard-domain request can never be steered into restricted content by a
query parameter.
*/
package realm

import (
	"net"
	"strings"
)

// Classifier resolves a request Host to a content domain.
//
// It is constructed once at startup from configuration and injected into
// handlers, mirroring how other cross-cutting policies are wired.
type Classifier struct {
	adultHosts map[string]struct{}
}

// NewClassifier builds a [Classifier] from the configured restricted hostnames.
//
// Entries are compared case-insensitively and without port numbers.
func NewClassifier(adultHosts []string) *Classifier {
	hosts := make(map[string]struct{}, len(adultHosts))
	for _, h := range adultHosts {
		clean := strings.ToLower(strings.TrimSpace(h))
		if clean != "" {
			hosts[clean] = struct{}{}
		}
	}

	return &Classifier{adultHosts: hosts}
}

// IsAdult reports whether the given request Host belongs to the restricted domain.
func (c *Classifier) IsAdult(host string) bool {
	if host == "" {
		return false
	}

	// Strip the port if present; Host headers may carry one.
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}

	_, ok := c.adultHosts[strings.ToLower(host)]
	return ok
}
