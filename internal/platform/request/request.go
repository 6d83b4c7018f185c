// Copyright (c) 2026 Kasane. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kasaneapp/kasane/internal/platform/apperr"
	"github.com/kasaneapp/kasane/internal/platform/ctxutil"
	"github.com/kasaneapp/kasane/internal/platform/sec"
	"github.com/kasaneapp/kasane/internal/platform/validate"
)

// DecodeJSON reads the request body and decodes it into the target structure.
//
// It returns validate.ErrInvalidJSON if decoding fails.
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

// Param retrieves a named URL parameter from the request.
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

// IntParam retrieves a named URL parameter and parses it as an int64 identifier.
//
// It returns a VALIDATION_ERROR if the value is missing or not a positive integer.
func IntParam(request *http.Request, name string) (int64, error) {
	raw := chi.URLParam(request, name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, validate.RequiredError(name, "Must be a positive identifier")
	}

	return id, nil
}

// Claims extracts the authenticated user claims from the request context.
//
// Returns nil if the request is not authenticated.
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetAuthUser(request.Context())
}

// UserID returns the caller's user ID, or zero for anonymous requests.
func UserID(request *http.Request) int64 {
	return ctxutil.UserID(request.Context())
}

// RequiredUserID ensures the request is authenticated and returns the user ID.
//
// Returns apperr.Unauthorized if the request is anonymous.
func RequiredUserID(request *http.Request) (int64, error) {
	userID := ctxutil.UserID(request.Context())
	if userID == 0 {
		return 0, apperr.Unauthorized("Authentication required")
	}

	return userID, nil
}
