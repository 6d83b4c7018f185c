// Copyright (c) 2026 Kasane. All rights reserved.

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasaneapp/kasane/internal/platform/apperr"
	"github.com/kasaneapp/kasane/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "Kasane", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)
			assert.Equal(t, tt.hasError, v.HasErrors())
		})
	}
}

/*
TestValidator_OneOf tests enumerated value validation.
*/
func TestValidator_OneOf(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		allowed  []string
		hasError bool
	}{
		{"allowed_value", "MANGA", []string{"MANGA", "MANHWA"}, false},
		{"disallowed_value", "NOVEL", []string{"MANGA", "MANHWA"}, true},
		{"empty_value", "", []string{"MANGA"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.OneOf("type", tt.value, tt.allowed...)
			assert.Equal(t, tt.hasError, v.HasErrors())
		})
	}
}

/*
TestValidator_Positive tests identifier validation.
*/
func TestValidator_Positive(t *testing.T) {
	v := &validate.Validator{}
	v.Positive("bookId", 0).Positive("chapterId", 12)

	err := v.Err()
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	require.Len(t, appError.Details, 1)
	assert.Equal(t, "bookId", appError.Details[0].Field)
}

/*
TestValidator_Err verifies that a clean chain returns nil.
*/
func TestValidator_Err(t *testing.T) {
	v := &validate.Validator{}
	v.Required("name", "Solo Act").MaxLen("name", "Solo Act", 100)

	assert.NoError(t, v.Err())
	assert.False(t, v.HasErrors())
}

/*
TestValidator_CollectsMultiple verifies that failures accumulate across the chain.
*/
func TestValidator_CollectsMultiple(t *testing.T) {
	v := &validate.Validator{}
	v.Required("name", "").Email("email", "not-an-email").Slug("slug", "Bad Slug")

	err := v.Err()
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Len(t, appError.Details, 3)
}
