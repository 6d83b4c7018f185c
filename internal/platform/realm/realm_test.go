// Copyright (c) 2026 Kasane. All rights reserved.

package realm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kasaneapp/kasane/internal/platform/realm"
)

/*
TestClassifier_IsAdult verifies host-based content domain segregation.
*/
func TestClassifier_IsAdult(t *testing.T) {
	classifier := realm.NewClassifier([]string{"adult.kasane.app", " Mirror.Example.Com "})

	tests := []struct {
		name  string
		host  string
		adult bool
	}{
		{"standard_host", "kasane.app", false},
		{"adult_host", "adult.kasane.app", true},
		{"adult_host_with_port", "adult.kasane.app:443", true},
		{"case_insensitive", "ADULT.KASANE.APP", true},
		{"trimmed_config_entry", "mirror.example.com", true},
		{"empty_host", "", false},
		{"unknown_host", "evil.example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.adult, classifier.IsAdult(tt.host))
		})
	}
}

/*
TestClassifier_Empty verifies that an unconfigured classifier treats every host as standard.
*/
func TestClassifier_Empty(t *testing.T) {
	classifier := realm.NewClassifier(nil)

	assert.False(t, classifier.IsAdult("kasane.app"))
	assert.False(t, classifier.IsAdult("adult.kasane.app"))
}
