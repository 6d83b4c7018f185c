// Copyright (c) 2026 Kasane. All rights reserved.

package useragent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kasaneapp/kasane/pkg/useragent"
)

func TestIsMobile(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		mobile    bool
	}{
		{
			"iphone_safari",
			"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
			true,
		},
		{
			"android_chrome",
			"Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36",
			true,
		},
		{
			"desktop_chrome",
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			false,
		},
		{
			"desktop_firefox",
			"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
			false,
		},
		{
			"ipad_treated_as_desktop",
			"Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Safari/604.1",
			false,
		},
		{"empty_ua", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.mobile, useragent.IsMobile(tt.userAgent))
		})
	}
}
