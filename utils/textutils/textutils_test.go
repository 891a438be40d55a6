// Copyright 2025 The StoreLocator Authors
// SPDX-License-Identifier: Apache-2.0

package textutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text", input: "blue.png", want: "blue.png"},
		{name: "bold", input: "<b>Main</b> Street", want: "Main Street"},
		{name: "script dropped", input: "en<script>alert(1)</script>", want: "en"},
		{name: "style dropped", input: "<style>p{}</style>nl", want: "nl"},
		{name: "entity kept", input: "Fish &amp; Chips", want: "Fish &amp; Chips"},
		{name: "bare ampersand kept", input: "<b>Fish</b> & Chips", want: "Fish & Chips"},
		{name: "encoded tag stays encoded", input: "&lt;script&gt;alert(1)&lt;/script&gt;x", want: "&lt;script&gt;alert(1)&lt;/script&gt;x"},
		{name: "lone less-than escaped", input: "<i>a</i> < b", want: "a &lt; b"},
		{name: "split tag not rebuilt", input: "<<b>b>x", want: "&lt;b>x"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripTags(tt.input))
		})
	}
}

func TestStripTagsIsStable(t *testing.T) {
	for _, input := range []string{
		"&lt;b&gt;",
		"&amp;lt;script&amp;gt;",
		"<<b>b>x",
		"a < b > c",
		"<p>Fish &amp; Chips</p><script>x</script>",
	} {
		once := StripTags(input)
		assert.Equal(t, once, StripTags(once), "StripTags(%q)", input)
		assert.Equal(t, once, SanitizeText(SanitizeText(once)), "SanitizeText(%q)", input)
		assert.NotContains(t, once, "<", input)
	}
}

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trimmed", input: "  25  ", want: "25"},
		{name: "newlines collapsed", input: "Search\n\tradius", want: "Search radius"},
		{name: "tags removed", input: "<i>Directions</i>", want: "Directions"},
		{name: "invalid utf8 dropped", input: "Caf\xffe", want: "Cafe"},
		{name: "nfc", input: "Café", want: "Café"},
		{name: "control characters", input: "Ho\x00urs", want: "Hours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeText(tt.input))
		})
	}
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank(" \t\n"))
	assert.False(t, IsBlank(" a "))
}
