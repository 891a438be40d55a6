// Copyright 2025 The StoreLocator Authors
// SPDX-License-Identifier: Apache-2.0

// Package textutils cleans up free text submitted through admin forms.
package textutils

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripTags removes every HTML tag from s and keeps the text content. The
// content of script and style elements is dropped as well. Entities are left
// encoded and a "<" that does not open a tag becomes "&lt;", so the result
// never contains markup and stripping it again changes nothing.
func StripTags(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}

	var sb strings.Builder

	z := html.NewTokenizer(strings.NewReader(s))
	skip := 0

	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF is the only error a strings.Reader can produce
			return sb.String()
		case html.StartTagToken:
			if a := tagAtom(z); a == atom.Script || a == atom.Style {
				skip++
			}
		case html.EndTagToken:
			if a := tagAtom(z); (a == atom.Script || a == atom.Style) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				sb.WriteString(strings.ReplaceAll(string(z.Raw()), "<", "&lt;"))
			}
		}
	}
}

func tagAtom(z *html.Tokenizer) atom.Atom {
	name, _ := z.TagName()

	return atom.Lookup(name)
}

// SanitizeText normalizes a single line of user input: tags are removed,
// invalid UTF-8 and control characters dropped, whitespace runs collapsed
// into one space and the result trimmed and NFC normalized.
func SanitizeText(s string) string {
	s = strings.ToValidUTF8(s, "")
	s = StripTags(s)
	s = strings.Join(strings.Fields(s), " ")

	s, _, _ = transform.String(
		transform.Chain(
			norm.NFC,
			runes.Remove(runes.In(unicode.Cc)),
		),
		s,
	)

	return s
}

// IsBlank reports whether s is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
