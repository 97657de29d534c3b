// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package textutil provides string substitution and splitting helpers.
// Splitting is always done on raw newlines or on character boundaries: no
// delimiter-aware parsing takes place.
package textutil

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Replace returns a copy of source with every non-overlapping instance of
// pattern replaced by replacement, scanning left to right. If pattern is empty,
// replacement is inserted at the beginning of source and after each UTF-8
// sequence.
func Replace(source, pattern, replacement string) string {
	return strings.ReplaceAll(source, pattern, replacement)
}

// SplitLines splits s on "\n". Every fragment is kept, so a string ending in a
// newline yields a final empty fragment and consecutive newlines yield empty
// fragments between them. SplitLines("") returns a single empty fragment.
func SplitLines(s string) []string {
	return strings.Split(s, "\n")
}

// SplitChars splits s at every code point boundary. The result always starts
// with an empty fragment, followed by one fragment per code point, which keeps
// compatibility with fixtures produced by earlier versions of this library.
// Invalid UTF-8 bytes each become their own fragment.
//
// Use SplitGraphemes for a result without the leading empty fragment.
func SplitChars(s string) []string {
	chars := make([]string, 1, 1+utf8.RuneCountInString(s))
	for len(s) > 0 {
		_, n := utf8.DecodeRuneInString(s)
		chars = append(chars, s[:n])
		s = s[n:]
	}
	return chars
}

// SplitGraphemes splits s into user-perceived characters (extended grapheme
// clusters, as defined by Unicode Standard Annex #29). A base character and
// its combining marks, or an emoji sequence joined with zero-width joiners,
// form a single fragment. SplitGraphemes("") returns an empty slice.
func SplitGraphemes(s string) []string {
	clusters := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	return clusters
}
