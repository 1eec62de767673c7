// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"strings"
	"unicode/utf8"
)

// ExtractContext returns the windows of text surrounding text[start:end].
// Window edges are moved inward to the nearest rune boundary.
func (ce *ContextExtractor) ExtractContext(text string, start, end int) ContextInfo {
	if start < 0 || end > len(text) || start > end {
		return ContextInfo{}
	}

	info := ContextInfo{}

	before := runeFloor(text, max(0, start-ce.ContextChars))
	info.BeforeText = text[before:start]

	after := runeCeil(text, min(len(text), end+ce.ContextChars))
	info.AfterText = text[end:after]

	label := runeFloor(text, max(0, start-ce.LabelChars))
	info.LabelText = text[label:start]

	lineStart := strings.LastIndexByte(text[:start], '\n') + 1
	lineEnd := strings.IndexByte(text[end:], '\n')
	if lineEnd < 0 {
		lineEnd = len(text)
	} else {
		lineEnd += end
	}
	info.FullLine = text[lineStart:lineEnd]

	return info
}

// LineNumber returns the 1-based line on which offset falls.
func LineNumber(text string, offset int) int {
	if offset > len(text) {
		offset = len(text)
	}
	return strings.Count(text[:offset], "\n") + 1
}

// runeFloor moves i forward until it sits on a rune start.
func runeFloor(s string, i int) int {
	for i < len(s) && !utf8.RuneStart(s[i]) {
		i++
	}
	return i
}

// runeCeil moves i backward until it sits on a rune start or the end of s.
func runeCeil(s string, i int) int {
	for i < len(s) && i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}
