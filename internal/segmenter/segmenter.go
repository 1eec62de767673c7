// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package segmenter turns a raw OCR text block into ordered, cleaned lines.
package segmenter

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize applies Unicode NFKC normalization and unifies line endings.
// OCR engines emit ligatures (ﬁ), full-width forms (＠) and non-breaking
// spaces that the ASCII oriented extractors would otherwise miss.
func Normalize(text string) string {
	text = norm.NFKC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// Lines splits text on line breaks, trims every line and drops blank ones.
// Order is preserved.
func Lines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
