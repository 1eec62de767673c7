// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phone

import (
	"regexp"

	"contact-scan/internal/detector"
	"contact-scan/internal/normalize"
)

// North American number: optional country code, optional parentheses,
// dash/dot/blank separators, optional extension. Separators never span a
// line break.
const numberPattern = `(?:\+?1[-. \t]?)?\(?\d{3}\)?[-. \t]?\d{3}[-. \t]?\d{4}(?:[ \t]*(?:ext\.?|x|#)[ \t]*\d{1,6})?`

var (
	numberRegex   = regexp.MustCompile(`(?i)` + numberPattern)
	anchoredRegex = regexp.MustCompile(`(?i)^` + numberPattern + `$`)
)

// IsValid reports whether s is exactly one phone number
func IsValid(s string) bool {
	return anchoredRegex.MatchString(s)
}

// Contains reports whether text holds a phone number anywhere
func Contains(text string) bool {
	return len(FindAll(text)) > 0
}

// FindAll returns the byte offsets of every phone number in text
func FindAll(text string) [][]int {
	var spans [][]int
	for _, loc := range numberRegex.FindAllStringIndex(text, -1) {
		if embedded(text, loc[0], loc[1]) {
			continue
		}
		spans = append(spans, loc)
	}
	return spans
}

// embedded rejects digit runs that are part of a longer number or a URL path
func embedded(text string, start, end int) bool {
	if start > 0 {
		prev := text[start-1]
		if isDigit(prev) || prev == '/' {
			return true
		}
	}
	return end < len(text) && isDigit(text[end])
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// Extractor collects every phone number with the text around it
type Extractor struct {
	context *detector.ContextExtractor
}

// NewExtractor creates an Extractor. contextChars is the window kept on each
// side of a number, labelChars the window immediately before it.
func NewExtractor(contextChars, labelChars int) *Extractor {
	return &Extractor{
		context: detector.NewContextExtractor().
			WithContextChars(contextChars).
			WithLabelChars(labelChars),
	}
}

// Extract returns all numbers in order of appearance
func (e *Extractor) Extract(text string) []detector.Match {
	spans := FindAll(text)
	matches := make([]detector.Match, 0, len(spans))
	for _, loc := range spans {
		raw := text[loc[0]:loc[1]]
		matches = append(matches, detector.Match{
			Text:       raw,
			Start:      loc[0],
			End:        loc[1],
			LineNumber: detector.LineNumber(text, loc[0]),
			Type:       "PHONE",
			Validator:  "phone",
			Metadata: map[string]any{
				"digits":     normalize.Digits(raw),
				"normalized": normalize.Phone(raw),
			},
			Context: e.context.ExtractContext(text, loc[0], loc[1]),
		})
	}
	return matches
}
