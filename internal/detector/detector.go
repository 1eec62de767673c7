// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

// ContextInfo stores contextual information about a match
type ContextInfo struct {
	// Text before and after the match
	BeforeText string
	AfterText  string

	// Narrow window immediately preceding the match, used for labels like "Mobile:"
	LabelText string

	// Line containing the match
	FullLine string

	// Role or classification keywords found near the match
	Keywords []string
}

// Match represents a pattern match located in a block of text
type Match struct {
	Text       string
	Start      int // byte offset of the match in the scanned text
	End        int // byte offset one past the match
	LineNumber int // 1-based
	Type       string
	Metadata   map[string]any
	Validator  string // Name of the extractor that created this match

	Context ContextInfo
}

// Overlaps reports whether the byte span [start, end) intersects the match.
func (m Match) Overlaps(start, end int) bool {
	return start < m.End && m.Start < end
}

// ContextExtractor extracts windows of text around a match
type ContextExtractor struct {
	// Number of characters before and after the match to consider
	ContextChars int

	// Number of characters immediately before the match treated as a label
	LabelChars int
}

// NewContextExtractor creates a new context extractor with default settings
func NewContextExtractor() *ContextExtractor {
	return &ContextExtractor{
		ContextChars: 50, // Look at 50 chars before and after by default
		LabelChars:   30,
	}
}

// WithContextChars sets the number of context characters
func (ce *ContextExtractor) WithContextChars(chars int) *ContextExtractor {
	ce.ContextChars = chars
	return ce
}

// WithLabelChars sets the width of the label window
func (ce *ContextExtractor) WithLabelChars(chars int) *ContextExtractor {
	ce.LabelChars = chars
	return ce
}
