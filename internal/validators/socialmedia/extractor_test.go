// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package socialmedia

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_Gate(t *testing.T) {
	e := NewExtractor("linkedin.com")

	tests := []struct {
		name     string
		text     string
		fullName string
		want     string
		reason   string
	}{
		{"accepted with name", "linkedin.com/in/chris-presswood-8a2f1", "Chris Presswood", "linkedin.com/in/chris-presswood-8a2f1", ""},
		{"scheme and trailing noise", "https://www.linkedin.com/in/chrispresswood),", "Chris Presswood", "https://www.linkedin.com/in/chrispresswood", ""},
		{"numeric slug", "linkedin.com/in/12345", "Chris Presswood", "", ReasonLength},
		{"numeric slug long link", "https://www.linkedin.com/in/1234567", "Chris Presswood", "", ReasonNumeric},
		{"name mismatch", "https://linkedin.com/in/jane-doe-42", "Chris Presswood", "", ReasonName},
		{"short slug", "https://www.linkedin.com/in/cp", "Chris Presswood", "", ReasonShortSlug},
		{"bad shape", "https://www.linkedin.com/in/chris_presswood", "Chris Presswood", "", ReasonSlugShape},
		{"slug too long", "https://linkedin.com/in/chris-presswood-abcdefghijklmnop", "Chris Presswood", "", ReasonSlugShape},
		{"no name skips name check", "https://linkedin.com/in/jane-doe-42", "", "https://linkedin.com/in/jane-doe-42", ""},
		{"only short name parts skip name check", "Al Li\nlinkedin.com/in/al-li-engineer", "Al Li", "linkedin.com/in/al-li-engineer", ""},
		{"case insensitive", "LinkedIn.com/in/Chris-Presswood", "chris presswood", "LinkedIn.com/in/Chris-Presswood", ""},
		{"inside a sentence", "Profile: (linkedin.com/in/chris-presswood)", "Chris Presswood", "linkedin.com/in/chris-presswood", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link, ok, rejections := e.Extract(tt.text, tt.fullName)
			if tt.want != "" {
				require.True(t, ok, "rejections %v", rejections)
				assert.Equal(t, tt.want, link.URL)
				return
			}
			assert.False(t, ok, "expected rejection, got %q", link.URL)
			require.Len(t, rejections, 1)
			assert.Equal(t, tt.reason, rejections[0].Reason)
		})
	}
}

func TestExtract_LongerHostIsNotACandidate(t *testing.T) {
	e := NewExtractor("linkedin.com")

	for _, text := range []string{
		"notlinkedin.com/in/chris-presswood",
		"https://notlinkedin.com/in/chris-presswood",
		"https://mirror.example.com/linkedin.com/in/chris-presswood",
		"chris@linkedin.com/in/chris-presswood",
	} {
		link, ok, rejections := e.Extract(text, "Chris Presswood")
		assert.False(t, ok, "%q gave %q", text, link.URL)
		assert.Empty(t, rejections, text)
		assert.Empty(t, e.FindAll(text), text)
		assert.False(t, e.Contains(text), text)
	}
}

func TestFindAll_Spans(t *testing.T) {
	e := NewExtractor("linkedin.com")
	text := "Jane Doe\nlinkedin.com/in/jane-doe-4b1\nhttps://www.linkedin.com/in/jdoe"

	spans := e.FindAll(text)
	require.Len(t, spans, 2)
	assert.Equal(t, "linkedin.com/in/jane-doe-4b1", text[spans[0][0]:spans[0][1]])
	assert.Equal(t, "https://www.linkedin.com/in/jdoe", text[spans[1][0]:spans[1][1]])
}

func TestExtract_FirstAcceptedWins(t *testing.T) {
	e := NewExtractor("linkedin.com")
	text := "linkedin.com/in/12345\nlinkedin.com/in/chris-presswood-8a2f1"

	link, ok, rejections := e.Extract(text, "Chris Presswood")
	require.True(t, ok)
	assert.Equal(t, "chris-presswood-8a2f1", link.Slug)
	require.Len(t, rejections, 1, "the numeric link must be reported")
	assert.Equal(t, "profile link rejected: length out of range", rejections[0].Warning())
}

func TestMatchesName(t *testing.T) {
	cases := []struct {
		slug, name string
		want       bool
	}{
		{"chris-presswood-8a2f1", "Chris Presswood", true},
		{"cpresswood", "Chris Presswood", true},
		{"chris", "Christopher Presswood", true},
		{"al-li-99", "Al Li", true},
		{"bob-smith", "Al Smith", true},
		{"bob-jones", "Al Smith", false},
		{"janedoe", "Chris Presswood", false},
		{"o-brien-12", "Pat O'Brien", true},
		{"obrien", "Pat O'Brien", true},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, MatchesName(c.slug, c.name), "MatchesName(%q, %q)", c.slug, c.name)
	}
}

func TestIsValid(t *testing.T) {
	e := NewExtractor("linkedin.com")
	assert.True(t, e.IsValid("https://linkedin.com/in/chris-presswood-8a2f1"))
	assert.False(t, e.IsValid("https://linkedin.com/company/acme"))
	assert.False(t, e.IsValid("linkedin.com/in/ chris"))
}
