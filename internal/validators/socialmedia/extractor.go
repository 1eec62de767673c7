// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package socialmedia

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

const (
	minLinkLength = 25
	maxLinkLength = 80
	minSlugLength = 5
	maxSlugLength = 30
	minNamePart   = 3
)

var (
	slugShape     = regexp.MustCompile(`(?i)^[a-z][a-z0-9-]*[a-z0-9]$`)
	trailingNoise = regexp.MustCompile(`[,.;:)\s]+$`)
)

// Rejection reasons reported in warnings
const (
	ReasonLength     = "length out of range"
	ReasonWhitespace = "whitespace inside link"
	ReasonShortSlug  = "slug too short"
	ReasonSlugShape  = "slug is not a realistic handle"
	ReasonNumeric    = "slug is purely numeric"
	ReasonName       = "name mismatch"
)

// Link is an accepted professional profile URL
type Link struct {
	URL  string
	Slug string
}

// Rejection is a profile link candidate that failed the acceptance gate
type Rejection struct {
	URL    string
	Reason string
}

// Warning formats the rejection for the result's audit notes
func (r Rejection) Warning() string {
	return fmt.Sprintf("profile link rejected: %s", r.Reason)
}

// Extractor finds personal profile links on one professional network domain
type Extractor struct {
	domain    string
	candidate *regexp.Regexp
	strict    *regexp.Regexp
}

// NewExtractor creates an Extractor for profile links on domain, e.g. linkedin.com
func NewExtractor(domain string) *Extractor {
	d := regexp.QuoteMeta(strings.ToLower(domain))
	path := `/in/[^\s<>"{}|\\^` + "`" + `\[\]]+`
	return &Extractor{
		domain:    strings.ToLower(domain),
		candidate: regexp.MustCompile(`(?i)(?:^|[^A-Za-z0-9.@/_-])((?:https?://)?(?:www\.)?` + d + path + `)`),
		strict:    regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?` + d + `/in/[a-z][a-z0-9-]*[a-z0-9]/?$`),
	}
}

// Domain returns the network domain the extractor looks for
func (e *Extractor) Domain() string {
	return e.domain
}

// IsValid reports whether s is exactly one well-formed profile URL
func (e *Extractor) IsValid(s string) bool {
	return e.strict.MatchString(s)
}

// Contains reports whether text mentions a profile link candidate
func (e *Extractor) Contains(text string) bool {
	return e.candidate.MatchString(text)
}

// FindAll returns the offsets of every candidate in text. A candidate must
// not be glued to a longer host name ("notlinkedin.com").
func (e *Extractor) FindAll(text string) [][]int {
	var spans [][]int
	for _, m := range e.candidate.FindAllStringSubmatchIndex(text, -1) {
		spans = append(spans, m[2:4])
	}
	return spans
}

// Extract returns the first candidate that passes the acceptance gate.
// fullName may be empty, in which case the name check is skipped. Every
// rejected candidate is reported.
func (e *Extractor) Extract(text, fullName string) (Link, bool, []Rejection) {
	var rejections []Rejection
	for _, span := range e.FindAll(text) {
		url := trailingNoise.ReplaceAllString(text[span[0]:span[1]], "")
		slug, reason := Gate(url, fullName)
		if reason != "" {
			rejections = append(rejections, Rejection{URL: url, Reason: reason})
			continue
		}
		return Link{URL: url, Slug: slug}, true, rejections
	}
	return Link{}, false, rejections
}

// Gate applies the acceptance rules to a trimmed candidate and returns its
// slug, or the reason it was refused.
func Gate(url, fullName string) (string, string) {
	if len(url) < minLinkLength || len(url) > maxLinkLength {
		return "", ReasonLength
	}
	if strings.IndexFunc(url, unicode.IsSpace) >= 0 {
		return "", ReasonWhitespace
	}

	slug := Slug(url)
	if len(slug) < minSlugLength {
		return "", ReasonShortSlug
	}
	if strings.Trim(slug, "0123456789") == "" {
		return "", ReasonNumeric
	}
	if len(slug) > maxSlugLength || !slugShape.MatchString(slug) {
		return "", ReasonSlugShape
	}
	if fullName != "" && !MatchesName(slug, fullName) {
		return "", ReasonName
	}
	return slug, ""
}

// Slug returns the path segment after /in/ without trailing slash or query
func Slug(url string) string {
	lower := strings.ToLower(url)
	i := strings.Index(lower, "/in/")
	if i < 0 {
		return ""
	}
	slug := url[i+len("/in/"):]
	if j := strings.IndexAny(slug, "/?#"); j >= 0 {
		slug = slug[:j]
	}
	return slug
}

// MatchesName reports whether the slug and a name part of at least three
// letters contain one another. A second, lenient pass drops digits and
// hyphens from the slug. A name made only of shorter parts has nothing to
// compare and always matches.
func MatchesName(slug, fullName string) bool {
	var parts []string
	for _, field := range strings.Fields(strings.ToLower(fullName)) {
		part := strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) {
				return r
			}
			return -1
		}, field)
		if len([]rune(part)) >= minNamePart {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return true
	}

	slug = strings.ToLower(slug)
	lenient := strings.Map(func(r rune) rune {
		if r == '-' || unicode.IsDigit(r) {
			return -1
		}
		return r
	}, slug)

	for _, candidate := range []string{slug, lenient} {
		if candidate == "" {
			continue
		}
		for _, part := range parts {
			if strings.Contains(candidate, part) || strings.Contains(part, candidate) {
				return true
			}
		}
	}
	return false
}
