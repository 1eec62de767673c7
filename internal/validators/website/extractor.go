// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package website finds the company or personal web site in a text block.
package website

import (
	"regexp"
	"sort"
	"strings"
)

const pathPattern = `(?:/[^\s<>"{}|\\^` + "`" + `\[\]]*)?`

var (
	schemeURL = regexp.MustCompile(`(?i)https?://(?:www\.)?[a-z0-9](?:[a-z0-9-]*[a-z0-9])?(?:\.[a-z0-9](?:[a-z0-9-]*[a-z0-9])?)*\.[a-z]{2,}` + pathPattern)
	bareWWW   = regexp.MustCompile(`(?i)\bwww\.[a-z0-9](?:[a-z0-9-]*[a-z0-9])?(?:\.[a-z0-9](?:[a-z0-9-]*[a-z0-9])?)*\.[a-z]{2,}` + pathPattern)
	anchored  = regexp.MustCompile(`(?i)^(?:https?://(?:www\.)?|www\.)[a-z0-9](?:[a-z0-9-]*[a-z0-9])?(?:\.[a-z0-9](?:[a-z0-9-]*[a-z0-9])?)*\.[a-z]{2,}` + pathPattern + `$`)
)

// Candidate is one URL found in the text
type Candidate struct {
	URL   string
	Start int
	End   int
}

// Host returns the lower-cased host without scheme or path
func (c Candidate) Host() string {
	return Host(c.URL)
}

// Extractor finds website candidates and picks the best one
type Extractor struct {
	profileDomain string
}

// NewExtractor creates an Extractor that never returns links on profileDomain
func NewExtractor(profileDomain string) *Extractor {
	return &Extractor{profileDomain: strings.ToLower(profileDomain)}
}

// IsValid reports whether s is exactly one URL of the accepted shapes
func IsValid(s string) bool {
	return anchored.MatchString(s)
}

// Candidates returns every URL in text in order of appearance, with
// trailing punctuation trimmed. A bare www. host inside a scheme URL is
// reported once.
func Candidates(text string) []Candidate {
	var out []Candidate
	for _, loc := range schemeURL.FindAllStringIndex(text, -1) {
		out = append(out, trimmed(text, loc[0], loc[1]))
	}
	for _, loc := range bareWWW.FindAllStringIndex(text, -1) {
		inside := false
		for _, c := range out {
			if loc[0] >= c.Start && loc[0] < c.End {
				inside = true
				break
			}
		}
		if !inside {
			out = append(out, trimmed(text, loc[0], loc[1]))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

func trimmed(text string, start, end int) Candidate {
	url := strings.TrimRight(text[start:end], ".,;:!?)'\"")
	return Candidate{URL: url, Start: start, End: start + len(url)}
}

// Extract returns the best website in text. Links on the profile domain and
// links whose host is exactly the email domain are skipped. A www. host is
// preferred, otherwise the first candidate wins.
func (e *Extractor) Extract(text, emailDomain string) (Candidate, bool) {
	emailDomain = strings.ToLower(emailDomain)

	var kept []Candidate
	for _, c := range Candidates(text) {
		host := c.Host()
		if e.profileDomain != "" && (host == e.profileDomain || strings.HasSuffix(host, "."+e.profileDomain)) {
			continue
		}
		if emailDomain != "" && host == emailDomain {
			continue
		}
		kept = append(kept, c)
	}

	if len(kept) == 0 {
		return Candidate{}, false
	}
	for _, c := range kept {
		if strings.HasPrefix(c.Host(), "www.") {
			return c, true
		}
	}
	return kept[0], true
}

// Host strips the scheme, path and port from a URL and lower-cases it
func Host(url string) string {
	s := strings.ToLower(url)
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
	}
	if i := strings.IndexAny(s, "/?#:"); i >= 0 {
		s = s[:i]
	}
	return s
}
