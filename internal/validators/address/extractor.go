// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package address finds a US postal address in the lines of a text block.
package address

import (
	"regexp"
	"strings"
)

const (
	suffixPattern  = `(?:Street|St|Avenue|Ave|Road|Rd|Drive|Dr|Lane|Ln|Boulevard|Blvd|Court|Ct|Place|Pl|Way|Circle|Cir|Parkway|Pkwy|Trail|Trl|Highway|Hwy)`
	unitPattern    = `(?:Suite|Ste|Apt|Unit|Floor|Fl|#)\.?[ \t]*[A-Za-z0-9-]+`
	zipPattern     = `\d{5}(?:-\d{4})?`
	countryPattern = `(?:USA|U\.S\.A\.|United States(?: of America)?|US|Canada)`
)

var (
	// 3510 Park Avenue, Suite 4, Paducah, KY 42001 USA
	singleLine = regexp.MustCompile(`^(\d+[ \t]+[^,]+?(?:,[ \t]*` + unitPattern + `)?),[ \t]*([A-Za-z][A-Za-z .'-]*?),?[ \t]+([A-Z]{2})\.?[ \t]+(` + zipPattern + `)(?:[ \t,]+(` + countryPattern + `))?$`)

	// 3510 Park Avenue  /  3510 Park Ave., Ste 4
	streetLine = regexp.MustCompile(`(?i)^\d+[ \t]+[A-Za-z0-9 .'#-]*?\b` + suffixPattern + `\b\.?(?:[ \t,]+` + unitPattern + `)?$`)

	// Paducah, KY 42001
	cityLine = regexp.MustCompile(`^([A-Za-z][A-Za-z .'-]*?),[ \t]*([A-Z]{2})\.?[ \t]+(` + zipPattern + `)(?:[ \t,]+(` + countryPattern + `))?$`)

	// Suite 200
	unitLine = regexp.MustCompile(`(?i)^` + unitPattern + `$`)

	// Street part at the start of a line that has no comma after it
	streetPrefix = regexp.MustCompile(`(?i)^\d+[ \t]+[A-Za-z0-9 .'#-]*?\b` + suffixPattern + `\b\.?(?:[ \t,]+` + unitPattern + `)?`)

	zipToken     = regexp.MustCompile(`\b` + zipPattern + `\b`)
	stateToken   = regexp.MustCompile(`\b([A-Z]{2})\b\.?`)
	countryOnly  = regexp.MustCompile(`(?i)^` + countryPattern + `$`)
	countryTail  = regexp.MustCompile(`(?i)[ \t,]+(` + countryPattern + `)$`)
	contactNoise = regexp.MustCompile(`(?i)@|https?://|www\.`)
)

// Address is a postal address found in the text. Lines holds the indexes
// of the lines it was read from.
type Address struct {
	Street   string
	City     string
	State    string
	ZipCode  string
	Country  string
	Line     string // the address as one free-text line
	Lines    []int
	Strategy string
}

// Decomposed reports whether the address was split into its parts
func (a Address) Decomposed() bool {
	return a.City != "" && a.State != "" && a.ZipCode != ""
}

// Strategy is one step of the address cascade. Find must be pure.
type Strategy struct {
	Name string
	Find func(lines []string) (Address, bool)
}

// Extractor tries single-line, two-line and zip/state strategies in order
type Extractor struct {
	strategies []Strategy
}

// NewExtractor creates an Extractor with the default strategy cascade
func NewExtractor() *Extractor {
	return &Extractor{
		strategies: []Strategy{
			{Name: "single-line", Find: findSingleLine},
			{Name: "two-line", Find: findTwoLine},
			{Name: "zip-state", Find: findZipState},
		},
	}
}

// Extract returns the first address any strategy finds
func (e *Extractor) Extract(lines []string) (Address, bool) {
	for _, s := range e.strategies {
		if a, ok := s.Find(lines); ok {
			a.Strategy = s.Name
			return a, true
		}
	}
	return Address{}, false
}

func findSingleLine(lines []string) (Address, bool) {
	for i, line := range lines {
		m := singleLine.FindStringSubmatch(line)
		if m == nil || !IsState(m[3]) {
			continue
		}
		a := Address{
			Street:  strings.TrimSpace(m[1]),
			City:    strings.TrimSpace(m[2]),
			State:   m[3],
			ZipCode: m[4],
			Country: m[5],
			Line:    line,
			Lines:   []int{i},
		}
		a.Country = countryAfter(lines, i, a.Country, &a.Lines)
		return a, true
	}
	return Address{}, false
}

func findTwoLine(lines []string) (Address, bool) {
	for i, line := range lines {
		if !streetLine.MatchString(line) {
			continue
		}
		street := strings.TrimSuffix(strings.TrimSpace(line), ",")
		claimed := []int{i}

		for gap := 1; gap <= 2 && i+gap < len(lines); gap++ {
			next := lines[i+gap]
			m := cityLine.FindStringSubmatch(next)
			if m == nil {
				if gap == 1 && unitLine.MatchString(next) {
					street += ", " + next
					claimed = append(claimed, i+gap)
				}
				continue
			}
			if !IsState(m[2]) {
				break
			}
			claimed = append(claimed, i+gap)
			a := Address{
				Street:  street,
				City:    strings.TrimSpace(m[1]),
				State:   m[2],
				ZipCode: m[3],
				Country: m[4],
				Lines:   claimed,
			}
			a.Country = countryAfter(lines, i+gap, a.Country, &a.Lines)
			a.Line = compose(a)
			return a, true
		}
	}
	return Address{}, false
}

// findZipState accepts any line with a zip code and a known state code.
// The part before the state is split into street and city at the last
// comma, or after the street suffix when there is no comma.
func findZipState(lines []string) (Address, bool) {
	for i, line := range lines {
		if contactNoise.MatchString(line) {
			continue
		}
		zipLoc := zipToken.FindStringIndex(line)
		if zipLoc == nil {
			continue
		}

		var state string
		stateStart := -1
		for _, loc := range stateToken.FindAllStringSubmatchIndex(line, -1) {
			code := line[loc[2]:loc[3]]
			if IsState(code) && loc[0] < zipLoc[0] {
				state, stateStart = code, loc[0]
			}
		}
		if state == "" {
			continue
		}

		a := Address{State: state, ZipCode: line[zipLoc[0]:zipLoc[1]], Line: line, Lines: []int{i}}
		if m := countryTail.FindStringSubmatch(line); m != nil {
			a.Country = m[1]
		}

		head := strings.TrimRight(line[:stateStart], " \t")
		prefix := strings.TrimRight(head, " \t,")
		switch {
		case strings.Contains(prefix, ","):
			cut := strings.LastIndex(prefix, ",")
			a.Street = strings.TrimSpace(prefix[:cut])
			a.City = strings.TrimSpace(prefix[cut+1:])
		case streetPrefix.MatchString(prefix):
			loc := streetPrefix.FindStringIndex(prefix)
			a.Street = strings.TrimSpace(prefix[:loc[1]])
			a.City = strings.TrimSpace(prefix[loc[1]:])
		case strings.HasSuffix(head, ",") && !strings.ContainsAny(prefix, "0123456789"):
			a.City = prefix
		}

		if a.City == "" {
			// Not enough to decompose; keep only the free-text line
			a.Street, a.State, a.ZipCode, a.Country = "", "", "", ""
		}
		return a, true
	}
	return Address{}, false
}

// countryAfter returns found, or the country named alone on the line after
// index i. The extra line is claimed.
func countryAfter(lines []string, i int, found string, claimed *[]int) string {
	if found != "" || i+1 >= len(lines) {
		return found
	}
	if next := strings.TrimSpace(lines[i+1]); countryOnly.MatchString(next) {
		*claimed = append(*claimed, i+1)
		return next
	}
	return ""
}

func compose(a Address) string {
	line := a.Street + ", " + a.City + ", " + a.State + " " + a.ZipCode
	if a.Country != "" {
		line += ", " + a.Country
	}
	return line
}
