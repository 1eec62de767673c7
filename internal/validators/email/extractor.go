// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package email

import (
	"regexp"
	"strings"
)

const domainPattern = `[A-Za-z0-9.-]+\.[A-Za-z]{2,}`

var (
	strictPattern = regexp.MustCompile(`(?i)\b[A-Za-z0-9._%+-]+@` + domainPattern + `\b`)
	anchored      = regexp.MustCompile(`(?i)^[A-Za-z0-9._%+-]+@` + domainPattern + `$`)

	// OCR split a short local part: "chris p@acme.com"
	spacedPattern = regexp.MustCompile(`(?i)\b[A-Za-z]+[ \t]+[A-Za-z]+@` + domainPattern + `\b`)

	// Wider local part with stray blanks on either side of '@' or '.'
	broadPattern = regexp.MustCompile(`(?i)[A-Za-z][A-Za-z0-9 \t._%+-]*?[ \t]*@[ \t]*` + domainPattern + `\b`)

	// Anything address shaped, including a domain that lost its TLD
	partialPattern = regexp.MustCompile(`(?i)[A-Za-z0-9._%+-]+@[A-Za-z0-9-]+(?:\.[A-Za-z0-9-]+)*`)

	blankAroundPunct = regexp.MustCompile(`[ \t]*([@.])[ \t]*`)
	blankRun         = regexp.MustCompile(`[ \t]+`)
)

// Strategy is one step of the email recovery cascade. Find must be pure.
type Strategy struct {
	Name string
	Find func(text string) (string, bool)
}

// Result is the address that was found and the strategy that produced it
type Result struct {
	Email    string
	Strategy string
}

// Extractor finds the first email address in a text block
type Extractor struct {
	strategies []Strategy
}

// NewExtractor creates an Extractor with the default strategy cascade:
// strict, spaced, broad, partial.
func NewExtractor() *Extractor {
	return &Extractor{
		strategies: []Strategy{
			{Name: "strict", Find: findStrict},
			{Name: "spaced", Find: findSpaced},
			{Name: "broad", Find: findBroad},
			{Name: "partial", Find: findPartial},
		},
	}
}

// Strategies returns the cascade in the order it is tried
func (e *Extractor) Strategies() []Strategy {
	return append([]Strategy(nil), e.strategies...)
}

// Extract runs the cascade and returns the first hit
func (e *Extractor) Extract(text string) (Result, bool) {
	for _, s := range e.strategies {
		if found, ok := s.Find(text); ok {
			return Result{Email: found, Strategy: s.Name}, true
		}
	}
	return Result{}, false
}

// IsValid reports whether s is exactly one well-formed email address
func IsValid(s string) bool {
	return anchored.MatchString(s)
}

// Contains reports whether text holds a well-formed email address anywhere
func Contains(text string) bool {
	return strictPattern.MatchString(text)
}

// FindAll returns every well-formed address in text with its byte offsets
func FindAll(text string) [][]int {
	return strictPattern.FindAllStringIndex(text, -1)
}

// Domain returns the lower-cased part after the last '@'
func Domain(address string) string {
	at := strings.LastIndex(address, "@")
	if at < 0 {
		return ""
	}
	return strings.ToLower(address[at+1:])
}

func findStrict(text string) (string, bool) {
	m := strictPattern.FindString(text)
	return m, m != ""
}

func findSpaced(text string) (string, bool) {
	m := spacedPattern.FindString(text)
	if m == "" {
		return "", false
	}
	return blankRun.ReplaceAllString(m, "."), true
}

func findBroad(text string) (string, bool) {
	m := broadPattern.FindString(text)
	if m == "" {
		return "", false
	}
	m = blankAroundPunct.ReplaceAllString(strings.TrimSpace(m), "$1")
	m = blankRun.ReplaceAllString(m, ".")
	return m, true
}

func findPartial(text string) (string, bool) {
	m := strings.TrimRight(partialPattern.FindString(text), ".-")
	return m, m != ""
}
