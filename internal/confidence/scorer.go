// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package confidence assigns an advisory score in [0,1] to every populated
// field of a contact record. Scores never remove a field.
package confidence

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"contact-scan/internal/config"
	"contact-scan/internal/contact"
	"contact-scan/internal/validators/email"
	"contact-scan/internal/validators/phone"
	"contact-scan/internal/validators/website"
)

var zipCode = regexp.MustCompile(`\b\d{5}(?:-\d{4})?\b`)

// TitleMatcher reports whether a string contains a job title keyword
type TitleMatcher interface {
	HasTitleKeyword(s string) bool
}

// LinkValidator reports whether a string is a well-formed profile link
type LinkValidator interface {
	IsValid(s string) bool
}

// check decides between the base and the degraded score of a field
type check func(value string, r *contact.Record) bool

// Scorer applies the confidence table to a record
type Scorer struct {
	rules  map[string]config.ScoreRule
	checks map[string]check
}

// NewScorer creates a Scorer. Fields missing from rules fall back to the
// built-in table.
func NewScorer(rules map[string]config.ScoreRule, titles TitleMatcher, links LinkValidator) *Scorer {
	table := config.DefaultConfidence()
	for field, rule := range rules {
		table[field] = rule
	}

	nameTokens := func(_ string, r *contact.Record) bool {
		n := len(strings.Fields(r.FullName))
		return n >= 2 && n <= 4
	}
	hasZip := func(_ string, r *contact.Record) bool {
		return r.ZipCode != "" || zipCode.MatchString(r.Address)
	}

	s := &Scorer{
		rules: table,
		checks: map[string]check{
			contact.FieldEmail:       func(v string, _ *contact.Record) bool { return email.IsValid(v) },
			contact.FieldMobilePhone: func(v string, _ *contact.Record) bool { return phone.IsValid(v) },
			contact.FieldWorkPhone:   func(v string, _ *contact.Record) bool { return phone.IsValid(v) },
			contact.FieldHomePhone:   func(v string, _ *contact.Record) bool { return phone.IsValid(v) },
			contact.FieldFullName:    nameTokens,
			contact.FieldFirstName:   nameTokens,
			contact.FieldLastName:    nameTokens,
			contact.FieldCompany: func(v string, _ *contact.Record) bool {
				n := utf8.RuneCountInString(v)
				return n >= 3 && n < 50
			},
			contact.FieldWebsite: func(v string, _ *contact.Record) bool { return website.IsValid(v) },
			contact.FieldAddress: hasZip,
			contact.FieldStreet:  hasZip,
			contact.FieldCity:    hasZip,
			contact.FieldState:   hasZip,
			contact.FieldZipCode: hasZip,
			contact.FieldCountry: hasZip,
			contact.FieldHeadline: func(string, *contact.Record) bool {
				return true
			},
			contact.FieldLocation: func(v string, _ *contact.Record) bool {
				return strings.Contains(v, ",") || strings.Contains(v, "Area")
			},
		},
	}

	if titles != nil {
		s.checks[contact.FieldTitle] = func(v string, _ *contact.Record) bool { return titles.HasTitleKeyword(v) }
	}
	if links != nil {
		s.checks[contact.FieldLinkedIn] = func(v string, _ *contact.Record) bool { return links.IsValid(v) }
	}
	return s
}

// Score returns the confidence map for the populated fields of r, or nil
// when no field is populated.
func (s *Scorer) Score(r *contact.Record) map[string]float64 {
	var scores map[string]float64
	for _, field := range r.Populated() {
		rule, ok := s.rules[field]
		if !ok {
			continue
		}
		value := r.Get(field)
		score := rule.Degraded
		if c, ok := s.checks[field]; ok && c(value, r) {
			score = rule.Base
		}
		if scores == nil {
			scores = make(map[string]float64)
		}
		scores[field] = score
	}
	return scores
}

// Rules returns the effective confidence table
func (s *Scorer) Rules() map[string]config.ScoreRule {
	out := make(map[string]config.ScoreRule, len(s.rules))
	for k, v := range s.rules {
		out[k] = v
	}
	return out
}
