// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package normalize canonicalizes extracted values. Every function is
// idempotent and leaves values it cannot confidently normalize untouched.
package normalize

import (
	"fmt"
	"strings"

	"contact-scan/internal/contact"
)

// Digits returns only the ASCII digits of s
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// Phone formats a North American number as (AAA) BBB-CCCC. An 11 digit
// number with a leading 1 or 0 loses that digit first. Anything else,
// including numbers with an extension, is returned unchanged.
func Phone(s string) string {
	d := Digits(s)
	if len(d) == 11 && (d[0] == '1' || d[0] == '0') {
		d = d[1:]
	}
	if len(d) != 10 {
		return s
	}
	return fmt.Sprintf("(%s) %s-%s", d[:3], d[3:6], d[6:])
}

// URL prefixes https:// when s carries no scheme
func URL(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return s
	}
	return "https://" + s
}

// Name collapses whitespace runs to single spaces and trims
func Name(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Record returns a copy of r with every field canonicalized
func Record(r contact.Record) contact.Record {
	out := r.Clone()

	out.MobilePhone = phoneField(out.MobilePhone)
	out.WorkPhone = phoneField(out.WorkPhone)
	out.HomePhone = phoneField(out.HomePhone)

	out.Website = URL(out.Website)
	out.LinkedIn = URL(out.LinkedIn)

	out.FullName = Name(out.FullName)
	out.FirstName = Name(out.FirstName)
	out.LastName = Name(out.LastName)

	return out
}

func phoneField(s string) string {
	if s == "" {
		return s
	}
	return Phone(strings.TrimSpace(s))
}
