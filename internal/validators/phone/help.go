// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phone

import "contact-scan/internal/help"

// FieldInfo describes the phone extractor and role resolver. The keyword
// lists are the ones the resolver was built with.
type FieldInfo struct {
	Mobile, Work, Home []string
}

// GetFieldInfo returns standardized information about the phone extractor
func (f FieldInfo) GetFieldInfo() help.FieldInfo {
	keywords := make([]string, 0, len(f.Mobile)+len(f.Work)+len(f.Home))
	keywords = append(keywords, f.Mobile...)
	keywords = append(keywords, f.Work...)
	keywords = append(keywords, f.Home...)

	return help.FieldInfo{
		Name:             "PHONE",
		Fields:           []string{"mobilePhone", "workPhone", "homePhone"},
		ShortDescription: "North American numbers sorted into mobile, work and home",
		DetailedDescription: `Every North American number in the text is collected with the text around it. Each
number gets a role from the nearest role keyword: a label on the same line just before
the number ("Mobile:", "O:") decides first, otherwise the nearest keyword within the
broad window on either side.

Slots are filled in this order: mobile-labeled, work-labeled, home-labeled, then
unlabeled numbers into mobile and then work. When the only number found is a work
number it is moved to mobile, since a lone number is taken as the primary one.`,
		Patterns: []string{
			"555-123-4567, 555.123.4567, 555 123 4567",
			"(555) 123-4567, +1 555 123 4567, 1-555-123-4567",
			"555-123-4567 ext. 89, 555-123-4567 x89",
		},
		Rules: []string{
			"Digits glued to the number or a preceding '/' reject the match",
			"Duplicate numbers are kept once",
			"Numbers beyond the three slots are ignored with a warning",
			"10 digit numbers are stored as (AAA) BBB-CCCC",
		},
		Keywords: keywords,
		ConfigurationInfo: `keywords:
  mobile_roles: [mobile, cell, m:]
  work_roles: [office, direct, o:]
  home_roles: [home, h:]
extraction:
  context_chars: 50
  label_chars: 30`,
		Examples: []string{
			"Mobile: 555-123-4567   -> mobilePhone (555) 123-4567",
			"Office: 555-987-6543   -> workPhone (555) 987-6543",
		},
	}
}
