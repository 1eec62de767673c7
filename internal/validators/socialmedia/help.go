// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package socialmedia

import "contact-scan/internal/help"

// GetFieldInfo returns standardized information about the profile link extractor
func (e *Extractor) GetFieldInfo() help.FieldInfo {
	return help.FieldInfo{
		Name:             "PROFILE_LINK",
		Fields:           []string{"linkedIn"},
		ShortDescription: "Personal profile link, only when it can be tied to the name",
		DetailedDescription: `The profile link extractor is the most conservative extractor. A link on ` + e.domain + `/in/
is only kept when every acceptance rule holds; otherwise the field stays empty and the
reason is reported as a warning. Trailing punctuation left by OCR is trimmed first.`,
		Patterns: []string{
			"(https://)(www.)" + e.domain + "/in/<slug>",
		},
		Rules: []string{
			"Link length between 25 and 80 characters",
			"No whitespace inside the link",
			"Slug of 5 to 30 characters, starting with a letter, letters/digits/hyphens only",
			"Slug is not purely numeric",
			"When a name was found, the slug and a name part of 3+ letters contain one another",
		},
		ConfigurationInfo: `extraction:
  profile_domain: linkedin.com`,
		Examples: []string{
			e.domain + "/in/chris-presswood-8a2f1  -> https://" + e.domain + "/in/chris-presswood-8a2f1",
			e.domain + "/in/12345                  -> rejected",
		},
	}
}
