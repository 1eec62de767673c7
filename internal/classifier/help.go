// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package classifier

import "contact-scan/internal/help"

// GetFieldInfo returns standardized information about the classifier
func (c *Classifier) GetFieldInfo() help.FieldInfo {
	return help.FieldInfo{
		Name:             "CLASSIFIER",
		Fields:           []string{"fullName", "firstName", "lastName", "title", "company", "headline", "location"},
		ShortDescription: "Name, title and company picked from the remaining lines by position",
		DetailedDescription: `Lines holding an email, phone number, URL or address are set aside first. The rest
are classified in one of two layouts:

  signature  greetings such as "Best regards," are skipped and the first plausible
             line is the name; a capitalized line with a space beats a single word
  profile    used when the text carries profile page words such as "connections";
             the first plausible line is the name, the line after it the headline

The first line holding a title keyword is the title. When it contains " at ", "|" or a
spaced dash, the other side of the separator is the company. Otherwise the company is
the first remaining line with a company suffix, a capitalized single word, or a short
capitalized phrase that does not start with a first name.`,
		Rules: []string{
			"Name lines: 4 to 49 characters, no digits, no @ | / :",
			"Only the first few content lines are searched for a name",
			"A company repeated inside the title is removed from the title",
		},
		ConfigurationInfo: `keywords:
  titles: [manager, director, ...]
  company_suffixes: [llc, inc, ...]
  greetings: [best regards, thanks, ...]
  profile_vocabulary: [connections, follow, ...]
  first_names: [extra, names]
extraction:
  name_window: 5`,
		Examples: []string{
			"Partner / Senior Vice President - Mammoth Holdings  -> title, company",
			"Director of Sales at Globex                         -> title, company",
		},
	}
}
