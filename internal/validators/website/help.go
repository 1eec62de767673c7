// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package website

import "contact-scan/internal/help"

// GetFieldInfo returns standardized information about the website extractor
func (e *Extractor) GetFieldInfo() help.FieldInfo {
	return help.FieldInfo{
		Name:             "WEBSITE",
		Fields:           []string{"website"},
		ShortDescription: "Company or personal web site, never the profile network",
		DetailedDescription: `The website extractor collects scheme URLs and bare www. hosts. Links on the
professional network domain (` + e.profileDomain + `) are left to the profile link
extractor, and a link whose host is exactly the domain of the extracted email is
dropped so the mail server is not echoed back as a web site. A www. host is preferred
when several candidates remain; otherwise the first one in reading order wins.`,
		Patterns: []string{
			"https://domain.tld/path, http://www.domain.tld",
			"www.domain.tld",
		},
		Rules: []string{
			"Trailing punctuation is trimmed",
			"https:// is added when the link has no scheme",
		},
		Examples: []string{
			"www.mammothholdings.com   -> https://www.mammothholdings.com",
		},
	}
}
