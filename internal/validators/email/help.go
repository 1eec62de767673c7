// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package email

import "contact-scan/internal/help"

// GetFieldInfo returns standardized information about the email extractor
func (e *Extractor) GetFieldInfo() help.FieldInfo {
	return help.FieldInfo{
		Name:             "EMAIL",
		Fields:           []string{"email"},
		ShortDescription: "First email address in the text, with OCR repair",
		DetailedDescription: `The email extractor takes the first address matching the standard local@domain.tld
form. When nothing matches, a cascade of recovery strategies is tried in order and the
first one that produces an address wins:

  strict   standard pattern
  spaced   a blank inside the local part is read as a period ("chris p@acme.com")
  broad    blanks around '@' and '.' are dropped, other blanks become periods
  partial  any address shaped token, even when the domain lost its TLD

A recovered address that still fails the strict pattern (the partial strategy) gets
the degraded confidence score. A strict match always wins, even a one-letter local
part that OCR may have split from a longer one.`,
		Patterns: []string{
			`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`,
		},
		Rules: []string{
			"First match in reading order wins",
			"Fallback strategies run only when the strict pattern finds nothing",
		},
		Examples: []string{
			"chris.p@mammothholdings.com        -> chris.p@mammothholdings.com (strict)",
			"chris p@mammothholdings.com        -> p@mammothholdings.com (strict)",
			"chris.p @ mammothholdings.com      -> chris.p@mammothholdings.com (broad)",
		},
	}
}
