// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package address

import "contact-scan/internal/help"

// GetFieldInfo returns standardized information about the address extractor
func (e *Extractor) GetFieldInfo() help.FieldInfo {
	return help.FieldInfo{
		Name:             "ADDRESS",
		Fields:           []string{"street", "city", "state", "zipCode", "country", "address"},
		ShortDescription: "US postal address, split into street, city, state and zip",
		DetailedDescription: `The address extractor tries three strategies in order and stops at the first hit:

  single-line  "3510 Park Avenue, Paducah, KY 42001" on one line
  two-line     a line ending in a street suffix followed within two lines by "City, ST 12345"
  zip-state    any line with a zip code and a known state code

When the parts can be told apart the decomposed fields are filled; otherwise the
matched line is returned as a single free-text address. A country is only reported
when the text names one.`,
		Patterns: []string{
			"Street suffixes: Street, Ave, Road, Dr, Lane, Blvd, Ct, Pl, Way, Cir, Pkwy, Trail",
			"Units: Suite, Ste, Apt, Unit, Floor, #",
			"Zip: 12345 or 12345-6789",
		},
		Examples: []string{
			"3510 Park Avenue / Paducah, KY 42001  -> street, city, state, zipCode",
		},
	}
}
