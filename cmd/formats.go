// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"text/tabwriter"

	"contact-scan/internal/formatters"
)

// Run executes the formats command.
func (c *FormatsCmd) Run(deps *Dependencies) error {
	w := tabwriter.NewWriter(deps.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FORMAT\tEXTENSION\tMIME TYPE\tDESCRIPTION")
	for _, info := range formatters.GetSupportedFormats() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", info.Name, info.Extension, info.MimeType, info.Description)
	}
	return w.Flush()
}
