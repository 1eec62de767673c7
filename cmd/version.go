// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"contact-scan/internal/version"
)

// Run executes the version command.
func (c *VersionCmd) Run(deps *Dependencies) error {
	if c.Short {
		fmt.Fprintln(deps.Stdout, version.Short())
		return nil
	}
	fmt.Fprintln(deps.Stdout, version.Info())
	return nil
}
