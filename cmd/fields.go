// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"contact-scan/internal/core"
	"contact-scan/internal/help"
)

// Run executes the fields command.
func (c *FieldsCmd) Run(deps *Dependencies) error {
	stages := core.BuildExtractors(deps.Config)

	noColor := c.NoColor || deps.Config.Defaults.NoColor || !isTerminal(deps.Stdout)
	system := help.NewSystem(deps.Stdout, noColor, stages.Scorer.Rules())
	for _, provider := range stages.HelpProviders() {
		system.RegisterProvider(provider)
	}

	if c.Name == "" {
		system.ShowFieldsHelp()
		return nil
	}
	if !system.ShowFieldHelp(c.Name) {
		return fmt.Errorf("unknown extractor '%s'", c.Name)
	}
	return nil
}
