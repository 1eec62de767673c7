// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package contact

import (
	"fmt"
	"strings"
)

// Layout identifies which input layout the classifier should assume.
type Layout string

const (
	LayoutAuto      Layout = "auto"
	LayoutSignature Layout = "signature"
	LayoutProfile   Layout = "profile"
)

// ParseLayout converts a user supplied layout name. The empty string means auto.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return LayoutAuto, nil
	case "signature", "email-signature", "email":
		return LayoutSignature, nil
	case "profile", "linkedin-profile", "linkedin":
		return LayoutProfile, nil
	}
	return LayoutAuto, fmt.Errorf("unknown layout %q (expected auto, signature or profile)", s)
}

// Result is the outcome of one engine run.
type Result struct {
	Record Record `json:"contact" yaml:"contact"`

	// Layout is the layout actually used, after auto-detection.
	Layout Layout `json:"layout" yaml:"layout"`

	// Warnings are advisory notes for a reviewer, e.g. a rejected profile link.
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}
