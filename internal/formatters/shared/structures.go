// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package shared

import (
	"contact-scan/internal/contact"
	"contact-scan/internal/formatters"
)

// JSONResponse represents the top-level response structure for JSON/YAML output
type JSONResponse struct {
	Results []JSONContact `json:"results" yaml:"results"`
}

// JSONContact represents a single source in JSON/YAML format
type JSONContact struct {
	Source   string         `json:"source" yaml:"source"`
	Layout   contact.Layout `json:"layout,omitempty" yaml:"layout,omitempty"`
	Contact  contact.Record `json:"contact" yaml:"contact"`
	Warnings []string       `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Error    string         `json:"error,omitempty" yaml:"error,omitempty"`
}

// GetConfidenceLevel returns the confidence level of a field score as a string
func GetConfidenceLevel(confidence float64) string {
	switch {
	case confidence >= 0.9:
		return "HIGH"
	case confidence >= 0.6:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

// ConvertEntriesToJSONFormat converts entries to the JSON/YAML structure.
// RawText is kept only with ShowRaw and confidence only with ShowConfidence
// or Verbose.
func ConvertEntriesToJSONFormat(entries []formatters.Entry, options formatters.FormatterOptions) JSONResponse {
	response := JSONResponse{Results: make([]JSONContact, 0, len(entries))}
	for _, e := range entries {
		item := JSONContact{Source: e.Source}
		if e.Err != nil {
			item.Error = e.Err.Error()
			response.Results = append(response.Results, item)
			continue
		}

		rec := e.Result.Record.Clone()
		if !options.ShowRaw {
			rec.RawText = ""
		}
		if !options.ShowConfidence && !options.Verbose {
			rec.Confidence = nil
		}
		item.Layout = e.Result.Layout
		item.Contact = rec
		item.Warnings = e.Result.Warnings
		response.Results = append(response.Results, item)
	}
	return response
}
