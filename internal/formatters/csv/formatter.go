// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"encoding/csv"
	"fmt"
	"strings"

	"contact-scan/internal/contact"
	"contact-scan/internal/formatters"
)

// Formatter implements CSV output formatting
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Comma-separated values for spreadsheet or address book import"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

// Format writes one row per source with a column per field. Confidence
// columns follow the fields with ShowConfidence or Verbose.
func (f *Formatter) Format(entries []formatters.Entry, options formatters.FormatterOptions) (string, error) {
	showConfidence := options.ShowConfidence || options.Verbose

	headers := []string{"source", "layout"}
	headers = append(headers, contact.FieldOrder...)
	if showConfidence {
		for _, field := range contact.FieldOrder {
			headers = append(headers, field+"Confidence")
		}
	}
	headers = append(headers, "warnings", "error")
	if options.ShowRaw {
		headers = append(headers, "rawText")
	}

	var builder strings.Builder
	w := csv.NewWriter(&builder)
	if err := w.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, e := range entries {
		if err := w.Write(f.createCSVRow(e, showConfidence, options.ShowRaw)); err != nil {
			return "", fmt.Errorf("error writing CSV row for %s: %w", e.Source, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("error writing CSV: %w", err)
	}
	return builder.String(), nil
}

func (f *Formatter) createCSVRow(e formatters.Entry, showConfidence, showRaw bool) []string {
	rec := e.Result.Record
	row := []string{e.Source, string(e.Result.Layout)}
	for _, field := range contact.FieldOrder {
		row = append(row, rec.Get(field))
	}
	if showConfidence {
		for _, field := range contact.FieldOrder {
			score := ""
			if v, ok := rec.Confidence[field]; ok {
				score = fmt.Sprintf("%.2f", v)
			}
			row = append(row, score)
		}
	}

	errText := ""
	if e.Err != nil {
		errText = e.Err.Error()
	}
	row = append(row, strings.Join(e.Result.Warnings, "; "), errText)
	if showRaw {
		row = append(row, rec.RawText)
	}
	return row
}

func init() {
	formatters.Register(NewFormatter())
}
