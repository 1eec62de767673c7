// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"contact-scan/internal/contact"
	"contact-scan/internal/formatters"
	"contact-scan/internal/formatters/shared"

	"github.com/fatih/color"
)

var fieldLabels = map[string]string{
	contact.FieldFullName:    "Name",
	contact.FieldFirstName:   "First name",
	contact.FieldLastName:    "Last name",
	contact.FieldTitle:       "Title",
	contact.FieldCompany:     "Company",
	contact.FieldHeadline:    "Headline",
	contact.FieldEmail:       "Email",
	contact.FieldMobilePhone: "Mobile",
	contact.FieldWorkPhone:   "Work phone",
	contact.FieldHomePhone:   "Home phone",
	contact.FieldLinkedIn:    "LinkedIn",
	contact.FieldWebsite:     "Website",
	contact.FieldAddress:     "Address",
	contact.FieldStreet:      "Street",
	contact.FieldCity:        "City",
	contact.FieldState:       "State",
	contact.FieldZipCode:     "Zip",
	contact.FieldCountry:     "Country",
	contact.FieldLocation:    "Location",
}

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"yellow": color.New(color.FgYellow),
			"red":    color.New(color.FgRed),
			"cyan":   color.New(color.FgCyan),
			"blue":   color.New(color.FgBlue, color.Bold),
			"white":  color.New(color.FgWhite, color.Bold),
			"faint":  color.New(color.Faint),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(entries []formatters.Entry, options formatters.FormatterOptions) (string, error) {
	// Disable colors if requested
	if options.NoColor {
		color.NoColor = true
	}

	var builder strings.Builder
	for i, e := range entries {
		if i > 0 {
			builder.WriteString("\n")
		}
		f.appendEntry(&builder, e, len(entries) > 1, options)
	}
	return builder.String(), nil
}

func (f *Formatter) appendEntry(builder *strings.Builder, e formatters.Entry, withHeader bool, options formatters.FormatterOptions) {
	if withHeader || options.Verbose {
		header := "== " + e.Source
		if e.Err == nil && e.Result.Layout != "" {
			header += " (" + string(e.Result.Layout) + ")"
		}
		builder.WriteString(f.colors["blue"].Sprint(header+" ==") + "\n")
	}

	if e.Err != nil {
		builder.WriteString(f.colors["red"].Sprintf("  error: %v", e.Err) + "\n")
		return
	}

	rec := e.Result.Record
	fields := rec.Populated()
	if len(fields) == 0 {
		builder.WriteString("No contact fields found.\n")
	}

	width := 0
	for _, field := range fields {
		width = max(width, utf8.RuneCountInString(fieldLabels[field]))
	}

	showConfidence := options.ShowConfidence || options.Verbose
	for _, field := range fields {
		label := fmt.Sprintf("%-*s", width, fieldLabels[field])
		line := f.colors["white"].Sprint(label) + "  " + rec.Get(field)
		if score, ok := rec.Confidence[field]; ok && showConfidence {
			line += "  " + f.levelColor(score).Sprintf("[%s %.0f%%]", shared.GetConfidenceLevel(score), score*100)
		}
		builder.WriteString(line + "\n")
	}

	if len(e.Result.Warnings) > 0 && options.Verbose {
		builder.WriteString(f.colors["yellow"].Sprint("Warnings:") + "\n")
		for _, w := range e.Result.Warnings {
			builder.WriteString(f.colors["yellow"].Sprint("  ! "+w) + "\n")
		}
	}

	if options.ShowRaw && rec.RawText != "" {
		builder.WriteString(f.colors["cyan"].Sprint("Raw text:") + "\n")
		for _, line := range strings.Split(strings.TrimRight(rec.RawText, "\r\n"), "\n") {
			builder.WriteString(f.colors["faint"].Sprint("  | "+strings.TrimRight(line, "\r")) + "\n")
		}
	}
}

func (f *Formatter) levelColor(score float64) *color.Color {
	switch shared.GetConfidenceLevel(score) {
	case "HIGH":
		return f.colors["green"]
	case "MEDIUM":
		return f.colors["yellow"]
	default:
		return f.colors["red"]
	}
}

func init() {
	formatters.Register(NewFormatter())
}
