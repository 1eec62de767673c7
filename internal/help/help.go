// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"contact-scan/internal/config"

	"github.com/fatih/color"
)

// FieldInfo contains standardized information about an extractor and the
// record fields it fills
type FieldInfo struct {
	Name                string   // Name of the extractor (e.g., "PHONE")
	Fields              []string // Record fields it populates (e.g., "mobilePhone")
	ShortDescription    string   // Short description for the fields list
	DetailedDescription string   // Detailed description of what the extractor does
	Patterns            []string // Patterns the extractor looks for
	Rules               []string // Acceptance rules applied after matching
	Keywords            []string // Context keywords that influence the result
	ConfigurationInfo   string   // Information about how to configure the extractor
	Examples            []string // Input/output examples
}

// Provider defines the interface for help content providers
type Provider interface {
	GetFieldInfo() FieldInfo
}

// System manages help content for the application
type System struct {
	out        io.Writer
	providers  map[string]Provider
	confidence map[string]config.ScoreRule
	colors     map[string]*color.Color
}

// NewSystem creates a new help system writing to out. The confidence table is
// shown next to every field.
func NewSystem(out io.Writer, noColor bool, confidence map[string]config.ScoreRule) *System {
	// Disable colors if requested
	if noColor {
		color.NoColor = true
	}

	return &System{
		out:        out,
		providers:  make(map[string]Provider),
		confidence: confidence,
		colors: map[string]*color.Color{
			"title":    color.New(color.FgWhite, color.Bold),
			"header":   color.New(color.FgBlue, color.Bold),
			"item":     color.New(color.FgCyan),
			"emphasis": color.New(color.FgWhite, color.Bold),
			"positive": color.New(color.FgGreen),
			"negative": color.New(color.FgRed),
			"warning":  color.New(color.FgYellow),
			"example":  color.New(color.FgMagenta),
		},
	}
}

// RegisterProvider adds a help provider to the system
func (h *System) RegisterProvider(provider Provider) {
	info := provider.GetFieldInfo()
	h.providers[strings.ToLower(info.Name)] = provider
}

// names returns the registered extractor names in alphabetical order
func (h *System) names() []string {
	names := make([]string, 0, len(h.providers))
	for _, provider := range h.providers {
		names = append(names, provider.GetFieldInfo().Name)
	}
	sort.Strings(names)
	return names
}

// ShowFieldsHelp lists every extractor with the fields it fills
func (h *System) ShowFieldsHelp() {
	h.colors["title"].Fprintln(h.out, "Extracted Contact Fields")
	fmt.Fprintln(h.out, "========================")
	fmt.Fprintln(h.out)

	w := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	h.colors["header"].Fprintln(w, "  EXTRACTOR\tFIELDS\tDESCRIPTION")
	h.colors["header"].Fprintln(w, "  ---------\t------\t-----------")
	for _, name := range h.names() {
		info := h.providers[strings.ToLower(name)].GetFieldInfo()
		fmt.Fprint(w, "  ")
		h.colors["emphasis"].Fprint(w, info.Name)
		fmt.Fprintf(w, "\t%s\t%s\n", strings.Join(info.Fields, ", "), info.ShortDescription)
	}
	w.Flush()

	fmt.Fprintln(h.out)
	fmt.Fprintln(h.out, "For detailed information about an extractor, use:")
	h.colors["example"].Fprintln(h.out, "  contact-scan fields <extractor>")
}

// ShowFieldHelp displays detailed help for one extractor. It returns false
// when the name is unknown.
func (h *System) ShowFieldHelp(name string) bool {
	provider, exists := h.providers[strings.ToLower(name)]
	if !exists {
		h.colors["negative"].Fprintf(h.out, "Error: extractor '%s' not found.\n", name)
		fmt.Fprintln(h.out, "Use 'contact-scan fields' to see the available extractors.")
		return false
	}

	info := provider.GetFieldInfo()

	h.colors["title"].Fprintf(h.out, "%s Extractor\n", info.Name)
	fmt.Fprintln(h.out, strings.Repeat("=", len(info.Name)+10))
	fmt.Fprintln(h.out)
	fmt.Fprintln(h.out, info.DetailedDescription)
	fmt.Fprintln(h.out)

	h.list("PATTERNS:", info.Patterns)
	h.list("ACCEPTANCE RULES:", info.Rules)

	if len(info.Keywords) > 0 {
		h.colors["header"].Fprintln(h.out, "CONTEXT KEYWORDS:")
		fmt.Fprint(h.out, "  ")
		h.colors["positive"].Fprintln(h.out, strings.Join(info.Keywords, ", "))
		fmt.Fprintln(h.out)
	}

	h.colors["header"].Fprintln(h.out, "CONFIDENCE:")
	w := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	for _, field := range info.Fields {
		rule, ok := h.confidence[field]
		if !ok {
			fmt.Fprintf(w, "  %s\tnot scored\n", field)
			continue
		}
		fmt.Fprintf(w, "  %s\t", field)
		h.colors["positive"].Fprintf(w, "%.2f", rule.Base)
		fmt.Fprint(w, " when the check passes, ")
		h.colors["warning"].Fprintf(w, "%.2f", rule.Degraded)
		fmt.Fprintln(w, " otherwise")
	}
	w.Flush()
	fmt.Fprintln(h.out)

	if info.ConfigurationInfo != "" {
		h.colors["header"].Fprintln(h.out, "CONFIGURATION:")
		fmt.Fprintln(h.out, info.ConfigurationInfo)
		fmt.Fprintln(h.out)
	}

	if len(info.Examples) > 0 {
		h.colors["header"].Fprintln(h.out, "EXAMPLES:")
		for _, example := range info.Examples {
			fmt.Fprint(h.out, "  ")
			h.colors["example"].Fprintln(h.out, example)
		}
	}

	return true
}

func (h *System) list(header string, items []string) {
	if len(items) == 0 {
		return
	}
	h.colors["header"].Fprintln(h.out, header)
	for _, item := range items {
		fmt.Fprint(h.out, "  - ")
		h.colors["item"].Fprintln(h.out, item)
	}
	fmt.Fprintln(h.out)
}
