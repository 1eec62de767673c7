// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"io"
	"os"

	"contact-scan/internal/config"

	"golang.org/x/term"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Config *config.Config
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"c" type:"path" env:"CONTACT_SCAN_CONFIG" help:"Configuration file (default: search standard locations)"`
	Profile string `short:"p" help:"Configuration profile to apply"`

	Extract ExtractCmd `cmd:"" default:"withargs" help:"Extract contact records from text or PDF sources"`
	Fields  FieldsCmd  `cmd:"" help:"Describe the extracted fields and how they are scored"`
	Formats FormatsCmd `cmd:"" help:"List the available output formats"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// ExtractCmd is the "extract" subcommand. Unset flags fall back to the
// configuration defaults.
type ExtractCmd struct {
	Sources        []string `arg:"" optional:"" help:"Text or PDF files, directories, or - for stdin (default: stdin)"`
	Format         string   `short:"f" help:"Output format: text, json, yaml or csv"`
	Layout         string   `short:"l" help:"Input layout: auto, signature or profile"`
	Output         string   `short:"o" help:"Write results to this file instead of stdout"`
	Workers        int      `short:"w" help:"Sources processed concurrently (default: CPU count, at most 8)"`
	Recursive      bool     `short:"r" help:"Descend into subdirectories"`
	ShowRaw        bool     `help:"Include the raw input text"`
	ShowConfidence bool     `help:"Show per-field confidence"`
	Verbose        bool     `short:"v" help:"Show warnings, confidence and progress"`
	Debug          bool     `help:"Trace each pipeline step on stderr"`
	NoColor        bool     `help:"Disable colored output"`
}

// FieldsCmd is the "fields" subcommand.
type FieldsCmd struct {
	Name    string `arg:"" optional:"" help:"Extractor to describe in detail"`
	NoColor bool   `help:"Disable colored output"`
}

// FormatsCmd is the "formats" subcommand.
type FormatsCmd struct{}

// VersionCmd is the "version" subcommand.
type VersionCmd struct {
	Short bool `help:"Print only the version number"`
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
