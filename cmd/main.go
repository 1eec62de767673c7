// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"contact-scan/internal/config"

	"github.com/alecthomas/kong"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Standard input, read for the "-" source. Set before calling Run().
	Stdin io.Reader

	// Config is the configuration in effect after Run() loaded it.
	Config *config.Config
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin: os.Stdin,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Help output ends in kong's exit hook; remember it instead of exiting
	exited := false
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("contact-scan"),
		kong.Description("Extract structured contact records from OCR text of email signatures and profile pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }),
		kong.UsageOnError(),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 || args[0] == "help" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if exited {
		return nil
	}
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfigOrDefault(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(stderr, "Using default configuration\n")
	}
	if cli.Profile != "" {
		cfg, err = cfg.WithProfile(cli.Profile)
		if err != nil {
			return err
		}
	}
	m.Config = cfg
	deps.Config = cfg

	return kongCtx.Run(deps)
}
