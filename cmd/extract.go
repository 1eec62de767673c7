// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"contact-scan/internal/contact"
	"contact-scan/internal/core"
	"contact-scan/internal/formatters"
	_ "contact-scan/internal/formatters/csv"
	_ "contact-scan/internal/formatters/json"
	_ "contact-scan/internal/formatters/text"
	_ "contact-scan/internal/formatters/yaml"
	"contact-scan/internal/observability"
	"contact-scan/internal/parallel"
	"contact-scan/internal/sources"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	cfg := deps.Config
	defaults := cfg.Defaults

	format := firstNonEmpty(c.Format, defaults.Format, "text")
	if _, ok := formatters.Get(format); !ok {
		return fmt.Errorf("unsupported format '%s'. Available formats: %s", format, strings.Join(formatters.List(), ", "))
	}
	layout, err := contact.ParseLayout(firstNonEmpty(c.Layout, defaults.Layout))
	if err != nil {
		return err
	}
	workers := c.Workers
	if workers <= 0 {
		workers = defaults.Workers
	}

	verbose := c.Verbose || defaults.Verbose
	debug := c.Debug || defaults.Debug
	options := formatters.FormatterOptions{
		Verbose:        verbose,
		NoColor:        c.NoColor || defaults.NoColor || c.Output != "" || !isTerminal(deps.Stdout),
		ShowRaw:        c.ShowRaw || defaults.ShowRaw,
		ShowConfidence: c.ShowConfidence,
	}

	srcs, err := sources.Collect(c.Sources, c.Recursive)
	if err != nil {
		return err
	}
	if len(srcs) == 0 {
		fmt.Fprintln(deps.Stderr, "Warning: No files to process")
		return nil
	}

	observer := observability.NewObserver(verbose, debug, deps.Stderr)
	engine := core.NewEngine(cfg, observer)
	reader := sources.NewReader(deps.Stdin, observer)

	jobs := make([]parallel.Job, len(srcs))
	for i, src := range srcs {
		jobs[i] = parallel.Job{Source: src}
	}

	var progress parallel.ProgressCallback
	if verbose && len(jobs) > 1 {
		progress = func(completed, total int, source string) {
			fmt.Fprintf(deps.Stderr, "Processed %d/%d: %s\n", completed, total, displayName(source))
		}
	}

	pp := parallel.NewParallelProcessor(engine, reader, workers, observer)
	results, stats, err := pp.Process(deps.Ctx, jobs, layout, progress)
	if err != nil {
		return err
	}

	entries := make([]formatters.Entry, len(results))
	for i, r := range results {
		entries[i] = formatters.Entry{Source: displayName(r.Source), Result: r.Result, Err: r.Error}
		if r.Error != nil {
			fmt.Fprintf(deps.Stderr, "Warning: Skipping %s: %v\n", displayName(r.Source), r.Error)
		}
	}

	out, err := formatters.Export(format, entries, options)
	if err != nil {
		return fmt.Errorf("error formatting results: %w", err)
	}

	if c.Output != "" {
		if err := writeOutput(c.Output, out); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(deps.Stdout, strings.TrimRight(out, "\n"))
	}

	if verbose {
		fmt.Fprintf(deps.Stderr, "Processed %d sources (%d failed, %d fields) with %d workers in %v\n",
			stats.TotalJobs, stats.FailedJobs, stats.TotalFields, stats.WorkerCount, stats.TotalDuration.Round(time.Millisecond))
	}

	if stats.FailedJobs > 0 {
		return fmt.Errorf("%d of %d sources could not be read", stats.FailedJobs, stats.TotalJobs)
	}
	return nil
}

// writeOutput writes the rendered results to path. Contact data is personal
// information, so the file is readable by the owner only.
func writeOutput(path, content string) error {
	if strings.Contains(path, "..") {
		return fmt.Errorf("path traversal not allowed in output path: %s", path)
	}
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("invalid output file path %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0700); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if err := os.WriteFile(abs, []byte(content), 0600); err != nil {
		return fmt.Errorf("error writing to output file: %w", err)
	}
	return nil
}

func displayName(source string) string {
	if source == sources.Stdin {
		return "stdin"
	}
	return source
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
