// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// DebugObserver provides detailed step-by-step debugging
type DebugObserver struct {
	*StandardObserver
	indent int
}

// NewDebugObserver creates a debug observer with step-by-step logging
func NewDebugObserver(writer io.Writer) *DebugObserver {
	return &DebugObserver{
		StandardObserver: NewStandardObserver(ObservabilityDebug, writer),
		indent:           0,
	}
}

// NewObserver builds the observer for the CLI flags: off, metrics when
// verbose, and a standard observer with an attached debug observer in debug
// mode.
func NewObserver(verbose, debug bool, writer io.Writer) *StandardObserver {
	switch {
	case debug:
		d := NewDebugObserver(writer)
		d.StandardObserver.DebugObserver = d
		return d.StandardObserver
	case verbose:
		return NewStandardObserver(ObservabilityMetrics, writer)
	}
	return NewStandardObserver(ObservabilityOff, writer)
}

// StartStep begins a processing step with indentation
func (d *DebugObserver) StartStep(component, step, source string) func(success bool, details string) {
	start := time.Now()

	d.mu.Lock()
	fmt.Fprintf(d.writer, "%s🔄 %s: %s (%s)\n", strings.Repeat("  ", d.indent), component, step, source)
	d.indent++
	d.mu.Unlock()

	return func(success bool, details string) {
		duration := time.Since(start)

		d.mu.Lock()
		defer d.mu.Unlock()
		d.indent--
		indentStr := strings.Repeat("  ", max(d.indent, 0))

		if success {
			fmt.Fprintf(d.writer, "%s✅ %s: %s completed (%dms) %s\n",
				indentStr, component, step, duration.Milliseconds(), details)
		} else {
			fmt.Fprintf(d.writer, "%s❌ %s: %s failed (%dms) %s\n",
				indentStr, component, step, duration.Milliseconds(), details)
		}
	}
}

// LogDetail logs a detail within the current step
func (d *DebugObserver) LogDetail(component, detail string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.writer, "%s   → %s: %s\n", strings.Repeat("  ", d.indent), component, detail)
}

// LogMetric logs a metric value
func (d *DebugObserver) LogMetric(component, metric string, value interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.writer, "%s   📊 %s: %s = %v\n", strings.Repeat("  ", d.indent), component, metric, value)
}
