// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartTiming_Debug(t *testing.T) {
	var buf bytes.Buffer
	o := NewStandardObserver(ObservabilityDebug, &buf)

	done := o.StartTiming("engine", "extract", "card.txt")
	done(true, map[string]interface{}{"match_count": 3, "content_length": 120})

	var data StandardObservabilityData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.Equal(t, "engine", data.Component)
	assert.Equal(t, "extract", data.Operation)
	assert.Equal(t, "card.txt", data.Source)
	assert.Equal(t, 3, data.MatchCount)
	assert.Equal(t, 120, data.ContentLength)
	assert.True(t, data.Success)
	assert.True(t, strings.HasPrefix(data.RequestID, "req-"))
}

func TestLogOperation_UniqueRequestIDs(t *testing.T) {
	var buf bytes.Buffer
	o := NewStandardObserver(ObservabilityDebug, &buf)
	o.LogOperation(StandardObservabilityData{Component: "a"})
	o.LogOperation(StandardObservabilityData{Component: "b"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	var first, second StandardObservabilityData
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.NotEqual(t, first.RequestID, second.RequestID)
}

func TestQuietLevels(t *testing.T) {
	var buf bytes.Buffer
	NewStandardObserver(ObservabilityOff, &buf).StartTiming("engine", "extract", "")(true, nil)
	NewStandardObserver(ObservabilityMetrics, &buf).StartTiming("engine", "extract", "")(true, nil)
	assert.Empty(t, buf.String())

	var nilObserver *StandardObserver
	assert.NotPanics(t, func() { nilObserver.StartTiming("engine", "extract", "")(false, nil) })
	assert.Equal(t, ObservabilityOff, nilObserver.Level())
}

func TestNewObserver(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, ObservabilityOff, NewObserver(false, false, &buf).Level())
	assert.Equal(t, ObservabilityMetrics, NewObserver(true, false, &buf).Level())

	o := NewObserver(false, true, &buf)
	assert.Equal(t, ObservabilityDebug, o.Level())
	require.NotNil(t, o.DebugObserver)
}

func TestDebugObserver_Steps(t *testing.T) {
	var buf bytes.Buffer
	d := NewDebugObserver(&buf)

	finish := d.StartStep("engine", "extract", "card.txt")
	d.LogDetail("email", "strategy strict")
	d.LogMetric("phone", "matches", 2)
	finish(true, "6 fields")

	out := buf.String()
	assert.Contains(t, out, "engine: extract (card.txt)")
	assert.Contains(t, out, "  → email: strategy strict")
	assert.Contains(t, out, "phone: matches = 2")
	assert.Contains(t, out, "engine: extract completed")
	assert.Equal(t, 0, d.indent)
}
