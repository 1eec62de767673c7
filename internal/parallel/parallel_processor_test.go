// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package parallel

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contact-scan/internal/contact"
)

type upperExtractor struct {
	active, peak atomic.Int32
}

func (u *upperExtractor) Extract(text string, layout contact.Layout) contact.Result {
	n := u.active.Add(1)
	defer u.active.Add(-1)
	for {
		p := u.peak.Load()
		if n <= p || u.peak.CompareAndSwap(p, n) {
			break
		}
	}
	return contact.Result{Record: contact.Record{FullName: strings.ToUpper(text), RawText: text}, Layout: layout}
}

type mapLoader map[string]string

func (m mapLoader) Load(_ context.Context, source string) (string, error) {
	text, ok := m[source]
	if !ok {
		return "", fmt.Errorf("failed to read %s: %w", source, errors.New("not found"))
	}
	return text, nil
}

func TestProcess_KeepsInputOrder(t *testing.T) {
	ex := &upperExtractor{}
	pp := NewParallelProcessor(ex, nil, 3, nil)

	var jobs []Job
	for i := 0; i < 50; i++ {
		jobs = append(jobs, Job{Source: fmt.Sprintf("block-%d", i), Text: fmt.Sprintf("name %d", i)})
	}

	results, stats, err := pp.Process(context.Background(), jobs, contact.LayoutSignature, nil)
	require.NoError(t, err)
	require.Len(t, results, 50)
	for i, r := range results {
		assert.Equal(t, fmt.Sprintf("NAME %d", i), r.Result.Record.FullName)
		assert.Equal(t, fmt.Sprintf("job_%d", i), r.JobID)
		assert.Equal(t, contact.LayoutSignature, r.Result.Layout)
	}
	assert.Equal(t, 50, stats.ProcessedJobs)
	assert.Equal(t, 0, stats.FailedJobs)
	assert.Equal(t, 3, stats.WorkerCount)
	assert.LessOrEqual(t, ex.peak.Load(), int32(3))
}

func TestProcess_LoaderErrorsDoNotStopBatch(t *testing.T) {
	pp := NewParallelProcessor(&upperExtractor{}, mapLoader{"a.txt": "ann lee"}, 2, nil)

	results, stats, err := pp.Process(context.Background(), []Job{
		{Source: "a.txt"},
		{Source: "missing.txt"},
		{Source: "inline", Text: "bo chan"},
	}, contact.LayoutAuto, nil)

	require.NoError(t, err)
	assert.Equal(t, "ANN LEE", results[0].Result.Record.FullName)
	assert.ErrorContains(t, results[1].Error, "missing.txt")
	assert.Equal(t, "BO CHAN", results[2].Result.Record.FullName)
	assert.Equal(t, 2, stats.ProcessedJobs)
	assert.Equal(t, 1, stats.FailedJobs)
}

func TestProcess_Progress(t *testing.T) {
	pp := NewParallelProcessor(&upperExtractor{}, nil, 4, nil)

	var mu sync.Mutex
	var seen []int
	_, _, err := pp.Process(context.Background(), []Job{{Text: "a"}, {Text: "b"}, {Text: "c"}}, contact.LayoutAuto,
		func(completed, total int, _ string) {
			mu.Lock()
			defer mu.Unlock()
			assert.Equal(t, 3, total)
			seen = append(seen, completed)
		})

	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2, 3}, seen)
}

func TestProcess_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pp := NewParallelProcessor(&upperExtractor{}, nil, 1, nil)
	results, stats, err := pp.Process(ctx, []Job{{Text: "a"}, {Text: "b"}}, contact.LayoutAuto, nil)

	require.ErrorIs(t, err, context.Canceled)
	assert.Len(t, results, 2)
	assert.Equal(t, 0, stats.ProcessedJobs)
}

func TestDefaultWorkers(t *testing.T) {
	w := DefaultWorkers()
	assert.GreaterOrEqual(t, w, 1)
	assert.LessOrEqual(t, w, 8)
	assert.Equal(t, w, NewParallelProcessor(&upperExtractor{}, nil, 0, nil).Workers())
}
