// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package parallel runs the extraction engine over a batch of text blocks
// with bounded concurrency.
package parallel

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"contact-scan/internal/contact"
	"contact-scan/internal/observability"
)

// Extractor turns one text block into a contact result
type Extractor interface {
	Extract(text string, layout contact.Layout) contact.Result
}

// Loader reads the text of a job that was submitted by source name only
type Loader interface {
	Load(ctx context.Context, source string) (string, error)
}

// Job is one text block to process. When Text is empty and the processor
// has a Loader, the text is read from Source.
type Job struct {
	ID     string
	Source string
	Text   string
}

// Result is the outcome of one job
type Result struct {
	JobID    string
	Source   string
	Result   contact.Result
	Error    error
	Duration time.Duration
}

// ProcessingStats tracks parallel processing statistics
type ProcessingStats struct {
	TotalJobs     int           `json:"total_jobs"`
	ProcessedJobs int           `json:"processed_jobs"`
	FailedJobs    int           `json:"failed_jobs"`
	TotalFields   int           `json:"total_fields"`
	TotalDuration time.Duration `json:"total_duration_ms"`
	WorkerCount   int           `json:"worker_count"`
	AvgJobTime    time.Duration `json:"avg_job_time_ms"`
}

// ProgressCallback is called when a job is completed
type ProgressCallback func(completed, total int, source string)

// ParallelProcessor fans jobs out to a bounded number of goroutines
type ParallelProcessor struct {
	extractor Extractor
	loader    Loader
	workers   int
	observer  *observability.StandardObserver
}

// DefaultWorkers returns the worker count used when none is configured
func DefaultWorkers() int {
	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8 // Cap at 8 workers to avoid resource exhaustion
	}
	return workers
}

// NewParallelProcessor creates a processor. workers <= 0 selects DefaultWorkers.
func NewParallelProcessor(extractor Extractor, loader Loader, workers int, observer *observability.StandardObserver) *ParallelProcessor {
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	return &ParallelProcessor{
		extractor: extractor,
		loader:    loader,
		workers:   workers,
		observer:  observer,
	}
}

// Workers returns the concurrency limit
func (pp *ParallelProcessor) Workers() int {
	return pp.workers
}

// Process runs every job and returns the results in input order. A failed
// job is reported in its Result and does not stop the batch. Cancelling ctx
// stops scheduling further jobs and returns ctx's error.
func (pp *ParallelProcessor) Process(ctx context.Context, jobs []Job, layout contact.Layout, progress ProgressCallback) ([]Result, *ProcessingStats, error) {
	start := time.Now()
	finishTiming := pp.observer.StartTiming("parallel_processor", "process_batch", "batch")

	results := make([]Result, len(jobs))
	var mu sync.Mutex
	completed := 0

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(pp.workers)

	for i, job := range jobs {
		i, job := i, job
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = pp.run(gCtx, i, job, layout)

			mu.Lock()
			completed++
			done := completed
			mu.Unlock()
			if progress != nil {
				progress(done, len(jobs), job.Source)
			}
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	stats := &ProcessingStats{
		TotalJobs:     len(jobs),
		TotalDuration: time.Since(start),
		WorkerCount:   pp.workers,
	}
	var busy time.Duration
	for _, r := range results {
		busy += r.Duration
		switch {
		case r.Error != nil:
			stats.FailedJobs++
		case r.JobID != "":
			stats.ProcessedJobs++
			stats.TotalFields += len(r.Result.Record.Populated())
		}
	}
	stats.AvgJobTime = busy / time.Duration(max(stats.ProcessedJobs+stats.FailedJobs, 1))

	finishTiming(err == nil, map[string]interface{}{
		"total_jobs":     stats.TotalJobs,
		"processed_jobs": stats.ProcessedJobs,
		"failed_jobs":    stats.FailedJobs,
		"worker_count":   pp.workers,
	})

	if err != nil {
		return results, stats, fmt.Errorf("batch cancelled: %w", err)
	}
	return results, stats, nil
}

func (pp *ParallelProcessor) run(ctx context.Context, i int, job Job, layout contact.Layout) Result {
	start := time.Now()
	id := job.ID
	if id == "" {
		id = fmt.Sprintf("job_%d", i)
	}
	res := Result{JobID: id, Source: job.Source}

	text := job.Text
	if text == "" && pp.loader != nil && job.Source != "" {
		loaded, err := pp.loader.Load(ctx, job.Source)
		if err != nil {
			res.Error = err
			res.Duration = time.Since(start)
			pp.observer.LogOperation(observability.StandardObservabilityData{
				Component: "parallel_processor",
				Operation: "load_source",
				Source:    job.Source,
				Success:   false,
				Error:     err.Error(),
			})
			return res
		}
		text = loaded
	}

	res.Result = pp.extractor.Extract(text, layout)
	res.Duration = time.Since(start)
	return res
}
