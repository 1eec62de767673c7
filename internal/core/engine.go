// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package core wires the extraction stages into the contact engine.
package core

import (
	"context"
	"fmt"
	"strings"

	"contact-scan/internal/classifier"
	"contact-scan/internal/config"
	"contact-scan/internal/contact"
	"contact-scan/internal/normalize"
	"contact-scan/internal/observability"
	"contact-scan/internal/parallel"
	"contact-scan/internal/segmenter"
	"contact-scan/internal/validators/email"
	"contact-scan/internal/validators/phone"
	"contact-scan/internal/validators/website"
)

// Engine turns one block of OCR text into a contact record. It holds no
// per-call state and is safe for concurrent use.
type Engine struct {
	cfg      *config.Config
	stages   *Extractors
	observer *observability.StandardObserver
}

// NewEngine builds an engine from cfg (nil for defaults). observer may be nil.
func NewEngine(cfg *config.Config, observer *observability.StandardObserver) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Engine{
		cfg:      cfg,
		stages:   BuildExtractors(cfg),
		observer: observer,
	}
}

// Extractors returns the stages the engine runs
func (e *Engine) Extractors() *Extractors {
	return e.stages
}

// Extract runs the pipeline on text. It never fails: text without any
// recognizable field yields a record holding only RawText.
func (e *Engine) Extract(text string, layout contact.Layout) (result contact.Result) {
	finishTiming := e.observer.StartTiming("engine", "extract", "text")

	defer func() {
		if r := recover(); r != nil {
			result = contact.Result{
				Record:   contact.Record{RawText: text},
				Layout:   layout,
				Warnings: []string{fmt.Sprintf("extraction aborted: %v", r)},
			}
			finishTiming(false, map[string]interface{}{"content_length": len(text)})
		}
	}()

	result = e.extract(text, layout)

	finishTiming(true, map[string]interface{}{
		"content_length": len(text),
		"match_count":    len(result.Record.Populated()),
		"layout":         string(result.Layout),
		"warnings":       len(result.Warnings),
	})
	return result
}

func (e *Engine) extract(text string, layout contact.Layout) contact.Result {
	s := e.stages
	rec := contact.Record{RawText: text}
	var warnings []string

	done := e.step("segment")
	norm := segmenter.Normalize(text)
	// Profile links are read from norm only; every other stage sees the text
	// without them.
	scrubbed := norm
	for _, loc := range reverse(s.Profile.FindAll(norm)) {
		scrubbed = scrubbed[:loc[0]] + scrubbed[loc[1]:]
	}
	lines := segmenter.Lines(scrubbed)
	done(true, fmt.Sprintf("%d lines", len(lines)))

	done = e.step("extract")
	if found, ok := s.Email.Extract(scrubbed); ok {
		rec.Email = found.Email
		e.detail("email", "strategy "+found.Strategy)
	}
	phones := s.Phone.Extract(scrubbed)
	if site, ok := s.Website.Extract(scrubbed, email.Domain(rec.Email)); ok {
		rec.Website = site.URL
	}
	addr, hasAddress := s.Address.Extract(lines)
	if hasAddress {
		e.detail("address", "strategy "+addr.Strategy)
		if addr.Decomposed() {
			rec.Street, rec.City, rec.State, rec.ZipCode, rec.Country = addr.Street, addr.City, addr.State, addr.ZipCode, addr.Country
		} else {
			rec.Address = addr.Line
		}
	}
	e.metric("phone", "matches", len(phones))
	done(true, "")

	done = e.step("classify")
	claims := make(map[int]classifier.Claim)
	for i, line := range lines {
		var c classifier.Claim
		if strings.Contains(line, "@") || email.Contains(line) {
			c |= classifier.ClaimEmail
		}
		if phone.Contains(line) {
			c |= classifier.ClaimPhone
		}
		if len(website.Candidates(line)) > 0 {
			c |= classifier.ClaimURL
		}
		if c != 0 {
			claims[i] = c
		}
	}
	for _, i := range addr.Lines {
		claims[i] |= classifier.ClaimAddress
	}

	if layout == contact.LayoutAuto || layout == "" {
		layout = s.Classifier.DetectLayout(scrubbed)
	}
	cls := s.Classifier.Classify(classifier.Input{Lines: lines, Claims: claims}, layout)
	rec.FullName, rec.FirstName, rec.LastName = cls.FullName, cls.FirstName, cls.LastName
	rec.Title, rec.Company = cls.Title, cls.Company
	rec.Headline, rec.Location = cls.Headline, cls.Location
	done(true, string(cls.Layout))

	done = e.step("profile_link")
	link, ok, rejections := s.Profile.Extract(norm, rec.FullName)
	if ok {
		rec.LinkedIn = link.URL
	}
	for _, r := range rejections {
		warnings = append(warnings, r.Warning())
	}
	done(true, fmt.Sprintf("%d rejected", len(rejections)))

	done = e.step("resolve_phones")
	assigned := s.Resolver.Resolve(scrubbed, phones)
	rec.MobilePhone, rec.WorkPhone, rec.HomePhone = assigned.Mobile, assigned.Work, assigned.Home
	warnings = append(warnings, assigned.Warnings...)
	done(true, "")

	done = e.step("score")
	rec.Confidence = s.Scorer.Score(&rec)
	done(true, fmt.Sprintf("%d fields", len(rec.Confidence)))

	return contact.Result{
		Record:   normalize.Record(rec),
		Layout:   cls.Layout,
		Warnings: warnings,
	}
}

// ExtractBatch runs Extract over texts with bounded concurrency. Results keep
// the input order.
func (e *Engine) ExtractBatch(ctx context.Context, texts []string, layout contact.Layout) ([]contact.Result, error) {
	jobs := make([]parallel.Job, len(texts))
	for i, t := range texts {
		jobs[i] = parallel.Job{Source: fmt.Sprintf("block %d", i+1), Text: t}
	}

	pp := parallel.NewParallelProcessor(e, nil, e.cfg.Defaults.Workers, e.observer)
	results, _, err := pp.Process(ctx, jobs, layout, nil)
	if err != nil {
		return nil, err
	}

	out := make([]contact.Result, len(results))
	for i, r := range results {
		out[i] = r.Result
	}
	return out, nil
}

func (e *Engine) step(name string) func(bool, string) {
	if e.observer == nil || e.observer.DebugObserver == nil {
		return func(bool, string) {}
	}
	return e.observer.DebugObserver.StartStep("engine", name, "text")
}

func (e *Engine) detail(component, detail string) {
	if e.observer != nil && e.observer.DebugObserver != nil {
		e.observer.DebugObserver.LogDetail(component, detail)
	}
}

func (e *Engine) metric(component, metric string, value interface{}) {
	if e.observer != nil && e.observer.DebugObserver != nil {
		e.observer.DebugObserver.LogMetric(component, metric, value)
	}
}

func reverse(spans [][]int) [][]int {
	out := make([][]int, len(spans))
	for i, s := range spans {
		out[len(spans)-1-i] = s
	}
	return out
}
