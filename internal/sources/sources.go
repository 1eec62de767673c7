// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package sources reads text blocks for the engine from files, stdin and
// PDF documents. OCR happens upstream: image files are refused.
package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"contact-scan/internal/observability"
	"contact-scan/internal/paths"
)

// Stdin is the source name that reads standard input
const Stdin = "-"

// MaxTextSize bounds a single text source
const MaxTextSize = 10 * 1024 * 1024

var (
	// ErrImage is returned for image files; run OCR first and pass the text
	ErrImage = errors.New("image files are not supported: extract the text with an OCR tool first")
	// ErrBinary is returned for files that are not UTF-8 text
	ErrBinary = errors.New("file is not UTF-8 text")
	// ErrTooLarge is returned for sources over MaxTextSize
	ErrTooLarge = errors.New("source exceeds maximum text size")
)

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".bmp": true,
	".tif": true, ".tiff": true, ".webp": true, ".heic": true, ".heif": true,
}

// Reader loads the text of a source. It implements parallel.Loader and is
// safe for concurrent use; stdin is read at most once.
type Reader struct {
	stdin    io.Reader
	pdf      *PDFExtractor
	observer *observability.StandardObserver

	stdinOnce sync.Once
	stdinText string
	stdinErr  error
}

// NewReader creates a Reader. stdin may be nil when "-" is never used.
func NewReader(stdin io.Reader, observer *observability.StandardObserver) *Reader {
	return &Reader{
		stdin:    stdin,
		pdf:      NewPDFExtractor(),
		observer: observer,
	}
}

// Load returns the text of source: "-" for stdin, a .pdf document, or any
// other UTF-8 text file.
func (r *Reader) Load(ctx context.Context, source string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if source == Stdin {
		return r.readStdin()
	}

	finishTiming := r.observer.StartTiming("sources", "load", source)
	text, err := r.loadFile(source)
	finishTiming(err == nil, map[string]interface{}{"content_length": len(text)})
	return text, err
}

func (r *Reader) loadFile(source string) (string, error) {
	if err := paths.ValidatePath(source); err != nil {
		return "", err
	}
	path := paths.NormalizePath(source)
	ext := strings.ToLower(filepath.Ext(path))

	switch {
	case imageExtensions[ext]:
		return "", fmt.Errorf("%s: %w", source, ErrImage)
	case ext == ".pdf":
		content, err := r.pdf.ExtractText(path)
		if err != nil {
			return "", err
		}
		return content.Text, nil
	}
	return readText(path)
}

func (r *Reader) readStdin() (string, error) {
	r.stdinOnce.Do(func() {
		if r.stdin == nil {
			r.stdinErr = errors.New("no standard input available")
			return
		}
		r.stdinText, r.stdinErr = readLimited(r.stdin, "stdin")
	})
	return r.stdinText, r.stdinErr
}

func readText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return readLimited(f, path)
}

func readLimited(src io.Reader, name string) (string, error) {
	data, err := io.ReadAll(io.LimitReader(src, MaxTextSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	if len(data) > MaxTextSize {
		return "", fmt.Errorf("%s: %w", name, ErrTooLarge)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", name, ErrBinary)
	}
	return string(data), nil
}

// Collect expands command line arguments into sources. Directories yield
// their regular files in name order, descending into subdirectories only
// when recursive is set. Hidden files are skipped inside directories. No
// arguments means stdin.
func Collect(args []string, recursive bool) ([]string, error) {
	if len(args) == 0 {
		return []string{Stdin}, nil
	}

	var out []string
	for _, arg := range args {
		if arg == Stdin {
			out = append(out, Stdin)
			continue
		}
		if err := paths.ValidatePath(arg); err != nil {
			return nil, err
		}
		path := paths.NormalizePath(arg)

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}
		if !info.IsDir() {
			out = append(out, path)
			continue
		}

		files, err := walk(path, recursive)
		if err != nil {
			return nil, err
		}
		out = append(out, files...)
	}
	return out, nil
}

func walk(dir string, recursive bool) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == dir {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if !recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() && !imageExtensions[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}
