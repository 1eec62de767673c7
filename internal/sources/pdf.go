// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package sources

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// maxPDFPages bounds the pages read from one document
const maxPDFPages = 50

// PDFContent is the text of a PDF document, one line per text row
type PDFContent struct {
	Filename  string
	Text      string
	PageCount int
}

// PDFExtractor validates PDF documents with pdfcpu and reads their text
// rows with ledongthuc/pdf
type PDFExtractor struct {
	config *model.Configuration
}

// NewPDFExtractor creates a PDFExtractor with pdfcpu's default configuration
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{config: model.NewDefaultConfiguration()}
}

// ExtractText returns the text of the document at path. Pages are joined
// with a blank line so blocks from different pages never merge.
func (pe *PDFExtractor) ExtractText(path string) (*PDFContent, error) {
	content := &PDFContent{Filename: filepath.Base(path)}

	if err := api.ValidateFile(path, pe.config); err != nil {
		return content, fmt.Errorf("invalid PDF file %s: %w", path, err)
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return content, fmt.Errorf("error opening PDF %s: %w", path, err)
	}
	defer f.Close()

	content.PageCount = min(r.NumPage(), maxPDFPages)

	var pages []string
	for i := 1; i <= content.PageCount; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := pageText(p)
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			pages = append(pages, text)
		}
	}

	content.Text = strings.Join(pages, "\n\n")
	return content, nil
}

// pageText rebuilds the page line by line, top to bottom
func pageText(p pdf.Page) (string, error) {
	rows, err := p.GetTextByRow()
	if err != nil {
		return p.GetPlainText(nil)
	}

	sorted := make([]*pdf.Row, 0, len(rows))
	for _, row := range rows {
		if row != nil && len(row.Content) > 0 {
			sorted = append(sorted, row)
		}
	}
	// PDF y grows upwards
	sort.SliceStable(sorted, func(i, j int) bool {
		return averageY(sorted[i].Content) > averageY(sorted[j].Content)
	})

	var buf bytes.Buffer
	for _, row := range sorted {
		if line := strings.TrimSpace(rowText(row.Content)); line != "" {
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}
	return buf.String(), nil
}

func averageY(texts []pdf.Text) float64 {
	if len(texts) == 0 {
		return 0
	}
	var total float64
	for _, t := range texts {
		total += t.Y
	}
	return total / float64(len(texts))
}

// rowText joins the glyph runs of one row left to right, inserting a space
// where the gap exceeds a fifth of the font size.
func rowText(texts []pdf.Text) string {
	sorted := make([]pdf.Text, len(texts))
	copy(sorted, texts)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	var buf bytes.Buffer
	for i, t := range sorted {
		buf.WriteString(t.S)
		if i == len(sorted)-1 {
			break
		}
		fontSize := t.FontSize
		if fontSize <= 0 {
			fontSize = 12
		}
		if gap := sorted[i+1].X - (t.X + t.W); gap > fontSize*0.2 {
			buf.WriteString(" ")
		}
	}
	return buf.String()
}
