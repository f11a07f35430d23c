// Package pdf extracts text from PDF files.
package pdf

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/textagentur-labs/wortzahl/internal/core/domain"
	"github.com/textagentur-labs/wortzahl/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles PDF documents.
type Extractor struct{}

// New creates a new PDF extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedExtensions returns the file extensions this extractor handles.
func (e *Extractor) SupportedExtensions() []string {
	return []string{".pdf"}
}

// Extract converts a PDF file into an analysis-ready document. Pages
// that yield no plain text are skipped; a document with no extractable
// text at all is rejected.
func (e *Extractor) Extract(_ context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	if raw == nil || len(raw.Content) == 0 {
		return nil, domain.ErrInvalidInput
	}

	reader, err := pdf.NewReader(bytes.NewReader(raw.Content), int64(len(raw.Content)))
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	var paragraphs []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		for _, line := range strings.Split(content, "\n") {
			fields := strings.Fields(line)
			if len(fields) == 0 {
				continue
			}
			paragraphs = append(paragraphs, strings.Join(fields, " "))
		}
	}

	if len(paragraphs) == 0 {
		return nil, domain.ErrUnsupportedFormat
	}

	text := strings.Join(paragraphs, "\n")
	return &domain.Document{
		Name:         documentName(raw),
		Paragraphs:   paragraphs,
		Text:         text,
		RawWordCount: len(strings.Fields(text)),
	}, nil
}

// documentName prefers the caller-supplied file name over the URI.
func documentName(raw *domain.RawDocument) string {
	if raw.Name != "" {
		return raw.Name
	}

	filename := filepath.Base(raw.URI)
	ext := filepath.Ext(filename)
	if ext != "" {
		filename = strings.TrimSuffix(filename, ext)
	}
	filename = strings.ReplaceAll(filename, "_", " ")
	filename = strings.ReplaceAll(filename, "-", " ")
	return filename
}
