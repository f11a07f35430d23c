// Package plaintext extracts text from plain text and Markdown files.
package plaintext

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/textagentur-labs/wortzahl/internal/core/domain"
	"github.com/textagentur-labs/wortzahl/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles plain text documents.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedExtensions returns the file extensions this extractor handles.
func (e *Extractor) SupportedExtensions() []string {
	return []string{".txt", ".md", ".text"}
}

// Extract converts a raw text file into an analysis-ready document.
// Blank lines separate paragraphs; runs of whitespace inside a line
// collapse to single spaces.
func (e *Extractor) Extract(_ context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	paragraphs := splitParagraphs(string(raw.Content))
	text := strings.Join(paragraphs, "\n")

	return &domain.Document{
		Name:         documentName(raw),
		Paragraphs:   paragraphs,
		Text:         text,
		RawWordCount: len(strings.Fields(text)),
	}, nil
}

// splitParagraphs breaks text on blank lines and normalises the
// whitespace within each paragraph.
func splitParagraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var paragraphs []string
	for _, block := range strings.Split(text, "\n\n") {
		fields := strings.Fields(block)
		if len(fields) == 0 {
			continue
		}
		paragraphs = append(paragraphs, strings.Join(fields, " "))
	}
	return paragraphs
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
