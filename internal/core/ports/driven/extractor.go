package driven

import (
	"context"

	"github.com/textagentur-labs/wortzahl/internal/core/domain"
)

// Extractor converts a raw file into analysis-ready text: ordered
// paragraphs plus a raw word count.
type Extractor interface {
	// SupportedExtensions returns the lower-cased file extensions this
	// extractor handles, including the leading dot.
	SupportedExtensions() []string

	// Extract produces the flat document text for a raw file.
	Extract(ctx context.Context, raw *domain.RawDocument) (*domain.Document, error)
}
