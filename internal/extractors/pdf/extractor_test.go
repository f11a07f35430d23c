package pdf

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/textagentur-labs/wortzahl/internal/core/domain"
)

func TestSupportedExtensions(t *testing.T) {
	extractor := New()
	assert.Equal(t, []string{".pdf"}, extractor.SupportedExtensions())
}

func TestExtract_NilDocument(t *testing.T) {
	extractor := New()

	doc, err := extractor.Extract(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, doc)
}

func TestExtract_EmptyContent(t *testing.T) {
	extractor := New()

	doc, err := extractor.Extract(context.Background(), &domain.RawDocument{Name: "leer.pdf"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, doc)
}

func TestExtract_InvalidPDF(t *testing.T) {
	extractor := New()

	raw := &domain.RawDocument{
		Name:    "kaputt.pdf",
		Content: []byte("this is not a pdf"),
	}

	doc, err := extractor.Extract(context.Background(), raw)
	assert.Error(t, err)
	assert.Nil(t, doc)
}
