package plaintext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textagentur-labs/wortzahl/internal/core/domain"
)

func TestSupportedExtensions(t *testing.T) {
	extractor := New()
	assert.Equal(t, []string{".txt", ".md", ".text"}, extractor.SupportedExtensions())
}

func TestExtract_Success(t *testing.T) {
	extractor := New()

	raw := &domain.RawDocument{
		Name:    "notizen.txt",
		Content: []byte("Erster Absatz mit etwas Text.\n\nZweiter Absatz."),
	}

	doc, err := extractor.Extract(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "notizen.txt", doc.Name)
	require.Len(t, doc.Paragraphs, 2)
	assert.Equal(t, "Erster Absatz mit etwas Text.", doc.Paragraphs[0])
	assert.Equal(t, "Zweiter Absatz.", doc.Paragraphs[1])
	assert.Equal(t, 7, doc.RawWordCount)
}

func TestExtract_NilDocument(t *testing.T) {
	extractor := New()

	doc, err := extractor.Extract(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, doc)
}

func TestExtract_EmptyContent(t *testing.T) {
	extractor := New()

	doc, err := extractor.Extract(context.Background(), &domain.RawDocument{Name: "leer.txt"})
	require.NoError(t, err)
	assert.Empty(t, doc.Paragraphs)
	assert.Zero(t, doc.RawWordCount)
}

func TestExtract_NormalisesWhitespace(t *testing.T) {
	extractor := New()

	raw := &domain.RawDocument{
		Name:    "doc.txt",
		Content: []byte("Viel   Leerraum\tim\nAbsatz"),
	}

	doc, err := extractor.Extract(context.Background(), raw)
	require.NoError(t, err)
	require.Len(t, doc.Paragraphs, 1)
	assert.Equal(t, "Viel Leerraum im Absatz", doc.Paragraphs[0])
}

func TestExtract_WindowsLineEndings(t *testing.T) {
	extractor := New()

	raw := &domain.RawDocument{
		Name:    "doc.txt",
		Content: []byte("Erster Absatz.\r\n\r\nZweiter Absatz."),
	}

	doc, err := extractor.Extract(context.Background(), raw)
	require.NoError(t, err)
	assert.Len(t, doc.Paragraphs, 2)
}

func TestExtract_NameFallbackToURI(t *testing.T) {
	extractor := New()

	raw := &domain.RawDocument{
		URI:     "/tmp/mein_text.txt",
		Content: []byte("Inhalt"),
	}

	doc, err := extractor.Extract(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "mein text", doc.Name)
}
