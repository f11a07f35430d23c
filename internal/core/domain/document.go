package domain

import "time"

// RawDocument is an unprocessed document as fetched from a connector
// or read from disk, before text extraction.
type RawDocument struct {
	// SourceID identifies where the document came from
	// ("filesystem", "googledrive", "upload").
	SourceID string

	// URI is the original location (file path, gdrive://files/{id}, ...).
	URI string

	// Name is the file name including extension.
	Name string

	// Content is the raw file bytes.
	Content []byte
}

// Document is the extracted, analysis-ready form of a file.
// The analysis pipeline never mutates it.
type Document struct {
	// Name is the caller-supplied label, usually the file name.
	Name string

	// Paragraphs is the ordered paragraph text of the document.
	Paragraphs []string

	// Text is the flat document text, paragraphs joined by newline.
	Text string

	// RawWordCount is the word count taken during extraction.
	// Some callers display it as a baseline figure next to the
	// tokenizer-based total.
	RawWordCount int
}

// RemoteFile describes a file listed by a connector before download.
type RemoteFile struct {
	ID           string
	Name         string
	Size         int64
	ModifiedTime time.Time
}
