package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat indicates no extractor handles the file type.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrResourceUnavailable indicates language data is missing or corrupt.
	// Never fatal: the tokenizer falls back and the stopword provider
	// returns its built-in set.
	ErrResourceUnavailable = errors.New("language resource unavailable")

	// ErrEmptyCorpus indicates a corpus scoring call received no documents.
	ErrEmptyCorpus = errors.New("empty corpus")

	// ErrStoreUnavailable indicates the report store is not configured.
	// Analysis still runs; only history persistence is disabled.
	ErrStoreUnavailable = errors.New("report store unavailable")
)
