package driven

import (
	"context"

	"github.com/textagentur-labs/wortzahl/internal/core/domain"
)

// ListOptions narrows a connector listing.
type ListOptions struct {
	// Folder restricts the listing to one folder (connector-specific ID
	// or path).
	Folder string

	// Query is a connector-specific full-text search term.
	Query string

	// PageSize caps the number of results; 0 uses the connector default.
	PageSize int
}

// Connector lists and fetches documents from a source such as Google
// Drive or a local directory.
type Connector interface {
	// List returns the files available from the source.
	List(ctx context.Context, opts ListOptions) ([]domain.RemoteFile, error)

	// Fetch downloads a single file by its connector-specific ID.
	Fetch(ctx context.Context, id string) (*domain.RawDocument, error)
}
