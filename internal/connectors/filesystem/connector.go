// Package filesystem lists and reads documents from a local directory
// tree.
package filesystem

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/textagentur-labs/wortzahl/internal/core/domain"
	"github.com/textagentur-labs/wortzahl/internal/core/ports/driven"
)

// Ensure Connector implements the interface.
var _ driven.Connector = (*Connector)(nil)

// SourceID identifies documents fetched through this connector.
const SourceID = "filesystem"

// supportedExtensions are the file types the analysis pipeline can
// extract. Other files are skipped during listing.
var supportedExtensions = map[string]bool{
	".docx": true,
	".pdf":  true,
	".txt":  true,
	".md":   true,
	".text": true,
}

// Connector walks a root directory. File IDs are paths relative to the
// root, so listings stay stable across machines sharing a layout.
type Connector struct {
	root string
}

// NewConnector creates a connector rooted at dir.
func NewConnector(dir string) (*Connector, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, domain.ErrInvalidInput
	}
	return &Connector{root: abs}, nil
}

// Root returns the absolute root directory.
func (c *Connector) Root() string {
	return c.root
}

// List walks the root and returns the supported files, sorted by path.
// Hidden directories are skipped. Folder narrows the walk to a
// subdirectory; Query is a case-insensitive substring match on the
// file name.
func (c *Connector) List(ctx context.Context, opts driven.ListOptions) ([]domain.RemoteFile, error) {
	start := c.root
	if opts.Folder != "" {
		resolved, err := c.resolve(opts.Folder)
		if err != nil {
			return nil, err
		}
		start = resolved
	}

	query := strings.ToLower(opts.Query)

	var files []domain.RemoteFile
	err := filepath.WalkDir(start, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if entry.IsDir() {
			if strings.HasPrefix(entry.Name(), ".") && path != start {
				return filepath.SkipDir
			}
			return nil
		}

		if !supportedExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			return nil
		}
		if query != "" && !strings.Contains(strings.ToLower(entry.Name()), query) {
			return nil
		}

		info, err := entry.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(c.root, path)
		if err != nil {
			return err
		}

		files = append(files, domain.RemoteFile{
			ID:           filepath.ToSlash(rel),
			Name:         entry.Name(),
			Size:         info.Size(),
			ModifiedTime: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].ID < files[j].ID })

	if opts.PageSize > 0 && len(files) > opts.PageSize {
		files = files[:opts.PageSize]
	}
	return files, nil
}

// Fetch reads a single file by its root-relative ID.
func (c *Connector) Fetch(_ context.Context, id string) (*domain.RawDocument, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}

	path, err := c.resolve(id)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &domain.RawDocument{
		SourceID: SourceID,
		URI:      "file://" + path,
		Name:     filepath.Base(path),
		Content:  content,
	}, nil
}

// resolve joins a relative ID onto the root and rejects paths that
// escape it.
func (c *Connector) resolve(id string) (string, error) {
	path := filepath.Join(c.root, filepath.FromSlash(id))
	rel, err := filepath.Rel(c.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", domain.ErrInvalidInput
	}
	return path, nil
}
