package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textagentur-labs/wortzahl/internal/core/domain"
	"github.com/textagentur-labs/wortzahl/internal/core/ports/driven"
)

// newTestTree builds a directory tree with a mix of supported and
// unsupported files.
func newTestTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	files := map[string]string{
		"artikel.docx":          "zip-bytes",
		"notizen.txt":           "Notizen zum Text.",
		"unterordner/blog.md":   "# Blogpost",
		"unterordner/bild.png":  "png-bytes",
		".versteckt/geheim.txt": "nicht listen",
	}
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func TestNewConnector_RejectsFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "datei.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := NewConnector(path)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewConnector_MissingDir(t *testing.T) {
	_, err := NewConnector(filepath.Join(t.TempDir(), "fehlt"))
	assert.Error(t, err)
}

func TestList_SupportedFilesOnly(t *testing.T) {
	connector, err := NewConnector(newTestTree(t))
	require.NoError(t, err)

	files, err := connector.List(context.Background(), driven.ListOptions{})
	require.NoError(t, err)
	require.Len(t, files, 3)

	assert.Equal(t, "artikel.docx", files[0].ID)
	assert.Equal(t, "notizen.txt", files[1].ID)
	assert.Equal(t, "unterordner/blog.md", files[2].ID)
	assert.Positive(t, files[1].Size)
	assert.False(t, files[1].ModifiedTime.IsZero())
}

func TestList_SkipsHiddenDirectories(t *testing.T) {
	connector, err := NewConnector(newTestTree(t))
	require.NoError(t, err)

	files, err := connector.List(context.Background(), driven.ListOptions{})
	require.NoError(t, err)
	for _, file := range files {
		assert.NotContains(t, file.ID, ".versteckt")
	}
}

func TestList_FolderScope(t *testing.T) {
	connector, err := NewConnector(newTestTree(t))
	require.NoError(t, err)

	files, err := connector.List(context.Background(), driven.ListOptions{Folder: "unterordner"})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "unterordner/blog.md", files[0].ID)
}

func TestList_QueryFiltersByName(t *testing.T) {
	connector, err := NewConnector(newTestTree(t))
	require.NoError(t, err)

	files, err := connector.List(context.Background(), driven.ListOptions{Query: "ARTIKEL"})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "artikel.docx", files[0].ID)
}

func TestList_PageSize(t *testing.T) {
	connector, err := NewConnector(newTestTree(t))
	require.NoError(t, err)

	files, err := connector.List(context.Background(), driven.ListOptions{PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestFetch_ReadsFile(t *testing.T) {
	connector, err := NewConnector(newTestTree(t))
	require.NoError(t, err)

	raw, err := connector.Fetch(context.Background(), "notizen.txt")
	require.NoError(t, err)
	assert.Equal(t, SourceID, raw.SourceID)
	assert.Equal(t, "notizen.txt", raw.Name)
	assert.Equal(t, []byte("Notizen zum Text."), raw.Content)
	assert.Contains(t, raw.URI, "file://")
}

func TestFetch_NotFound(t *testing.T) {
	connector, err := NewConnector(newTestTree(t))
	require.NoError(t, err)

	raw, err := connector.Fetch(context.Background(), "fehlt.txt")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, raw)
}

func TestFetch_RejectsPathEscape(t *testing.T) {
	connector, err := NewConnector(newTestTree(t))
	require.NoError(t, err)

	raw, err := connector.Fetch(context.Background(), "../ausbruch.txt")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, raw)
}

func TestFetch_EmptyID(t *testing.T) {
	connector, err := NewConnector(newTestTree(t))
	require.NoError(t, err)

	raw, err := connector.Fetch(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, raw)
}
