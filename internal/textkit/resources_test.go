package textkit

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textagentur-labs/wortzahl/internal/core/domain"
)

func TestResources_BuiltinGerman(t *testing.T) {
	res := NewResources("")

	lang, err := res.Get("german")

	require.NoError(t, err)
	assert.Equal(t, "german", lang.Name)
	assert.True(t, lang.Stopwords["und"])
	assert.True(t, lang.IsWordRune('ß'))
	assert.False(t, lang.IsWordRune('-'))
}

func TestResources_UnknownLanguage(t *testing.T) {
	res := NewResources("")

	_, err := res.Get("klingon")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrResourceUnavailable)
}

func TestResources_EmptyLanguage(t *testing.T) {
	res := NewResources("")

	_, err := res.Get("")

	assert.ErrorIs(t, err, domain.ErrResourceUnavailable)
}

func TestResources_LoadsFromDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "french"), 0o700))
	list := "# French stopwords\nle\nla\nles\net\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "french", "stopwords.txt"), []byte(list), 0o600))

	res := NewResources(dir)
	lang, err := res.Get("french")

	require.NoError(t, err)
	assert.True(t, lang.Stopwords["le"])
	assert.False(t, lang.Stopwords["#"])
}

func TestResources_MemoizesFailedLoad(t *testing.T) {
	dir := t.TempDir()
	res := NewResources(dir)

	_, err := res.Get("french")
	require.Error(t, err)

	// Creating the resource afterwards must not change the outcome:
	// a load result is observed exactly once per process.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "french"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "french", "stopwords.txt"), []byte("le\n"), 0o600))

	_, err = res.Get("french")
	assert.Error(t, err)
}

func TestResources_ConcurrentFirstUse(t *testing.T) {
	res := NewResources("")

	var wg sync.WaitGroup
	langs := make([]*Language, 16)
	for i := range langs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			lang, err := res.Get("german")
			require.NoError(t, err)
			langs[i] = lang
		}(i)
	}
	wg.Wait()

	for _, lang := range langs {
		// All waiters observe the same completed load.
		assert.Same(t, langs[0], lang)
	}
}
