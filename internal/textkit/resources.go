package textkit

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode"

	"github.com/textagentur-labs/wortzahl/internal/core/domain"
)

// Language holds the loaded resource data for one language: the runes
// that count as word characters beyond plain Unicode letters/digits,
// and the curated stopword list.
type Language struct {
	Name      string
	Letters   map[rune]bool
	Stopwords map[string]bool
}

// IsWordRune reports whether r is part of a word under this language's
// rules.
func (l *Language) IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || l.Letters[r]
}

// Resources is a memoized loader for language data. Each language is
// loaded at most once per Resources instance; concurrent first use is
// synchronized so all callers observe the completed load.
//
// Languages without built-in data are read from the resource
// directory: <dir>/<language>/stopwords.txt, one word per line,
// '#' comments allowed.
type Resources struct {
	dir string

	mu      sync.Mutex
	entries map[string]*resourceEntry
}

type resourceEntry struct {
	once sync.Once
	lang *Language
	err  error
}

// NewResources creates a resource loader reading from dir. An empty
// dir restricts the loader to the built-in languages.
func NewResources(dir string) *Resources {
	return &Resources{
		dir:     dir,
		entries: make(map[string]*resourceEntry),
	}
}

// Get returns the resource data for language, loading it on first use.
// A failed load is memoized too; retrying would re-read the same
// broken files on every call.
func (r *Resources) Get(language string) (*Language, error) {
	if language == "" {
		return nil, fmt.Errorf("%w: no language given", domain.ErrResourceUnavailable)
	}

	r.mu.Lock()
	entry, ok := r.entries[language]
	if !ok {
		entry = &resourceEntry{}
		r.entries[language] = entry
	}
	r.mu.Unlock()

	entry.once.Do(func() {
		entry.lang, entry.err = r.load(language)
	})
	return entry.lang, entry.err
}

// load resolves language data from built-ins first, then the resource
// directory.
func (r *Resources) load(language string) (*Language, error) {
	if lang, ok := builtinLanguage(language); ok {
		return lang, nil
	}

	if r.dir == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrResourceUnavailable, language)
	}

	stopwords, err := readWordList(filepath.Join(r.dir, language, "stopwords.txt"))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrResourceUnavailable, language, err)
	}

	letters := make(map[rune]bool)
	if extra, err := readWordList(filepath.Join(r.dir, language, "letters.txt")); err == nil {
		for _, entry := range extra {
			for _, r := range entry {
				letters[r] = true
			}
		}
	}

	set := make(map[string]bool, len(stopwords))
	for _, w := range stopwords {
		set[strings.ToLower(w)] = true
	}

	return &Language{
		Name:      language,
		Letters:   letters,
		Stopwords: set,
	}, nil
}

// readWordList reads a one-entry-per-line word list.
func readWordList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("empty word list: %s", path)
	}
	return words, nil
}
