package textkit

import (
	"github.com/textagentur-labs/wortzahl/internal/logger"
)

// StopwordProvider returns the stopword set for a language. When no
// curated list can be loaded it returns the built-in minimal fallback
// set instead of failing, so salience analysis always has some noise
// filter.
type StopwordProvider struct {
	resources *Resources
}

// NewStopwordProvider creates a provider backed by the given resource
// loader.
func NewStopwordProvider(resources *Resources) *StopwordProvider {
	return &StopwordProvider{resources: resources}
}

// Stopwords returns the stopword set for language. The returned map
// must be treated as read-only; it is shared between callers.
func (p *StopwordProvider) Stopwords(language string) map[string]bool {
	lang, err := p.resources.Get(language)
	if err != nil {
		logger.Warn("stopwords: no list for %q, using fallback set: %v", language, err)
		return FallbackStopwords
	}
	return lang.Stopwords
}
