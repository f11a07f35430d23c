package textkit

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/textagentur-labs/wortzahl/internal/core/domain"
	"github.com/textagentur-labs/wortzahl/internal/logger"
)

// wordPattern is the language-agnostic fallback: runs of Unicode
// letters and digits. Compiled once at package initialization.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}]+`)

// Tokenizer converts raw text into lower-cased, alphanumeric-only
// tokens. It tries three strategies in order and falls back on
// failure, so analysis never aborts because optional language data
// could not be loaded:
//
//  1. language-aware segmentation using the loaded language resource
//  2. regular-expression word extraction, language-agnostic
//  3. naive whitespace split, which cannot fail
//
// A fallback replaces the whole token sequence for the document; tiers
// are never mixed. Every fallback taken is logged and reported as a
// diagnostic.
type Tokenizer struct {
	resources *Resources

	// segment is the primary strategy. A field so tests can force a
	// deterministic failure of tier 1.
	segment func(lowered string, lang *Language) ([]string, error)
}

// NewTokenizer creates a tokenizer backed by the given resource loader.
func NewTokenizer(resources *Resources) *Tokenizer {
	return &Tokenizer{
		resources: resources,
		segment:   segmentWords,
	}
}

// Tokenize splits text into normalized tokens for language. The
// returned diagnostics list is non-empty when a fallback strategy was
// used; it never carries a fatal condition.
func (t *Tokenizer) Tokenize(text, language string) ([]string, []domain.Diagnostic) {
	lowered := strings.ToLower(text)

	var diags []domain.Diagnostic

	lang, err := t.resources.Get(language)
	if err == nil {
		tokens, segErr := t.segment(lowered, lang)
		if segErr == nil {
			return tokens, nil
		}
		err = segErr
	}

	logger.Warn("tokenizer: language strategy for %q failed, using word pattern: %v", language, err)
	diags = append(diags, domain.Diagnostic{
		Component: "tokenizer",
		Message:   fmt.Sprintf("language strategy for %q unavailable, fell back to word pattern: %v", language, err),
	})

	if wordPattern != nil {
		return wordPattern.FindAllString(lowered, -1), diags
	}

	// Last resort: whitespace split. Tokens may carry punctuation.
	logger.Warn("tokenizer: word pattern unavailable, using whitespace split")
	diags = append(diags, domain.Diagnostic{
		Component: "tokenizer",
		Message:   "word pattern unavailable, fell back to whitespace split",
	})
	return strings.Fields(lowered), diags
}

// BasicTokens applies the language-agnostic word pattern directly.
// Word counting does not need linguistic segmentation, only consistent
// boundaries, so the frequency and density scorers use this strategy
// unconditionally.
func (t *Tokenizer) BasicTokens(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// segmentWords is the language-aware strategy: a rune scanner that
// extends word boundaries with the language's extra letter set. Input
// is already lower-cased.
func segmentWords(lowered string, lang *Language) ([]string, error) {
	if lang == nil {
		return nil, domain.ErrResourceUnavailable
	}

	var tokens []string
	var current strings.Builder
	for _, r := range lowered {
		if lang.IsWordRune(r) {
			current.WriteRune(r)
			continue
		}
		if current.Len() > 0 {
			tokens = appendAlnum(tokens, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		tokens = appendAlnum(tokens, current.String())
	}
	return tokens, nil
}

// appendAlnum appends token if it consists entirely of letters and
// digits. Punctuation-only tokens are dropped.
func appendAlnum(tokens []string, token string) []string {
	for _, r := range token {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return tokens
		}
	}
	return append(tokens, token)
}
