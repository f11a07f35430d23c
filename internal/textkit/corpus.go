package textkit

import (
	"math"
	"sort"

	"github.com/textagentur-labs/wortzahl/internal/core/domain"
)

// TFIDF scores every term of the corpus with term frequency times
// inverse document frequency:
//
//	tf  = count(term, doc) / len(doc)
//	idf = ln(N / (df(term) + 1))
//
// The +1 smoothing keeps the logarithm argument positive and finite
// for df == N; a term occurring in every document scores at or below
// zero, which is the intended property of an IDF measure.
func (e *Engine) TFIDF(documents []string, language string) ([]domain.ScoreEntry, []domain.Diagnostic) {
	return e.scoreCorpus(documents, language, func(count, docLen int) float64 {
		return float64(count) / float64(docLen)
	})
}

// WDFIDF scores every term with the logarithmically damped
// within-document frequency ln(1 + count) in place of normalized TF.
func (e *Engine) WDFIDF(documents []string, language string) ([]domain.ScoreEntry, []domain.Diagnostic) {
	return e.scoreCorpus(documents, language, func(count, _ int) float64 {
		return math.Log(1 + float64(count))
	})
}

// scoreCorpus runs the shared TF-IDF/WDF-IDF structure with the given
// within-document weight. Results are merged into one table keyed by
// term: when a term appears in several documents, the score from the
// later document overwrites the earlier one. Callers that need
// per-document scores pass a single-document corpus.
func (e *Engine) scoreCorpus(
	documents []string, language string, weight func(count, docLen int) float64,
) ([]domain.ScoreEntry, []domain.Diagnostic) {
	var diags []domain.Diagnostic

	// Tokenize every document with the full fallback chain.
	docs := make([][]string, len(documents))
	for i, text := range documents {
		tokens, tokDiags := e.tokenizer.Tokenize(text, language)
		docs[i] = tokens
		diags = append(diags, tokDiags...)
	}

	// Document frequency per term.
	df := make(map[string]int)
	for _, doc := range docs {
		for _, term := range uniqueTerms(doc) {
			df[term]++
		}
	}

	totalDocs := float64(len(docs))
	scores := make(map[string]float64)
	var order []string

	for _, doc := range docs {
		if len(doc) == 0 {
			continue // degenerate document, nothing to score
		}
		counts, _ := countTokens(doc)
		for _, term := range uniqueTerms(doc) {
			idf := math.Log(totalDocs / float64(df[term]+1))
			if _, seen := scores[term]; !seen {
				order = append(order, term)
			}
			scores[term] = weight(counts[term], len(doc)) * idf
		}
	}

	entries := make([]domain.ScoreEntry, 0, len(order))
	for _, term := range order {
		entries = append(entries, domain.ScoreEntry{Term: term, Score: scores[term]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries, diags
}

// uniqueTerms returns the distinct tokens of a document in
// first-occurrence order.
func uniqueTerms(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	var terms []string
	for _, tok := range tokens {
		if !seen[tok] {
			seen[tok] = true
			terms = append(terms, tok)
		}
	}
	return terms
}
