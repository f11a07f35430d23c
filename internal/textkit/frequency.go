package textkit

import (
	"sort"

	"github.com/textagentur-labs/wortzahl/internal/core/domain"
)

// topN is the number of entries kept in frequency tables.
const topN = 10

// WordStats computes the basic word statistics of a document using the
// language-agnostic tokenizer. Empty text yields an all-zero result.
func (e *Engine) WordStats(text string) domain.WordStats {
	tokens := e.tokenizer.BasicTokens(text)
	counts, order := countTokens(tokens)

	return domain.WordStats{
		TotalWords:   len(tokens),
		UniqueWords:  len(counts),
		TopFrequency: topFrequencies(counts, order, topN),
	}
}

// countTokens tallies occurrences and records each token's first
// appearance so ties can be broken deterministically.
func countTokens(tokens []string) (map[string]int, []string) {
	counts := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}
	return counts, order
}

// topFrequencies returns the n most frequent tokens in descending
// count order. Equal counts keep first-occurrence order: the sort is
// stable over the insertion-ordered token list.
func topFrequencies(counts map[string]int, order []string, n int) []domain.FrequencyEntry {
	entries := make([]domain.FrequencyEntry, 0, len(order))
	for _, tok := range order {
		entries = append(entries, domain.FrequencyEntry{Token: tok, Count: counts[tok]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
