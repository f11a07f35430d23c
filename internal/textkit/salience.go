package textkit

import "github.com/textagentur-labs/wortzahl/internal/core/domain"

// Salience surfaces the most frequent non-stopword tokens of a
// document: the count of distinct meaningful tokens plus the top ten
// by frequency, ties broken by first occurrence. Empty text or text
// consisting only of stopwords yields a zero result.
func (e *Engine) Salience(text, language string) (domain.SemanticSummary, []domain.Diagnostic) {
	tokens, diags := e.tokenizer.Tokenize(text, language)
	stops := e.stopwords.Stopwords(language)

	meaningful := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !stops[tok] {
			meaningful = append(meaningful, tok)
		}
	}

	counts, order := countTokens(meaningful)
	return domain.SemanticSummary{
		UniqueMeaningful: len(counts),
		TopMeaningful:    topFrequencies(counts, order, topN),
	}, diags
}
