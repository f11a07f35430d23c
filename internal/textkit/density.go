package textkit

import "strings"

// KeywordDensity computes the occurrence rate of each keyword as a
// percentage of the document's token count. Matching is
// case-insensitive and by literal substring, not token boundary: a
// keyword embedded inside a longer word is counted, so densities above
// 100% are possible and not clamped. An empty document yields 0% for
// every keyword.
func (e *Engine) KeywordDensity(text string, keywords []string) map[string]float64 {
	lowered := strings.ToLower(text)
	totalWords := len(e.tokenizer.BasicTokens(text))

	densities := make(map[string]float64, len(keywords))
	for _, keyword := range keywords {
		if keyword == "" || totalWords == 0 {
			densities[keyword] = 0
			continue
		}
		count := strings.Count(lowered, strings.ToLower(keyword))
		densities[keyword] = float64(count) / float64(totalWords) * 100
	}
	return densities
}
