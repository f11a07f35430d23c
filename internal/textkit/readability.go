package textkit

import (
	"regexp"
	"strings"

	"github.com/textagentur-labs/wortzahl/internal/core/domain"
)

var (
	sentencePattern = regexp.MustCompile(`[.!?]+`)
	vowelPattern    = regexp.MustCompile(`[aeiouyäöü]+`)
)

// Readability computes the Flesch Reading Ease score, the
// Flesch-Kincaid grade level and the complexity label of a document.
// Text without a single sentence or word yields the zero result with
// the label ComplexityUnknown rather than an error.
func (e *Engine) Readability(text string) domain.ReadabilityResult {
	sentences := countSentences(text)
	words := strings.Fields(text)
	if sentences == 0 || len(words) == 0 {
		return domain.ReadabilityResult{Label: domain.ComplexityUnknown}
	}

	totalSyllables := 0
	for _, word := range words {
		totalSyllables += countSyllables(word)
	}

	wordsPerSentence := float64(len(words)) / float64(sentences)
	syllablesPerWord := float64(totalSyllables) / float64(len(words))

	ease := 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord
	grade := 0.39*wordsPerSentence + 11.8*syllablesPerWord - 15.59

	return domain.ReadabilityResult{
		Ease:  ease,
		Grade: grade,
		Label: ComplexityLabel(ease),
	}
}

// ComplexityLabel classifies a Flesch Reading Ease score into one of
// the five discrete complexity labels. Boundaries are inclusive on the
// lower end: exactly 30 is ComplexityHard, exactly 70 ComplexityEasy.
func ComplexityLabel(ease float64) string {
	switch {
	case ease < 30:
		return domain.ComplexityVeryHard
	case ease < 50:
		return domain.ComplexityHard
	case ease < 60:
		return domain.ComplexityMedium
	case ease < 70:
		return domain.ComplexityStandard
	default:
		return domain.ComplexityEasy
	}
}

// countSentences counts sentence terminators followed by whitespace or
// end of text.
func countSentences(text string) int {
	count := 0
	for _, loc := range sentencePattern.FindAllStringIndex(text, -1) {
		rest := text[loc[1]:]
		if rest == "" || rest[0] == ' ' || rest[0] == '\n' || rest[0] == '\t' || rest[0] == '\r' {
			count++
		}
	}
	if count == 0 && strings.TrimSpace(text) != "" {
		// Prose without a terminator still forms one sentence.
		count = 1
	}
	return count
}

// countSyllables estimates syllables as vowel groups. No silent-e
// adjustment: a final e is spoken in German, the tool's primary
// language. Every word has at least one syllable.
func countSyllables(word string) int {
	word = strings.ToLower(strings.Trim(word, ".,!?;:\"'()[]"))
	syllables := len(vowelPattern.FindAllString(word, -1))
	if syllables == 0 {
		syllables = 1
	}
	return syllables
}
