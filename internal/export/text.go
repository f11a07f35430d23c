// Package export renders analysis reports for download and archival.
package export

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/textagentur-labs/wortzahl/internal/core/domain"
)

// topScoreCount limits the WDF-IDF table in the text export.
const topScoreCount = 5

// WriteText renders a report as a plain-text summary, one section per
// document plus the corpus-wide WDF-IDF table.
func WriteText(w io.Writer, report *domain.AnalysisReport) error {
	if report == nil {
		return domain.ErrInvalidInput
	}

	var b strings.Builder
	b.WriteString("SEO Analyse Ergebnisse\n")
	b.WriteString("====================\n\n")

	for _, doc := range report.Documents {
		writeDocument(&b, &doc)
	}

	writeScores(&b, "WDF-IDF Analyse (Top 5):", report.WDFIDF)

	_, err := io.WriteString(w, b.String())
	return err
}

// Text renders a report to a string.
func Text(report *domain.AnalysisReport) (string, error) {
	var b strings.Builder
	if err := WriteText(&b, report); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeDocument(b *strings.Builder, doc *domain.DocumentReport) {
	name := doc.Name
	if name == "" {
		name = "Unbekannt"
	}
	fmt.Fprintf(b, "Dokument: %s\n", name)
	b.WriteString(strings.Repeat("-", 40) + "\n")

	b.WriteString("Basisstatistiken:\n")
	fmt.Fprintf(b, "  Wörter: %d\n", doc.Stats.TotalWords)
	fmt.Fprintf(b, "  Einzigartige Wörter: %d\n\n", doc.Stats.UniqueWords)

	b.WriteString("Lesbarkeit:\n")
	fmt.Fprintf(b, "  Flesch Reading Ease: %.2f\n", doc.Readability.Ease)
	label := doc.Readability.Label
	if label == "" {
		label = domain.ComplexityUnknown
	}
	fmt.Fprintf(b, "  Komplexitätslevel: %s\n\n", label)

	b.WriteString("Semantische Analyse:\n")
	fmt.Fprintf(b, "  Einzigartige bedeutungsvolle Wörter: %d\n", doc.Semantic.UniqueMeaningful)
	b.WriteString("  Top bedeutungsvolle Wörter:\n")
	top := doc.Semantic.TopMeaningful
	if len(top) > topScoreCount {
		top = top[:topScoreCount]
	}
	for _, entry := range top {
		fmt.Fprintf(b, "    %s: %d\n", entry.Token, entry.Count)
	}
	b.WriteString("\n")

	if len(doc.KeywordDensity) > 0 {
		b.WriteString("Keyword-Dichte:\n")
		for _, keyword := range sortedKeywords(doc.KeywordDensity) {
			fmt.Fprintf(b, "  %s: %.2f%%\n", keyword, doc.KeywordDensity[keyword])
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("=", 40) + "\n\n")
}

func writeScores(b *strings.Builder, heading string, entries []domain.ScoreEntry) {
	b.WriteString(heading + "\n")
	if len(entries) > topScoreCount {
		entries = entries[:topScoreCount]
	}
	for _, entry := range entries {
		fmt.Fprintf(b, "  %s: %.4f\n", entry.Term, entry.Score)
	}
}

// sortedKeywords returns the map keys in stable alphabetical order.
func sortedKeywords(densities map[string]float64) []string {
	keywords := make([]string, 0, len(densities))
	for keyword := range densities {
		keywords = append(keywords, keyword)
	}
	sort.Strings(keywords)
	return keywords
}
