package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/textagentur-labs/wortzahl/internal/core/domain"
)

// fallbackWidth is used when stdout is not a terminal.
const fallbackWidth = 80

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// terminalWidth returns the current terminal width, or a fallback when
// output is piped.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallbackWidth
}

// renderReport writes the full report to the command output.
func renderReport(cmd *cobra.Command, report *domain.AnalysisReport) {
	width := terminalWidth()

	cmd.Println(titleStyle.Render("Analyse " + report.ID))
	cmd.Println(dimStyle.Render(fmt.Sprintf("Sprache: %s   Dokumente: %d   %s",
		report.Language, len(report.Documents), report.CreatedAt.Format("2006-01-02 15:04"))))
	cmd.Println()

	for i := range report.Documents {
		renderDocument(cmd, &report.Documents[i], width)
	}

	renderScoreTable(cmd, "TF-IDF (Korpus)", report.TFIDF)
	renderScoreTable(cmd, "WDF-IDF (Korpus)", report.WDFIDF)

	if len(report.Diagnostics) > 0 {
		cmd.Println(sectionStyle.Render("Hinweise"))
		for _, d := range report.Diagnostics {
			if d.Document != "" {
				cmd.Printf("  [%s] %s: %s\n", d.Component, d.Document, d.Message)
			} else {
				cmd.Printf("  [%s] %s\n", d.Component, d.Message)
			}
		}
		cmd.Println()
	}
}

func renderDocument(cmd *cobra.Command, doc *domain.DocumentReport, width int) {
	name := doc.Name
	if name == "" {
		name = "Unbekannt"
	}
	cmd.Println(sectionStyle.Render(truncate("Dokument: "+name, width)))

	cmd.Printf("  Wörter: %d   Einzigartige Wörter: %d\n",
		doc.Stats.TotalWords, doc.Stats.UniqueWords)
	cmd.Printf("  Flesch Reading Ease: %.2f (%s)   Flesch-Kincaid: %.2f\n",
		doc.Readability.Ease, doc.Readability.Label, doc.Readability.Grade)

	if len(doc.Stats.TopFrequency) > 0 {
		cmd.Println("  Häufigste Wörter:")
		for _, entry := range doc.Stats.TopFrequency {
			cmd.Printf("    %-24s %d\n", truncate(entry.Token, 24), entry.Count)
		}
	}

	if doc.Semantic.UniqueMeaningful > 0 {
		cmd.Printf("  Bedeutungsvolle Wörter: %d\n", doc.Semantic.UniqueMeaningful)
		for _, entry := range doc.Semantic.TopMeaningful {
			cmd.Printf("    %-24s %d\n", truncate(entry.Token, 24), entry.Count)
		}
	}

	if len(doc.KeywordDensity) > 0 {
		cmd.Println("  Keyword-Dichte:")
		for _, keyword := range sortedKeys(doc.KeywordDensity) {
			cmd.Printf("    %-24s %.2f%%\n", truncate(keyword, 24), doc.KeywordDensity[keyword])
		}
	}

	cmd.Println()
}

func renderScoreTable(cmd *cobra.Command, heading string, entries []domain.ScoreEntry) {
	if len(entries) == 0 {
		return
	}
	cmd.Println(sectionStyle.Render(heading))
	for _, entry := range entries {
		cmd.Printf("  %-24s %.4f\n", truncate(entry.Term, 24), entry.Score)
	}
	cmd.Println()
}

// renderFileList writes a remote file listing.
func renderFileList(cmd *cobra.Command, files []domain.RemoteFile) {
	if len(files) == 0 {
		cmd.Println("Keine Dateien gefunden.")
		return
	}
	for _, file := range files {
		modified := ""
		if !file.ModifiedTime.IsZero() {
			modified = file.ModifiedTime.Format("2006-01-02 15:04")
		}
		cmd.Printf("  %-44s %10s  %s\n", truncate(file.ID, 44), formatSize(file.Size), modified)
		cmd.Printf("  %s\n", dimStyle.Render("  "+truncate(file.Name, 60)))
	}
}

func truncate(s string, limit int) string {
	if limit <= 3 || len([]rune(s)) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-3]) + "..."
}

func formatSize(size int64) string {
	switch {
	case size >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(size)/(1<<20))
	case size >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(size)/(1<<10))
	case size > 0:
		return fmt.Sprintf("%d B", size)
	default:
		return "-"
	}
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
