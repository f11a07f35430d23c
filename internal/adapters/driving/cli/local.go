package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/textagentur-labs/wortzahl/internal/core/domain"
	"github.com/textagentur-labs/wortzahl/internal/core/ports/driving"
	"github.com/textagentur-labs/wortzahl/internal/export"
)

var (
	localJSON   bool
	localOutput string
)

var localCmd = &cobra.Command{
	Use:   "local [file|dir]...",
	Short: "Analyze local documents",
	Long: `Analyzes local DOCX, PDF, text and Markdown files as one batch.
Directories are expanded to the supported files they contain.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLocal,
}

func init() {
	localCmd.Flags().BoolVar(&localJSON, "json", false, "print the report as JSON")
	localCmd.Flags().StringVarP(&localOutput, "output", "o", "", "write the text report to a file")
	rootCmd.AddCommand(localCmd)
}

func runLocal(cmd *cobra.Command, args []string) error {
	if analyzerService == nil {
		return errors.New("analyzer service not configured")
	}

	paths, err := expandPaths(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return errors.New("no supported documents found")
	}

	raws := make([]domain.RawDocument, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		raws = append(raws, domain.RawDocument{
			SourceID: "filesystem",
			URI:      "file://" + path,
			Name:     filepath.Base(path),
			Content:  content,
		})
	}

	report, err := analyzerService.ExtractAndAnalyze(context.Background(), raws, driving.AnalyzeOptions{
		Language: analysisLanguage(),
		Keywords: keywordsFlag,
		Persist:  saveFlag,
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if localJSON {
		encoded, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		cmd.Println(string(encoded))
		return nil
	}

	if localOutput != "" {
		text, err := export.Text(report)
		if err != nil {
			return err
		}
		if err := os.WriteFile(localOutput, []byte(text), 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		cmd.Printf("Export geschrieben: %s\n", localOutput)
		return nil
	}

	renderReport(cmd, report)
	return nil
}

// localExtensions mirrors the registered extractors.
var localExtensions = map[string]bool{
	".docx": true,
	".pdf":  true,
	".txt":  true,
	".md":   true,
	".text": true,
}

// expandPaths resolves the arguments to a flat list of supported
// files. Files are taken as given; directories are scanned one level
// deep.
func expandPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if localExtensions[filepath.Ext(entry.Name())] {
				paths = append(paths, filepath.Join(arg, entry.Name()))
			}
		}
	}
	return paths, nil
}
