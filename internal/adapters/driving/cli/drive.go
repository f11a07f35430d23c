package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/textagentur-labs/wortzahl/internal/core/domain"
	"github.com/textagentur-labs/wortzahl/internal/core/ports/driven"
	"github.com/textagentur-labs/wortzahl/internal/core/ports/driving"
)

var (
	driveFolder string
	driveQuery  string
	driveLimit  int
)

var driveCmd = &cobra.Command{
	Use:   "drive",
	Short: "Work with documents on Google Drive",
}

var driveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List word-processing documents on Drive",
	RunE:  runDriveList,
}

var driveAnalyzeCmd = &cobra.Command{
	Use:   "analyze [file-id]...",
	Short: "Download and analyze Drive documents",
	Long: `Downloads the given Drive files and analyzes them as one batch.
Without arguments, every listed document is analyzed.`,
	RunE: runDriveAnalyze,
}

func init() {
	driveCmd.PersistentFlags().StringVar(&driveFolder, "folder", "",
		"restrict to a Drive folder ID")
	driveListCmd.Flags().StringVar(&driveQuery, "query", "", "full-text search term")
	driveListCmd.Flags().IntVarP(&driveLimit, "limit", "n", 0, "maximum number of files")
	driveCmd.AddCommand(driveListCmd)
	driveCmd.AddCommand(driveAnalyzeCmd)
	rootCmd.AddCommand(driveCmd)
}

func runDriveList(cmd *cobra.Command, _ []string) error {
	if driveConnector == nil {
		return errors.New("drive connector not configured; set drive.token_file in the config")
	}

	files, err := driveConnector.List(context.Background(), driven.ListOptions{
		Folder:   driveFolder,
		Query:    driveQuery,
		PageSize: driveLimit,
	})
	if err != nil {
		return fmt.Errorf("listing drive files: %w", err)
	}

	renderFileList(cmd, files)
	return nil
}

func runDriveAnalyze(cmd *cobra.Command, args []string) error {
	if driveConnector == nil {
		return errors.New("drive connector not configured; set drive.token_file in the config")
	}
	if analyzerService == nil {
		return errors.New("analyzer service not configured")
	}

	ctx := context.Background()

	ids := args
	if len(ids) == 0 {
		files, err := driveConnector.List(ctx, driven.ListOptions{Folder: driveFolder})
		if err != nil {
			return fmt.Errorf("listing drive files: %w", err)
		}
		for _, file := range files {
			ids = append(ids, file.ID)
		}
	}
	if len(ids) == 0 {
		return errors.New("no documents to analyze")
	}

	var raws []domain.RawDocument
	for _, id := range ids {
		cmd.Printf("Lade %s...\n", id)
		raw, err := driveConnector.Fetch(ctx, id)
		if err != nil {
			return fmt.Errorf("fetching %s: %w", id, err)
		}
		raws = append(raws, *raw)
	}

	report, err := analyzerService.ExtractAndAnalyze(ctx, raws, driving.AnalyzeOptions{
		Language: analysisLanguage(),
		Keywords: keywordsFlag,
		Persist:  saveFlag,
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	renderReport(cmd, report)
	return nil
}
