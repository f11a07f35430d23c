package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/textagentur-labs/wortzahl/internal/export"
)

var (
	reportsLimit  int
	reportsOutput string
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Browse the stored report history",
	RunE:  runReportsList,
}

var reportsShowCmd = &cobra.Command{
	Use:   "show [report-id]",
	Short: "Show a stored report",
	Args:  cobra.ExactArgs(1),
	RunE:  runReportsShow,
}

var reportsDeleteCmd = &cobra.Command{
	Use:   "delete [report-id]",
	Short: "Delete a stored report",
	Args:  cobra.ExactArgs(1),
	RunE:  runReportsDelete,
}

var reportsExportCmd = &cobra.Command{
	Use:   "export [report-id]",
	Short: "Export a stored report as a text summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runReportsExport,
}

func init() {
	reportsCmd.Flags().IntVarP(&reportsLimit, "limit", "n", 0, "maximum number of reports")
	reportsExportCmd.Flags().StringVarP(&reportsOutput, "output", "o", "",
		"write to file instead of stdout")
	reportsCmd.AddCommand(reportsShowCmd)
	reportsCmd.AddCommand(reportsDeleteCmd)
	reportsCmd.AddCommand(reportsExportCmd)
	rootCmd.AddCommand(reportsCmd)
}

func runReportsList(cmd *cobra.Command, _ []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}

	reports, err := reportService.Recent(context.Background(), reportsLimit)
	if err != nil {
		return fmt.Errorf("listing reports: %w", err)
	}
	if len(reports) == 0 {
		cmd.Println("Keine gespeicherten Analysen.")
		return nil
	}

	for _, report := range reports {
		cmd.Printf("  %s  %s  %s  %d Dokument(e)\n",
			report.ID,
			report.CreatedAt.Format("2006-01-02 15:04"),
			report.Language,
			len(report.Documents))
	}
	return nil
}

func runReportsShow(cmd *cobra.Command, args []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}

	report, err := reportService.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("loading report: %w", err)
	}

	renderReport(cmd, report)
	return nil
}

func runReportsDelete(cmd *cobra.Command, args []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}

	if err := reportService.Delete(context.Background(), args[0]); err != nil {
		return fmt.Errorf("deleting report: %w", err)
	}
	cmd.Printf("Analyse %s gelöscht.\n", args[0])
	return nil
}

func runReportsExport(cmd *cobra.Command, args []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}

	report, err := reportService.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("loading report: %w", err)
	}

	text, err := export.Text(report)
	if err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}

	if reportsOutput == "" {
		cmd.Print(text)
		return nil
	}
	if err := os.WriteFile(reportsOutput, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", reportsOutput, err)
	}
	cmd.Printf("Export geschrieben: %s\n", reportsOutput)
	return nil
}
