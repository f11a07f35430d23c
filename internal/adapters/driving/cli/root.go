// Package cli implements the wortzahl command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/textagentur-labs/wortzahl/internal/core/ports/driven"
	"github.com/textagentur-labs/wortzahl/internal/core/ports/driving"
	"github.com/textagentur-labs/wortzahl/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services injected by the composition root before Execute.
var (
	analyzerService driving.AnalyzerService
	reportService   driving.ReportService
	driveConnector  driven.Connector
	configStore     driven.ConfigStore
)

// Persistent flags shared by the analysis commands.
var (
	verboseFlag  bool
	languageFlag string
	keywordsFlag []string
	saveFlag     bool
)

var rootCmd = &cobra.Command{
	Use:   "wortzahl",
	Short: "Text analytics for documents",
	Long: `wortzahl computes word statistics, readability and keyword metrics
over batches of documents, from local files or Google Drive.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"print analysis pipeline details to stderr")
	rootCmd.PersistentFlags().StringVarP(&languageFlag, "language", "l", "",
		"analysis language (default from config, else german)")
	rootCmd.PersistentFlags().StringSliceVarP(&keywordsFlag, "keyword", "k", nil,
		"keyword to measure density for (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&saveFlag, "save", false,
		"persist the report in the local history")
}

// SetServices injects the application services. Called by the
// composition root before Execute.
func SetServices(
	analyzer driving.AnalyzerService,
	reports driving.ReportService,
	drive driven.Connector,
	config driven.ConfigStore,
) {
	analyzerService = analyzer
	reportService = reports
	driveConnector = drive
	configStore = config
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// analysisLanguage resolves the language for a run: flag, then config,
// then the built-in default.
func analysisLanguage() string {
	if languageFlag != "" {
		return languageFlag
	}
	if configStore != nil {
		if lang := configStore.GetString("language"); lang != "" {
			return lang
		}
	}
	return ""
}
