package cli

import (
	"bytes"
	"testing"

	"github.com/textagentur-labs/wortzahl/internal/adapters/driven/storage/memory"
	"github.com/textagentur-labs/wortzahl/internal/core/ports/driven"
	"github.com/textagentur-labs/wortzahl/internal/core/services"
	"github.com/textagentur-labs/wortzahl/internal/extractors/docx"
	"github.com/textagentur-labs/wortzahl/internal/extractors/plaintext"
	"github.com/textagentur-labs/wortzahl/internal/textkit"
)

// setupTestServices wires real services over an in-memory store and
// returns the store plus a cleanup restoring the previous wiring.
func setupTestServices() (*memory.ReportStore, func()) {
	prevAnalyzer := analyzerService
	prevReports := reportService
	prevDrive := driveConnector
	prevConfig := configStore

	store := memory.NewReportStore()
	engine := textkit.NewEngine(textkit.NewResources(""))
	analyzer := services.NewAnalyzerService(engine,
		[]driven.Extractor{plaintext.New(), docx.New()}, store)

	SetServices(analyzer, services.NewReportService(store), nil, nil)

	return store, func() {
		analyzerService = prevAnalyzer
		reportService = prevReports
		driveConnector = prevDrive
		configStore = prevConfig
	}
}

// execute runs the root command with args and captures output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		languageFlag = ""
		keywordsFlag = nil
		saveFlag = false
		verboseFlag = false
		localJSON = false
		localOutput = ""
	})

	err := rootCmd.Execute()
	return buf.String(), err
}
