// Command wortzahl is the text analytics CLI: word statistics,
// readability and keyword metrics over local or Drive documents.
package main

import (
	"context"
	"fmt"
	"os"

	configfile "github.com/textagentur-labs/wortzahl/internal/adapters/driven/config/file"
	"github.com/textagentur-labs/wortzahl/internal/adapters/driven/storage/sqlite"
	"github.com/textagentur-labs/wortzahl/internal/adapters/driving/cli"
	"github.com/textagentur-labs/wortzahl/internal/connectors/googledrive"
	"github.com/textagentur-labs/wortzahl/internal/core/ports/driven"
	"github.com/textagentur-labs/wortzahl/internal/core/services"
	"github.com/textagentur-labs/wortzahl/internal/extractors/docx"
	"github.com/textagentur-labs/wortzahl/internal/extractors/pdf"
	"github.com/textagentur-labs/wortzahl/internal/extractors/plaintext"
	"github.com/textagentur-labs/wortzahl/internal/logger"
	"github.com/textagentur-labs/wortzahl/internal/textkit"
)

// version is overridden at release build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	// Report history is a convenience; a broken database should not
	// block ad-hoc analysis.
	var reportStore driven.ReportStore
	store, err := sqlite.NewStore(config.GetString(configfile.KeyDataDir))
	if err != nil {
		logger.Warn("report history unavailable: %v", err)
	} else {
		reportStore = store
		defer store.Close()
	}

	engine := textkit.NewEngine(textkit.NewResources(config.GetString(configfile.KeyResourcesDir)))

	extractors := []driven.Extractor{
		docx.New(),
		pdf.New(),
		plaintext.New(),
	}

	analyzer := services.NewAnalyzerService(engine, extractors, reportStore)
	reports := services.NewReportService(reportStore)

	cli.SetServices(analyzer, reports, driveConnector(config), config)
	cli.SetVersion(version)

	return cli.Execute()
}

// driveConnector builds the Drive connector when a token file is
// configured; otherwise the drive commands report that they are not
// set up.
func driveConnector(config *configfile.ConfigStore) driven.Connector {
	tokenFile := config.GetString(configfile.KeyDriveToken)
	if tokenFile == "" {
		return nil
	}

	ts, err := googledrive.TokenSourceFromFile(tokenFile)
	if err != nil {
		logger.Warn("drive token unusable: %v", err)
		return nil
	}

	connector, err := googledrive.NewConnector(context.Background(), ts)
	if err != nil {
		logger.Warn("drive connector unavailable: %v", err)
		return nil
	}
	return connector
}
