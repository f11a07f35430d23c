package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/textagentur-labs/wortzahl/internal/adapters/driving/web"
)

// defaultAddr is where the dashboard listens unless configured.
const defaultAddr = "127.0.0.1:8417"

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web dashboard",
	Long: `Serves the browser dashboard: document upload, stored reports and a
JSON API. Runs until interrupted.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, else "+defaultAddr+")")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if analyzerService == nil {
		return errors.New("analyzer service not configured")
	}

	addr := serveAddr
	if addr == "" && configStore != nil {
		addr = configStore.GetString("web.addr")
	}
	if addr == "" {
		addr = defaultAddr
	}

	server, err := web.NewServer(analyzerService, reportService)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Dashboard läuft auf http://%s\n", addr)
	return server.ListenAndServe(ctx, addr)
}
