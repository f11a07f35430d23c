package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/textagentur-labs/wortzahl/internal/core/domain"
	"github.com/textagentur-labs/wortzahl/internal/core/ports/driving"
	"github.com/textagentur-labs/wortzahl/internal/logger"
)

// defaultDebounce batches rapid editor save events into one run.
const defaultDebounce = 500 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Re-analyze a directory whenever its documents change",
	Long: `Watches a directory and re-runs the analysis over all supported
files after every change. Stops on interrupt.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if analyzerService == nil {
		return errors.New("analyzer service not configured")
	}

	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	debounce := defaultDebounce
	if configStore != nil {
		if ms := configStore.GetInt("watch.debounce_ms"); ms > 0 {
			debounce = time.Duration(ms) * time.Millisecond
		}
	}

	cmd.Printf("Beobachte %s (Strg+C zum Beenden)\n\n", dir)

	// Initial run so the first output does not wait for a change.
	if err := analyzeDirectory(cmd, dir); err != nil {
		cmd.PrintErrf("Analyse fehlgeschlagen: %v\n", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var timer *time.Timer
	timerC := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watchRelevant(event) {
				continue
			}
			logger.Debug("watch: %s %s", event.Op, event.Name)
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case timerC <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cmd.PrintErrf("watch error: %v\n", err)
		case <-timerC:
			if err := analyzeDirectory(cmd, dir); err != nil {
				cmd.PrintErrf("Analyse fehlgeschlagen: %v\n", err)
			}
		}
	}
}

// watchRelevant filters events down to content changes of supported
// files.
func watchRelevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	return localExtensions[filepath.Ext(event.Name)]
}

// analyzeDirectory runs one batch analysis over the supported files in
// dir.
func analyzeDirectory(cmd *cobra.Command, dir string) error {
	paths, err := expandPaths([]string{dir})
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		cmd.Println("Keine unterstützten Dokumente im Verzeichnis.")
		return nil
	}

	raws := make([]domain.RawDocument, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			// The file may have been removed between walk and read.
			logger.Warn("watch: skipping %s: %v", path, err)
			continue
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
		return err
	}

	cmd.Printf("--- %s ---\n", time.Now().Format("15:04:05"))
	renderReport(cmd, report)
	return nil
}
