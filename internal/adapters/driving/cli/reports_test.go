package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textagentur-labs/wortzahl/internal/core/domain"
)

func seedReport(t *testing.T, save func(context.Context, *domain.AnalysisReport) error) {
	t.Helper()
	require.NoError(t, save(context.Background(), &domain.AnalysisReport{
		ID:        "report-1",
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Language:  domain.LanguageGerman,
		Documents: []domain.DocumentReport{
			{Name: "artikel.docx", Readability: domain.ReadabilityResult{Label: domain.ComplexityStandard}},
		},
	}))
}

func TestReportsCmd_EmptyHistory(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "reports")
	require.NoError(t, err)
	assert.Contains(t, out, "Keine gespeicherten Analysen.")
}

func TestReportsCmd_ListsReports(t *testing.T) {
	store, cleanup := setupTestServices()
	defer cleanup()
	seedReport(t, store.Save)

	out, err := execute(t, "reports")
	require.NoError(t, err)
	assert.Contains(t, out, "report-1")
	assert.Contains(t, out, "german")
	assert.Contains(t, out, "1 Dokument(e)")
}

func TestReportsShowCmd(t *testing.T) {
	store, cleanup := setupTestServices()
	defer cleanup()
	seedReport(t, store.Save)

	out, err := execute(t, "reports", "show", "report-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Dokument: artikel.docx")
}

func TestReportsShowCmd_NotFound(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "reports", "show", "fehlt")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReportsDeleteCmd(t *testing.T) {
	store, cleanup := setupTestServices()
	defer cleanup()
	seedReport(t, store.Save)

	out, err := execute(t, "reports", "delete", "report-1")
	require.NoError(t, err)
	assert.Contains(t, out, "gelöscht")

	_, err = store.Get(context.Background(), "report-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReportsExportCmd_Stdout(t *testing.T) {
	store, cleanup := setupTestServices()
	defer cleanup()
	seedReport(t, store.Save)

	out, err := execute(t, "reports", "export", "report-1")
	require.NoError(t, err)
	assert.Contains(t, out, "SEO Analyse Ergebnisse")
	assert.Contains(t, out, "Dokument: artikel.docx")
}

func TestReportsExportCmd_File(t *testing.T) {
	store, cleanup := setupTestServices()
	defer cleanup()
	seedReport(t, store.Save)

	target := filepath.Join(t.TempDir(), "export.txt")
	out, err := execute(t, "reports", "export", "--output", target, "report-1")
	t.Cleanup(func() { reportsOutput = "" })
	require.NoError(t, err)
	assert.Contains(t, out, "Export geschrieben")

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(content), "SEO Analyse Ergebnisse")
}
