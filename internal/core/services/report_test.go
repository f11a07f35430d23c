package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textagentur-labs/wortzahl/internal/adapters/driven/storage/memory"
	"github.com/textagentur-labs/wortzahl/internal/core/domain"
)

func seedReports(t *testing.T, store *memory.ReportStore, n int) {
	t.Helper()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		require.NoError(t, store.Save(context.Background(), &domain.AnalysisReport{
			ID:        "report-" + string(rune('a'+i)),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			Language:  domain.LanguageGerman,
		}))
	}
}

func TestReportService_Get(t *testing.T) {
	store := memory.NewReportStore()
	seedReports(t, store, 1)
	svc := NewReportService(store)

	report, err := svc.Get(context.Background(), "report-a")
	require.NoError(t, err)
	assert.Equal(t, "report-a", report.ID)

	_, err = svc.Get(context.Background(), "fehlt")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReportService_Recent(t *testing.T) {
	store := memory.NewReportStore()
	seedReports(t, store, 3)
	svc := NewReportService(store)

	reports, err := svc.Recent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "report-c", reports[0].ID)
}

func TestReportService_RecentDefaultLimit(t *testing.T) {
	store := memory.NewReportStore()
	seedReports(t, store, 25)
	svc := NewReportService(store)

	reports, err := svc.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, reports, defaultRecentLimit)
}

func TestReportService_Delete(t *testing.T) {
	store := memory.NewReportStore()
	seedReports(t, store, 1)
	svc := NewReportService(store)

	require.NoError(t, svc.Delete(context.Background(), "report-a"))
	assert.ErrorIs(t, svc.Delete(context.Background(), "report-a"), domain.ErrNotFound)
}

func TestReportService_NilStore(t *testing.T) {
	svc := NewReportService(nil)

	_, err := svc.Get(context.Background(), "x")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = svc.Recent(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	assert.ErrorIs(t, svc.Delete(context.Background(), "x"), domain.ErrStoreUnavailable)
}
