package driven

import (
	"context"

	"github.com/textagentur-labs/wortzahl/internal/core/domain"
)

// ReportStore persists analysis reports for the dashboard history.
// The engine itself never writes here; persistence is a caller
// concern.
type ReportStore interface {
	// Save stores a report.
	Save(ctx context.Context, report *domain.AnalysisReport) error

	// Get retrieves a report by ID.
	Get(ctx context.Context, id string) (*domain.AnalysisReport, error)

	// List returns the most recent reports, newest first.
	List(ctx context.Context, limit int) ([]domain.AnalysisReport, error)

	// Delete removes a report.
	Delete(ctx context.Context, id string) error
}
