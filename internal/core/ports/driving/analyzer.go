package driving

import (
	"context"

	"github.com/textagentur-labs/wortzahl/internal/core/domain"
)

// AnalyzeOptions configures a batch analysis.
type AnalyzeOptions struct {
	// Language selects tokenizer and stopword resources. Empty uses
	// domain.DefaultLanguage.
	Language string

	// Keywords are scored for density against every document.
	Keywords []string

	// Persist stores the finished report in the report history.
	Persist bool
}

// AnalyzerService runs the text analytics engine over a batch of
// extracted documents.
type AnalyzerService interface {
	// Analyze computes all metrics for the given documents. Individual
	// scorer failures degrade to zero-valued results with diagnostics;
	// only an empty batch is an error.
	Analyze(ctx context.Context, docs []domain.Document, opts AnalyzeOptions) (*domain.AnalysisReport, error)

	// ExtractAndAnalyze runs extraction on raw files first, then Analyze.
	// Files no extractor handles are skipped with a diagnostic.
	ExtractAndAnalyze(ctx context.Context, raws []domain.RawDocument, opts AnalyzeOptions) (*domain.AnalysisReport, error)
}

// ReportService provides read access to the stored report history.
type ReportService interface {
	// Get retrieves a stored report by ID.
	Get(ctx context.Context, id string) (*domain.AnalysisReport, error)

	// Recent returns the newest stored reports.
	Recent(ctx context.Context, limit int) ([]domain.AnalysisReport, error)

	// Delete removes a stored report.
	Delete(ctx context.Context, id string) error
}
