package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/textagentur-labs/wortzahl/internal/core/domain"
	"github.com/textagentur-labs/wortzahl/internal/core/ports/driven"
	"github.com/textagentur-labs/wortzahl/internal/core/ports/driving"
	"github.com/textagentur-labs/wortzahl/internal/logger"
	"github.com/textagentur-labs/wortzahl/internal/textkit"
)

// Ensure AnalyzerService implements the interface.
var _ driving.AnalyzerService = (*AnalyzerService)(nil)

// AnalyzerService runs the analytics engine over document batches.
// Scorers run best-effort: a failing sub-metric becomes a zero-valued
// placeholder plus a diagnostic, never a missing field and never an
// aborted batch.
type AnalyzerService struct {
	engine      *textkit.Engine
	extractors  map[string]driven.Extractor
	reportStore driven.ReportStore
}

// NewAnalyzerService creates the analysis façade. reportStore may be
// nil; persistence is then disabled. Extractors are registered by the
// extensions they support; later registrations win.
func NewAnalyzerService(
	engine *textkit.Engine,
	extractors []driven.Extractor,
	reportStore driven.ReportStore,
) *AnalyzerService {
	byExt := make(map[string]driven.Extractor)
	for _, ex := range extractors {
		for _, ext := range ex.SupportedExtensions() {
			byExt[strings.ToLower(ext)] = ex
		}
	}
	return &AnalyzerService{
		engine:      engine,
		extractors:  byExt,
		reportStore: reportStore,
	}
}

// Analyze computes every metric for the given documents.
func (s *AnalyzerService) Analyze(
	ctx context.Context, docs []domain.Document, opts driving.AnalyzeOptions,
) (*domain.AnalysisReport, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: no documents to analyze", domain.ErrEmptyCorpus)
	}

	language := opts.Language
	if language == "" {
		language = domain.DefaultLanguage
	}

	report := &domain.AnalysisReport{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		Language:  language,
	}

	logger.Section("Analyse")
	for _, doc := range docs {
		logger.Info("analyzing %q (%d raw words)", doc.Name, doc.RawWordCount)
		report.Documents = append(report.Documents, s.analyzeDocument(doc, language, opts.Keywords, report))
	}

	// Corpus-wide scoring over the full batch.
	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Text
	}
	var diags []domain.Diagnostic
	report.TFIDF, diags = s.engine.TFIDF(texts, language)
	report.Diagnostics = append(report.Diagnostics, diags...)
	report.WDFIDF, diags = s.engine.WDFIDF(texts, language)
	report.Diagnostics = append(report.Diagnostics, diags...)

	if opts.Persist {
		if err := s.persist(ctx, report); err != nil {
			// History is a convenience; the analysis itself succeeded.
			logger.Warn("report not persisted: %v", err)
			report.Diagnostics = append(report.Diagnostics, domain.Diagnostic{
				Component: "store",
				Message:   fmt.Sprintf("report not persisted: %v", err),
			})
		}
	}

	return report, nil
}

// analyzeDocument runs the per-document scorers. Each one is total;
// fallback diagnostics are attached to the batch report.
func (s *AnalyzerService) analyzeDocument(
	doc domain.Document, language string, keywords []string, report *domain.AnalysisReport,
) domain.DocumentReport {
	docReport := domain.DocumentReport{
		Name:         doc.Name,
		RawWordCount: doc.RawWordCount,
		Stats:        s.engine.WordStats(doc.Text),
		Readability:  s.engine.Readability(doc.Text),
	}

	if len(keywords) > 0 {
		docReport.KeywordDensity = s.engine.KeywordDensity(doc.Text, keywords)
	}

	semantic, diags := s.engine.Salience(doc.Text, language)
	docReport.Semantic = semantic
	for _, d := range diags {
		d.Document = doc.Name
		report.Diagnostics = append(report.Diagnostics, d)
	}

	return docReport
}

// ExtractAndAnalyze converts raw files to documents first. Unsupported
// or broken files are skipped with a diagnostic so one bad file does
// not sink the batch.
func (s *AnalyzerService) ExtractAndAnalyze(
	ctx context.Context, raws []domain.RawDocument, opts driving.AnalyzeOptions,
) (*domain.AnalysisReport, error) {
	var docs []domain.Document
	var skipped []domain.Diagnostic

	for i := range raws {
		doc, err := s.extract(ctx, &raws[i])
		if err != nil {
			logger.Warn("skipping %q: %v", raws[i].Name, err)
			skipped = append(skipped, domain.Diagnostic{
				Component: "extractor",
				Document:  raws[i].Name,
				Message:   err.Error(),
			})
			continue
		}
		docs = append(docs, *doc)
	}

	report, err := s.Analyze(ctx, docs, opts)
	if err != nil {
		return nil, err
	}
	report.Diagnostics = append(report.Diagnostics, skipped...)
	return report, nil
}

// extract picks the extractor by file extension.
func (s *AnalyzerService) extract(ctx context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	ext := strings.ToLower(filepath.Ext(raw.Name))
	extractor, ok := s.extractors[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, ext)
	}
	doc, err := extractor.Extract(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", raw.Name, err)
	}
	return doc, nil
}

// persist saves the report in the history store.
func (s *AnalyzerService) persist(ctx context.Context, report *domain.AnalysisReport) error {
	if s.reportStore == nil {
		return domain.ErrStoreUnavailable
	}
	return s.reportStore.Save(ctx, report)
}
