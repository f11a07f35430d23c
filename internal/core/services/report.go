package services

import (
	"context"

	"github.com/textagentur-labs/wortzahl/internal/core/domain"
	"github.com/textagentur-labs/wortzahl/internal/core/ports/driven"
	"github.com/textagentur-labs/wortzahl/internal/core/ports/driving"
)

// Ensure ReportService implements the interface.
var _ driving.ReportService = (*ReportService)(nil)

// defaultRecentLimit caps history listings when the caller passes 0.
const defaultRecentLimit = 20

// ReportService provides read access to the stored report history.
type ReportService struct {
	store driven.ReportStore
}

// NewReportService creates a report service over the given store.
func NewReportService(store driven.ReportStore) *ReportService {
	return &ReportService{store: store}
}

// Get retrieves a stored report by ID.
func (s *ReportService) Get(ctx context.Context, id string) (*domain.AnalysisReport, error) {
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}
	return s.store.Get(ctx, id)
}

// Recent returns the newest stored reports.
func (s *ReportService) Recent(ctx context.Context, limit int) ([]domain.AnalysisReport, error) {
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return s.store.List(ctx, limit)
}

// Delete removes a stored report.
func (s *ReportService) Delete(ctx context.Context, id string) error {
	if s.store == nil {
		return domain.ErrStoreUnavailable
	}
	return s.store.Delete(ctx, id)
}
