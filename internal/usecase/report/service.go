package report

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/simaogato/worth-backend/internal/domain"
	"github.com/simaogato/worth-backend/internal/usecase/aggregator"
)

// Report represents an auditable snapshot of total worth
type Report struct {
	ID           uuid.UUID
	GeneratedAt  time.Time
	HoldingCount int
	Total        decimal.Decimal
	ByKind       map[domain.AssetKind]decimal.Decimal
}

// Line is one row of the per-kind breakdown
type Line struct {
	Kind  domain.AssetKind
	Worth decimal.Decimal
}

// Lines returns the per-kind breakdown in AssetKinds() order.
// Kinds with no holdings are omitted.
func (r *Report) Lines() []Line {
	lines := make([]Line, 0, len(r.ByKind))
	for _, kind := range domain.AssetKinds() {
		worth, ok := r.ByKind[kind]
		if !ok {
			continue
		}
		lines = append(lines, Line{Kind: kind, Worth: worth})
	}
	return lines
}

// ReportService handles worth report generation
type ReportService struct {
	Source domain.HoldingSource
	Log    *logrus.Entry

	now func() time.Time
}

// NewReportService creates a new ReportService instance
func NewReportService(source domain.HoldingSource, log *logrus.Entry) *ReportService {
	return &ReportService{
		Source: source,
		Log:    log,
		now:    time.Now,
	}
}

// Generate loads all holdings and calculates the report
// Logic:
//   - Total: CalculateTotalWorth over every holding
//   - ByKind: per-kind subtotals (classification for display only)
//
// A failing source yields no report at all.
func (s *ReportService) Generate(ctx context.Context) (*Report, error) {
	holdings, err := s.Source.Holdings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load holdings: %w", err)
	}

	total := aggregator.CalculateTotalWorth(slices.Values(holdings))
	byKind := aggregator.WorthByKind(slices.Values(holdings))

	report := &Report{
		ID:           uuid.New(),
		GeneratedAt:  s.now(),
		HoldingCount: len(holdings),
		Total:        total,
		ByKind:       byKind,
	}

	s.Log.WithFields(logrus.Fields{
		"report_id": report.ID,
		"holdings":  report.HoldingCount,
		"total":     report.Total.String(),
	}).Info("Worth report generated")

	return report, nil
}
