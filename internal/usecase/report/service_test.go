package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/worth-backend/internal/domain"
)

// MockHoldingSource is a mock implementation of HoldingSource for testing
type MockHoldingSource struct {
	mock.Mock
}

func (m *MockHoldingSource) Holdings(ctx context.Context) ([]domain.Holding, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Holding), args.Error(1)
}

func newTestService(source domain.HoldingSource) (*ReportService, *test.Hook) {
	log, hook := test.NewNullLogger()
	service := NewReportService(source, logrus.NewEntry(log))
	service.now = func() time.Time {
		return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	}
	return service, hook
}

func TestGenerate_MixedPortfolio(t *testing.T) {
	ctx := context.Background()
	mockSource := new(MockHoldingSource)
	service, hook := newTestService(mockSource)

	holdings := []domain.Holding{
		domain.MustHolding(decimal.NewFromInt(2), decimal.NewFromInt(1), domain.AssetKindStock),
		domain.MustHolding(decimal.NewFromInt(4), decimal.NewFromInt(3), domain.AssetKindStock),
		domain.MustHolding(decimal.RequireFromString("0.1"), decimal.NewFromInt(3), domain.AssetKindCash),
		domain.MustHolding(decimal.NewFromInt(350000), decimal.NewFromInt(1), domain.AssetKindRealEstate),
	}
	mockSource.On("Holdings", ctx).Return(holdings, nil)

	// Execute
	report, err := service.Generate(ctx)

	// Assert
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, report.ID)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), report.GeneratedAt)
	assert.Equal(t, 4, report.HoldingCount)
	assert.Equal(t, "350014.3", report.Total.String()) // 2 + 12 + 0.3 + 350000

	lines := report.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, domain.AssetKindStock, lines[0].Kind)
	assert.Equal(t, "14", lines[0].Worth.String())
	assert.Equal(t, domain.AssetKindCash, lines[1].Kind)
	assert.Equal(t, "0.3", lines[1].Worth.String())
	assert.Equal(t, domain.AssetKindRealEstate, lines[2].Kind)
	assert.Equal(t, "350000", lines[2].Worth.String())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Worth report generated", entry.Message)
	assert.Equal(t, "350014.3", entry.Data["total"])

	mockSource.AssertExpectations(t)
}

func TestGenerate_NoHoldings(t *testing.T) {
	ctx := context.Background()
	mockSource := new(MockHoldingSource)
	service, _ := newTestService(mockSource)

	mockSource.On("Holdings", ctx).Return([]domain.Holding{}, nil)

	report, err := service.Generate(ctx)

	require.NoError(t, err)
	assert.Equal(t, 0, report.HoldingCount)
	assert.True(t, report.Total.Equal(decimal.Zero))
	assert.Empty(t, report.Lines())

	mockSource.AssertExpectations(t)
}

func TestGenerate_SourceFailure(t *testing.T) {
	ctx := context.Background()
	mockSource := new(MockHoldingSource)
	service, hook := newTestService(mockSource)

	sourceErr := errors.New("line 3: invalid unit value")
	mockSource.On("Holdings", ctx).Return(nil, sourceErr)

	report, err := service.Generate(ctx)

	assert.Nil(t, report, "no partial report on failure")
	require.Error(t, err)
	assert.ErrorIs(t, err, sourceErr)
	assert.Contains(t, err.Error(), "failed to load holdings")
	assert.Empty(t, hook.AllEntries())

	mockSource.AssertExpectations(t)
}

func TestGenerate_UniqueIDs(t *testing.T) {
	ctx := context.Background()
	mockSource := new(MockHoldingSource)
	service, _ := newTestService(mockSource)

	mockSource.On("Holdings", ctx).Return([]domain.Holding{}, nil).Twice()

	first, err := service.Generate(ctx)
	require.NoError(t, err)
	second, err := service.Generate(ctx)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	mockSource.AssertExpectations(t)
}

func TestReport_LinesFollowKindOrder(t *testing.T) {
	report := &Report{
		ByKind: map[domain.AssetKind]decimal.Decimal{
			domain.AssetKindRealEstate:     decimal.NewFromInt(1),
			domain.AssetKindBond:           decimal.NewFromInt(2),
			domain.AssetKindCryptoCurrency: decimal.NewFromInt(3),
			domain.AssetKindStock:          decimal.NewFromInt(4),
		},
	}

	kinds := make([]domain.AssetKind, 0)
	for _, line := range report.Lines() {
		kinds = append(kinds, line.Kind)
	}

	assert.Equal(t, []domain.AssetKind{
		domain.AssetKindStock,
		domain.AssetKindBond,
		domain.AssetKindCryptoCurrency,
		domain.AssetKindRealEstate,
	}, kinds)
}
