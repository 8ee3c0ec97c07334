package ratio

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/coop-ratio-api/infrastructure/repository/mocks"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/internal/sample"
	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	periodRepo    *mocks.MockPeriodRepository
	statementRepo *mocks.MockStatementRepository
	ratioRepo     *mocks.MockRatioResultRepository
	configRepo    *mocks.MockAppConfigRepository
	service       RatioService
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		periodRepo:    mocks.NewMockPeriodRepository(ctrl),
		statementRepo: mocks.NewMockStatementRepository(ctrl),
		ratioRepo:     mocks.NewMockRatioResultRepository(ctrl),
		configRepo:    mocks.NewMockAppConfigRepository(ctrl),
	}
	f.configRepo.EXPECT().Get(gomock.Any(), domain.BenchmarksConfigKey).Return(nil, nil).AnyTimes()

	f.service = NewService(f.periodRepo, f.statementRepo, f.ratioRepo, NewBenchmarkService(f.configRepo), 2)
	return f
}

func upsertEcho(_ context.Context, r *domain.RatioResult) (*domain.RatioResult, error) {
	r.ID = r.PeriodID * 10
	return r, nil
}

func TestService_CalculatePeriod(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		setup    func(f *fixture)
		validate func(t *testing.T, result *domain.RatioResult, err error)
	}{
		{
			name: "Calcula e grava índices do período",
			setup: func(f *fixture) {
				statements := sample.XYZStatements(1)
				f.periodRepo.EXPECT().GetByID(ctx, 1).Return(&domain.FinancialPeriod{ID: 1, CompanyID: 1}, nil)
				f.statementRepo.EXPECT().GetByPeriod(ctx, 1).Return(&statements, nil)
				f.ratioRepo.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(upsertEcho)
			},
			validate: func(t *testing.T, result *domain.RatioResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, result.PeriodID)
				assert.Equal(t, 10, result.ID)
				assert.InDelta(t, 518425409, result.WorkingFund, 0.01)
			},
		},
		{
			name: "Período inexistente",
			setup: func(f *fixture) {
				f.periodRepo.EXPECT().GetByID(ctx, 1).Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.RatioResult, err error) {
				assert.ErrorIs(t, err, ErrPeriodNotFound)
			},
		},
		{
			name: "Demonstrativos incompletos",
			setup: func(f *fixture) {
				f.periodRepo.EXPECT().GetByID(ctx, 1).Return(&domain.FinancialPeriod{ID: 1}, nil)
				f.statementRepo.EXPECT().GetByPeriod(ctx, 1).Return(&domain.Statements{}, nil)
			},
			validate: func(t *testing.T, result *domain.RatioResult, err error) {
				var ratioErr *RatioError
				require.True(t, errors.As(err, &ratioErr))
				assert.Equal(t, apiErrors.ErrIncompleteStatements, ratioErr.Code)
				assert.Equal(t, 1, ratioErr.PeriodID)
				assert.Len(t, ratioErr.Missing, 4)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)
			result, err := f.service.CalculatePeriod(ctx, 1)
			tt.validate(t, result, err)
		})
	}
}

func TestService_GetByPeriod_NotCalculated(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.ratioRepo.EXPECT().GetByPeriod(ctx, 3).Return(nil, nil)

	_, err := f.service.GetByPeriod(ctx, 3)
	assert.ErrorIs(t, err, ErrResultNotFound)
}

func TestService_Preview(t *testing.T) {
	f := newFixture(t)

	result, err := f.service.Preview(context.Background(), sample.XYZStatements(0))
	require.NoError(t, err)
	assert.Zero(t, result.ID)
	assert.InDelta(t, 90.20, result.AllRatios["credit_deposit_ratio"], 0.01)
}

func TestService_RecalculateCompany(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	companyID := 1
	periods := []*domain.FinancialPeriod{
		{ID: 1, CompanyID: 1, Label: "FY_2012_13"},
		{ID: 2, CompanyID: 1, Label: "FY_2013_14"},
		{ID: 3, CompanyID: 1, Label: "FY_2014_15"},
	}
	complete := sample.XYZStatements(0)

	f.periodRepo.EXPECT().List(ctx, domain.PeriodFilters{CompanyID: &companyID}).Return(periods, nil)
	for _, p := range periods {
		f.periodRepo.EXPECT().GetByID(gomock.Any(), p.ID).Return(p, nil)
	}
	f.statementRepo.EXPECT().GetByPeriod(gomock.Any(), 1).Return(&complete, nil)
	f.statementRepo.EXPECT().GetByPeriod(gomock.Any(), 2).Return(&complete, nil)
	f.statementRepo.EXPECT().GetByPeriod(gomock.Any(), 3).Return(&domain.Statements{}, nil)
	f.ratioRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(upsertEcho).Times(2)

	summary, err := f.service.RecalculateCompany(ctx, companyID)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
	assert.Len(t, summary.Outcomes, 3)
}
