package analysis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/coop-ratio-api/infrastructure/repository/mocks"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	periodRepo    *mocks.MockPeriodRepository
	statementRepo *mocks.MockStatementRepository
	ratioRepo     *mocks.MockRatioResultRepository
	service       AnalysisService
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		periodRepo:    mocks.NewMockPeriodRepository(ctrl),
		statementRepo: mocks.NewMockStatementRepository(ctrl),
		ratioRepo:     mocks.NewMockRatioResultRepository(ctrl),
	}
	f.service = NewService(f.periodRepo, f.statementRepo, f.ratioRepo)
	return f
}

func period(id int, label string, year int) *domain.FinancialPeriod {
	return &domain.FinancialPeriod{
		ID:         id,
		CompanyID:  1,
		Label:      label,
		PeriodType: domain.PeriodTypeYearly,
		StartDate:  domain.NewDate(year, time.April, 1),
		EndDate:    domain.NewDate(year+1, time.March, 31),
	}
}

func result(periodID int, ratios domain.RatioSet) *domain.RatioResult {
	statuses := make(map[string]domain.TrafficLight, len(ratios))
	for key := range ratios {
		statuses[key] = domain.TrafficLightGreen
	}
	return &domain.RatioResult{PeriodID: periodID, AllRatios: ratios, TrafficLightStatus: statuses}
}

func intPtr(v int) *int { return &v }

func TestService_Dashboard(t *testing.T) {
	ctx := context.Background()
	companyID := 1

	tests := []struct {
		name     string
		filters  domain.DashboardFilters
		setup    func(f *fixture)
		validate func(t *testing.T, dashboard *domain.Dashboard, err error)
	}{
		{
			name:    "Empresa obrigatória",
			filters: domain.DashboardFilters{},
			setup:   func(f *fixture) {},
			validate: func(t *testing.T, dashboard *domain.Dashboard, err error) {
				assert.ErrorIs(t, err, ErrCompanyRequired)
				assert.Nil(t, dashboard)
			},
		},
		{
			name:    "Todos os períodos com receita, lucro e índices da categoria",
			filters: domain.DashboardFilters{CompanyID: companyID, IncludeRatios: true, Category: domain.CategoryMargin},
			setup: func(f *fixture) {
				f.periodRepo.EXPECT().List(ctx, domain.PeriodFilters{CompanyID: &companyID}).
					Return([]*domain.FinancialPeriod{period(1, "FY_2012_13", 2012), period(2, "FY_2013_14", 2013)}, nil)
				f.ratioRepo.EXPECT().List(ctx, domain.RatioFilters{CompanyID: &companyID}).
					Return([]*domain.RatioResult{result(1, domain.RatioSet{"net_margin": 1.52, "stock_turnover": 17.38})}, nil)
				f.statementRepo.EXPECT().ListProfitAndLoss(ctx, intPtr(1)).Return([]*domain.ProfitAndLoss{{
					InterestOnLoans:     decimal.NewFromInt(100),
					InterestOnBankAc:    decimal.NewFromInt(20),
					ReturnOnInvestment:  decimal.NewFromInt(30),
					MiscellaneousIncome: decimal.NewFromInt(50),
					NetProfit:           decimal.NewFromFloat(12.345),
				}}, nil)
				f.statementRepo.EXPECT().ListProfitAndLoss(ctx, intPtr(2)).Return(nil, nil)
			},
			validate: func(t *testing.T, dashboard *domain.Dashboard, err error) {
				require.NoError(t, err)
				require.Len(t, dashboard.Periods, 2)

				first := dashboard.Periods[0]
				assert.Equal(t, 200.0, first.NetRevenue)
				assert.Equal(t, 12.35, first.NetProfit)
				assert.Equal(t, domain.RatioSet{"net_margin": 1.52}, first.Ratios)
				assert.Equal(t, map[string]domain.TrafficLight{"net_margin": domain.TrafficLightGreen}, first.TrafficLightStatus)

				second := dashboard.Periods[1]
				assert.Zero(t, second.NetRevenue)
				assert.Nil(t, second.Ratios)
			},
		},
		{
			name:    "Período de outra empresa",
			filters: domain.DashboardFilters{CompanyID: companyID, PeriodID: intPtr(9)},
			setup: func(f *fixture) {
				other := period(9, "FY_2012_13", 2012)
				other.CompanyID = 2
				f.periodRepo.EXPECT().GetByID(ctx, 9).Return(other, nil)
			},
			validate: func(t *testing.T, dashboard *domain.Dashboard, err error) {
				var analysisErr *AnalysisError
				require.True(t, errors.As(err, &analysisErr))
				assert.Equal(t, apiErrors.ErrResourceNotFound, analysisErr.Code)
			},
		},
		{
			name:    "Categoria desconhecida",
			filters: domain.DashboardFilters{CompanyID: companyID, PeriodID: intPtr(1), IncludeRatios: true, Category: "Sorte"},
			setup: func(f *fixture) {
				f.periodRepo.EXPECT().GetByID(ctx, 1).Return(period(1, "FY_2012_13", 2012), nil)
			},
			validate: func(t *testing.T, dashboard *domain.Dashboard, err error) {
				assert.ErrorIs(t, err, ErrUnknownCategory)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)
			dashboard, err := f.service.Dashboard(ctx, tt.filters)
			tt.validate(t, dashboard, err)
		})
	}
}

func TestService_Trends(t *testing.T) {
	ctx := context.Background()
	companyID := 1
	f := newFixture(t)

	// fora de ordem de propósito
	f.periodRepo.EXPECT().List(ctx, domain.PeriodFilters{CompanyID: &companyID}).Return([]*domain.FinancialPeriod{
		period(3, "FY_2014_15", 2014),
		period(1, "FY_2012_13", 2012),
		period(2, "FY_2013_14", 2013),
		period(4, "FY_2015_16", 2015),
	}, nil)
	f.ratioRepo.EXPECT().List(ctx, domain.RatioFilters{CompanyID: &companyID}).Return([]*domain.RatioResult{
		result(1, domain.RatioSet{"net_margin": 0, "credit_deposit_ratio": 80}),
		result(2, domain.RatioSet{"net_margin": 1.5, "credit_deposit_ratio": 90}),
		result(3, domain.RatioSet{"net_margin": 1.5, "credit_deposit_ratio": 72}),
	}, nil)

	trends, err := f.service.Trends(ctx, domain.TrendFilters{
		CompanyID: companyID,
		Ratios:    []string{"net_margin", "credit_deposit_ratio"},
	})
	require.NoError(t, err)
	require.Len(t, trends, 2)

	netMargin := trends[0]
	assert.Equal(t, "net_margin", netMargin.Key)
	assert.Equal(t, domain.CategoryMargin, netMargin.Category)
	require.Len(t, netMargin.Points, 3)
	assert.Equal(t, []string{"FY_2012_13", "FY_2013_14", "FY_2014_15"},
		[]string{netMargin.Points[0].Label, netMargin.Points[1].Label, netMargin.Points[2].Label})
	assert.Nil(t, netMargin.Points[0].ChangePercent)
	assert.Equal(t, domain.TrendStable, netMargin.Points[0].Direction)
	assert.Nil(t, netMargin.Points[1].ChangePercent, "anterior zero não gera variação")
	assert.Equal(t, domain.TrendUp, netMargin.Points[1].Direction)
	require.NotNil(t, netMargin.Points[2].ChangePercent)
	assert.Equal(t, 0.0, *netMargin.Points[2].ChangePercent)
	assert.Equal(t, domain.TrendStable, netMargin.Points[2].Direction)

	cdr := trends[1]
	require.NotNil(t, cdr.Points[1].ChangePercent)
	assert.Equal(t, 12.5, *cdr.Points[1].ChangePercent)
	require.NotNil(t, cdr.Points[2].ChangePercent)
	assert.Equal(t, -20.0, *cdr.Points[2].ChangePercent)
	assert.Equal(t, domain.TrendDown, cdr.Points[2].Direction)
}

func TestService_Trends_UnknownRatio(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Trends(context.Background(), domain.TrendFilters{CompanyID: 1, Ratios: []string{"luck"}})
	assert.ErrorIs(t, err, ErrUnknownRatio)
}

func TestService_CompareByID(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		setup    func(f *fixture)
		validate func(t *testing.T, comparison *domain.PeriodComparison, err error)
	}{
		{
			name: "Diferença e variação percentual",
			setup: func(f *fixture) {
				f.periodRepo.EXPECT().GetByID(ctx, 1).Return(period(1, "FY_2012_13", 2012), nil)
				f.periodRepo.EXPECT().GetByID(ctx, 2).Return(period(2, "FY_2013_14", 2013), nil)
				f.ratioRepo.EXPECT().GetByPeriod(ctx, 1).Return(result(1, domain.RatioSet{"net_margin": 0, "credit_deposit_ratio": 80}), nil)
				f.ratioRepo.EXPECT().GetByPeriod(ctx, 2).Return(result(2, domain.RatioSet{"net_margin": 1.25, "credit_deposit_ratio": 60}), nil)
			},
			validate: func(t *testing.T, comparison *domain.PeriodComparison, err error) {
				require.NoError(t, err)
				assert.Equal(t, "FY_2012_13", comparison.Period1.Label)
				assert.Equal(t, "FY_2013_14", comparison.Period2.Label)

				netMargin := comparison.Difference["net_margin"]
				assert.Equal(t, 1.25, netMargin.Value)
				assert.Nil(t, netMargin.PercentageChange)

				cdr := comparison.Difference["credit_deposit_ratio"]
				assert.Equal(t, -20.0, cdr.Value)
				require.NotNil(t, cdr.PercentageChange)
				assert.Equal(t, -25.0, *cdr.PercentageChange)
			},
		},
		{
			name: "Índices não calculados",
			setup: func(f *fixture) {
				f.periodRepo.EXPECT().GetByID(ctx, 1).Return(period(1, "FY_2012_13", 2012), nil)
				f.periodRepo.EXPECT().GetByID(ctx, 2).Return(period(2, "FY_2013_14", 2013), nil)
				f.ratioRepo.EXPECT().GetByPeriod(ctx, 1).Return(nil, nil)
			},
			validate: func(t *testing.T, comparison *domain.PeriodComparison, err error) {
				var analysisErr *AnalysisError
				require.True(t, errors.As(err, &analysisErr))
				assert.ErrorIs(t, err, ErrRatiosNotFound)
				assert.Equal(t, apiErrors.ErrResourceNotFound, analysisErr.Code)
				assert.Equal(t, 1, analysisErr.PeriodID)
			},
		},
		{
			name: "Período inexistente",
			setup: func(f *fixture) {
				f.periodRepo.EXPECT().GetByID(ctx, 1).Return(nil, nil)
			},
			validate: func(t *testing.T, comparison *domain.PeriodComparison, err error) {
				assert.ErrorIs(t, err, ErrPeriodNotFound)
			},
		},
		{
			name: "Falha no banco",
			setup: func(f *fixture) {
				f.periodRepo.EXPECT().GetByID(ctx, 1).Return(nil, errors.New("conexão perdida"))
			},
			validate: func(t *testing.T, comparison *domain.PeriodComparison, err error) {
				assert.ErrorIs(t, err, ErrDatabaseOperation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)
			comparison, err := f.service.CompareByID(ctx, 1, 2)
			tt.validate(t, comparison, err)
		})
	}
}

func TestService_CompareByLabel(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	// grafia alternativa cai no rótulo canônico
	f.periodRepo.EXPECT().GetByLabel(ctx, 1, "fy-2012-13").Return(nil, nil)
	f.periodRepo.EXPECT().GetByLabel(ctx, 1, "FY_2012_13").Return(period(1, "FY_2012_13", 2012), nil)
	f.periodRepo.EXPECT().GetByLabel(ctx, 1, "FY_2013_14").Return(period(2, "FY_2013_14", 2013), nil)
	f.ratioRepo.EXPECT().GetByPeriod(ctx, 1).Return(result(1, domain.RatioSet{"net_margin": 1}), nil)
	f.ratioRepo.EXPECT().GetByPeriod(ctx, 2).Return(result(2, domain.RatioSet{"net_margin": 1.5}), nil)

	comparison, err := f.service.CompareByLabel(ctx, 1, " fy-2012-13 ", "FY_2013_14")
	require.NoError(t, err)
	assert.Equal(t, 1, comparison.Period1.ID)
	require.NotNil(t, comparison.Difference["net_margin"].PercentageChange)
	assert.Equal(t, 50.0, *comparison.Difference["net_margin"].PercentageChange)
}

func TestService_CompareByLabel_NotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.periodRepo.EXPECT().GetByLabel(ctx, 1, "Semestre").Return(nil, nil)

	_, err := f.service.CompareByLabel(ctx, 1, "Semestre", "FY_2013_14")
	assert.ErrorIs(t, err, ErrPeriodNotFound)
}
