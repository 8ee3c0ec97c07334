package statement

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgmocks "github.com/vfg2006/coop-ratio-api/infrastructure/database/postgres/mocks"
	"github.com/vfg2006/coop-ratio-api/infrastructure/repository"
	"github.com/vfg2006/coop-ratio-api/infrastructure/repository/mocks"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	tx            *pgmocks.MockTransactor
	companyRepo   *mocks.MockCompanyRepository
	periodRepo    *mocks.MockPeriodRepository
	statementRepo *mocks.MockStatementRepository
	ratioRepo     *mocks.MockRatioResultRepository
	service       StatementService
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		tx:            pgmocks.NewMockTransactor(ctrl),
		companyRepo:   mocks.NewMockCompanyRepository(ctrl),
		periodRepo:    mocks.NewMockPeriodRepository(ctrl),
		statementRepo: mocks.NewMockStatementRepository(ctrl),
		ratioRepo:     mocks.NewMockRatioResultRepository(ctrl),
	}
	f.tx.EXPECT().
		RunInTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()

	f.service = NewService(f.tx, f.companyRepo, f.periodRepo, f.statementRepo, f.ratioRepo)
	return f
}

func code(t *testing.T, err error) string {
	t.Helper()
	var statementErr *StatementError
	require.True(t, errors.As(err, &statementErr), "esperado StatementError, recebido %v", err)
	return statementErr.Code
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestBuildPeriod(t *testing.T) {
	start := domain.NewDate(2024, 1, 1)
	end := domain.NewDate(2024, 3, 31)

	tests := []struct {
		name     string
		input    domain.PeriodInput
		validate func(t *testing.T, p *domain.FinancialPeriod, err error)
	}{
		{
			name:  "Deduz tipo e datas do rótulo trimestral",
			input: domain.PeriodInput{CompanyID: 1, Label: "q1-fy-2024-25"},
			validate: func(t *testing.T, p *domain.FinancialPeriod, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.PeriodTypeQuarterly, p.PeriodType)
				assert.Equal(t, "2024-04-01", p.StartDate.String())
				assert.Equal(t, "2024-06-30", p.EndDate.String())
				assert.Equal(t, "Q1_FY_2024_25", p.Label)
			},
		},
		{
			name: "Mantém tipo e datas informados",
			input: domain.PeriodInput{
				CompanyID:  1,
				Label:      "Trimestre especial",
				PeriodType: domain.PeriodTypeQuarterly,
				StartDate:  &start,
				EndDate:    &end,
			},
			validate: func(t *testing.T, p *domain.FinancialPeriod, err error) {
				require.NoError(t, err)
				assert.Equal(t, "Trimestre especial", p.Label)
				assert.Equal(t, "2024-01-01", p.StartDate.String())
			},
		},
		{
			name:  "Rótulo não reconhecido sem datas",
			input: domain.PeriodInput{CompanyID: 1, Label: "qualquer coisa"},
			validate: func(t *testing.T, p *domain.FinancialPeriod, err error) {
				assert.ErrorIs(t, err, ErrUnknownLabel)
				assert.Equal(t, apiErrors.ErrInvalidFormat, code(t, err))
			},
		},
		{
			name: "Data de início posterior ao fim",
			input: domain.PeriodInput{
				CompanyID:  1,
				Label:      "Invertido",
				PeriodType: domain.PeriodTypeMonthly,
				StartDate:  &end,
				EndDate:    &start,
			},
			validate: func(t *testing.T, p *domain.FinancialPeriod, err error) {
				assert.ErrorIs(t, err, ErrInvalidPeriod)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := BuildPeriod(tt.input)
			tt.validate(t, p, err)
		})
	}
}

func TestService_CreatePeriod(t *testing.T) {
	ctx := context.Background()

	t.Run("Cria período a partir do rótulo", func(t *testing.T) {
		f := newFixture(t)
		f.companyRepo.EXPECT().GetByID(ctx, 1).Return(&domain.Company{ID: 1}, nil)
		f.periodRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p *domain.FinancialPeriod) (*domain.FinancialPeriod, error) {
				p.ID = 5
				return p, nil
			})

		period, err := f.service.CreatePeriod(ctx, domain.PeriodInput{CompanyID: 1, Label: "FY_2012_13"})
		require.NoError(t, err)
		assert.Equal(t, 5, period.ID)
		assert.Equal(t, domain.PeriodTypeYearly, period.PeriodType)
		assert.Equal(t, "2013-03-31", period.EndDate.String())
	})

	t.Run("Rótulo duplicado para a empresa", func(t *testing.T) {
		f := newFixture(t)
		f.companyRepo.EXPECT().GetByID(ctx, 1).Return(&domain.Company{ID: 1}, nil)
		f.periodRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil, repository.ErrDuplicate)

		_, err := f.service.CreatePeriod(ctx, domain.PeriodInput{CompanyID: 1, Label: "FY_2012_13"})
		assert.ErrorIs(t, err, ErrDuplicatePeriod)
		assert.Equal(t, apiErrors.ErrDuplicateResource, code(t, err))
	})

	t.Run("Empresa inexistente", func(t *testing.T) {
		f := newFixture(t)
		f.companyRepo.EXPECT().GetByID(ctx, 99).Return(nil, nil)

		_, err := f.service.CreatePeriod(ctx, domain.PeriodInput{CompanyID: 99, Label: "Apr_2024"})
		assert.ErrorIs(t, err, ErrCompanyNotFound)
	})
}

func TestService_GetPeriodDetail(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	balance := &domain.BalanceSheet{PeriodID: 3, ShareCapital: dec(100), Deposits: dec(900), CashInHand: dec(1000)}

	f.periodRepo.EXPECT().GetByID(ctx, 3).Return(&domain.FinancialPeriod{ID: 3, CompanyID: 1, Label: "FY_2012_13"}, nil)
	f.companyRepo.EXPECT().GetByID(ctx, 1).Return(&domain.Company{ID: 1, Name: "XYZ"}, nil)
	f.statementRepo.EXPECT().GetByPeriod(ctx, 3).Return(&domain.Statements{Balance: balance}, nil)
	f.ratioRepo.EXPECT().GetByPeriod(ctx, 3).Return(nil, nil)

	detail, err := f.service.GetPeriodDetail(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "XYZ", detail.CompanyName)
	assert.Nil(t, detail.TradingAccount)
	require.NotNil(t, detail.BalanceSheet)
	assert.True(t, detail.BalanceSheet.WorkingFund.Equal(dec(1000)))
	assert.True(t, detail.BalanceSheet.BalanceCheck.IsBalanced)
	assert.Nil(t, detail.Ratios)
}

func TestService_StatementWrites(t *testing.T) {
	ctx := context.Background()
	openPeriod := &domain.FinancialPeriod{ID: 3, CompanyID: 1}
	finalized := &domain.FinancialPeriod{ID: 4, CompanyID: 1, IsFinalized: true}

	tests := []struct {
		name string
		run  func(t *testing.T, f *fixture)
	}{
		{
			name: "Cria conta de trading e marca período",
			run: func(t *testing.T, f *fixture) {
				f.periodRepo.EXPECT().GetByID(ctx, 3).Return(openPeriod, nil)
				f.statementRepo.EXPECT().
					CreateTradingAccount(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, ta *domain.TradingAccount) (*domain.TradingAccount, error) {
						ta.ID = 10
						return ta, nil
					})
				f.periodRepo.EXPECT().Touch(gomock.Any(), 3).Return(nil)

				created, err := f.service.CreateTradingAccount(ctx, &domain.TradingAccount{PeriodID: 3, Sales: dec(100)})
				require.NoError(t, err)
				assert.Equal(t, 10, created.ID)
			},
		},
		{
			name: "Segundo demonstrativo no mesmo período",
			run: func(t *testing.T, f *fixture) {
				f.periodRepo.EXPECT().GetByID(ctx, 3).Return(openPeriod, nil)
				f.statementRepo.EXPECT().CreateProfitAndLoss(gomock.Any(), gomock.Any()).Return(nil, repository.ErrDuplicate)

				_, err := f.service.CreateProfitAndLoss(ctx, &domain.ProfitAndLoss{PeriodID: 3})
				assert.ErrorIs(t, err, ErrDuplicateStatement)
				assert.Equal(t, apiErrors.ErrDuplicateResource, code(t, err))
			},
		},
		{
			name: "Período finalizado recusa escrita",
			run: func(t *testing.T, f *fixture) {
				f.periodRepo.EXPECT().GetByID(ctx, 4).Return(finalized, nil)

				_, err := f.service.CreateOperationalMetrics(ctx, &domain.OperationalMetrics{PeriodID: 4, StaffCount: 3})
				assert.ErrorIs(t, err, ErrPeriodFinalized)
				assert.Equal(t, apiErrors.ErrPeriodFinalized, code(t, err))
			},
		},
		{
			name: "Funcionários negativos",
			run: func(t *testing.T, f *fixture) {
				_, err := f.service.CreateOperationalMetrics(ctx, &domain.OperationalMetrics{PeriodID: 3, StaffCount: -1})
				assert.ErrorIs(t, err, ErrInvalidStatement)
			},
		},
		{
			name: "Balanço desequilibrado é gravado com aviso",
			run: func(t *testing.T, f *fixture) {
				f.periodRepo.EXPECT().GetByID(ctx, 3).Return(openPeriod, nil)
				f.statementRepo.EXPECT().
					CreateBalanceSheet(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, b *domain.BalanceSheet) (*domain.BalanceSheet, error) {
						b.ID = 20
						return b, nil
					})
				f.periodRepo.EXPECT().Touch(gomock.Any(), 3).Return(nil)

				view, err := f.service.CreateBalanceSheet(ctx, &domain.BalanceSheet{
					PeriodID:     3,
					ShareCapital: dec(1000),
					CashInHand:   dec(500),
				})
				require.NoError(t, err)
				assert.False(t, view.BalanceCheck.IsBalanced)
				assert.True(t, view.BalanceCheck.Difference.Equal(dec(500)))
			},
		},
		{
			name: "Atualização mantém o período original",
			run: func(t *testing.T, f *fixture) {
				f.statementRepo.EXPECT().GetTradingAccount(ctx, 10).Return(&domain.TradingAccount{ID: 10, PeriodID: 3}, nil)
				f.periodRepo.EXPECT().GetByID(ctx, 3).Return(openPeriod, nil)
				f.statementRepo.EXPECT().
					UpdateTradingAccount(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, ta *domain.TradingAccount) error {
						assert.Equal(t, 3, ta.PeriodID)
						return nil
					})
				f.periodRepo.EXPECT().Touch(gomock.Any(), 3).Return(nil)

				_, err := f.service.UpdateTradingAccount(ctx, &domain.TradingAccount{ID: 10, PeriodID: 99})
				require.NoError(t, err)
			},
		},
		{
			name: "Remove demonstrativo inexistente",
			run: func(t *testing.T, f *fixture) {
				f.statementRepo.EXPECT().GetOperationalMetrics(ctx, 77).Return(nil, nil)

				err := f.service.DeleteStatement(ctx, domain.StatementTypeOperational, 77)
				assert.ErrorIs(t, err, ErrStatementNotFound)
				assert.Equal(t, apiErrors.ErrResourceNotFound, code(t, err))
			},
		},
		{
			name: "Remove demonstrativo",
			run: func(t *testing.T, f *fixture) {
				f.statementRepo.EXPECT().GetProfitAndLoss(ctx, 8).Return(&domain.ProfitAndLoss{ID: 8, PeriodID: 3}, nil)
				f.periodRepo.EXPECT().GetByID(ctx, 3).Return(openPeriod, nil)
				f.statementRepo.EXPECT().Delete(gomock.Any(), domain.StatementTypeProfitLoss, 8).Return(nil)
				f.periodRepo.EXPECT().Touch(gomock.Any(), 3).Return(nil)

				assert.NoError(t, f.service.DeleteStatement(ctx, domain.StatementTypeProfitLoss, 8))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.run(t, newFixture(t))
		})
	}
}

func TestService_FinalizePeriod(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.periodRepo.EXPECT().GetByID(ctx, 3).Return(&domain.FinancialPeriod{ID: 3}, nil)
	f.periodRepo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.FinancialPeriod) error {
			assert.True(t, p.IsFinalized)
			return nil
		})

	period, err := f.service.FinalizePeriod(ctx, 3)
	require.NoError(t, err)
	assert.True(t, period.IsFinalized)
}

func TestService_UpdatePeriod(t *testing.T) {
	ctx := context.Background()
	finalized := true

	tests := []struct {
		name     string
		existing *domain.FinancialPeriod
		input    domain.PeriodInput
		validate func(t *testing.T, period *domain.FinancialPeriod, err error)
	}{
		{
			name: "Finaliza período com rótulo livre",
			existing: &domain.FinancialPeriod{
				ID: 4, CompanyID: 1, Label: "Annual Audit 2023", PeriodType: domain.PeriodTypeYearly,
				StartDate: domain.NewDate(2023, 1, 1), EndDate: domain.NewDate(2023, 12, 31),
			},
			input: domain.PeriodInput{IsFinalized: &finalized},
			validate: func(t *testing.T, period *domain.FinancialPeriod, err error) {
				require.NoError(t, err)
				assert.True(t, period.IsFinalized)
				assert.Equal(t, "Annual Audit 2023", period.Label)
				assert.Equal(t, "2023-01-01", period.StartDate.String())
				assert.Equal(t, "2023-12-31", period.EndDate.String())
			},
		},
		{
			name: "Mantém datas gravadas quando o rótulo não muda",
			existing: &domain.FinancialPeriod{
				ID: 4, CompanyID: 1, Label: "FY_2023_24", PeriodType: domain.PeriodTypeHalfYearly,
				StartDate: domain.NewDate(2023, 4, 1), EndDate: domain.NewDate(2023, 9, 30),
			},
			input: domain.PeriodInput{Label: "FY_2023_24"},
			validate: func(t *testing.T, period *domain.FinancialPeriod, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.PeriodTypeHalfYearly, period.PeriodType)
				assert.Equal(t, "2023-09-30", period.EndDate.String())
			},
		},
		{
			name: "Novo rótulo reconhecido recalcula tipo e datas",
			existing: &domain.FinancialPeriod{
				ID: 4, CompanyID: 1, Label: "Apr_2024", PeriodType: domain.PeriodTypeMonthly,
				StartDate: domain.NewDate(2024, 4, 1), EndDate: domain.NewDate(2024, 4, 30),
			},
			input: domain.PeriodInput{Label: "Q2_FY_2024_25"},
			validate: func(t *testing.T, period *domain.FinancialPeriod, err error) {
				require.NoError(t, err)
				assert.Equal(t, "Q2_FY_2024_25", period.Label)
				assert.Equal(t, domain.PeriodTypeQuarterly, period.PeriodType)
				assert.Equal(t, "2024-07-01", period.StartDate.String())
				assert.Equal(t, "2024-09-30", period.EndDate.String())
			},
		},
		{
			name: "Novo rótulo livre preserva datas gravadas",
			existing: &domain.FinancialPeriod{
				ID: 4, CompanyID: 1, Label: "Apr_2024", PeriodType: domain.PeriodTypeMonthly,
				StartDate: domain.NewDate(2024, 4, 1), EndDate: domain.NewDate(2024, 4, 30),
			},
			input: domain.PeriodInput{Label: "April closing"},
			validate: func(t *testing.T, period *domain.FinancialPeriod, err error) {
				require.NoError(t, err)
				assert.Equal(t, "April closing", period.Label)
				assert.Equal(t, domain.PeriodTypeMonthly, period.PeriodType)
				assert.Equal(t, "2024-04-30", period.EndDate.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.periodRepo.EXPECT().GetByID(ctx, tt.existing.ID).Return(tt.existing, nil)
			f.periodRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

			period, err := f.service.UpdatePeriod(ctx, tt.existing.ID, tt.input)
			tt.validate(t, period, err)
		})
	}
}
