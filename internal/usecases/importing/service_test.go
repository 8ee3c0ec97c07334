package importing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgmocks "github.com/vfg2006/coop-ratio-api/infrastructure/database/postgres/mocks"
	"github.com/vfg2006/coop-ratio-api/infrastructure/repository"
	"github.com/vfg2006/coop-ratio-api/infrastructure/repository/mocks"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type memoryStore struct {
	saved   map[string][]byte
	removed []string
}

func (m *memoryStore) Save(content []byte, ext string) (string, error) {
	path := "uploads/file" + ext
	m.saved[path] = content
	return path, nil
}

func (m *memoryStore) Remove(path string) error {
	m.removed = append(m.removed, path)
	delete(m.saved, path)
	return nil
}

type calculatorFunc func(ctx context.Context, periodID int) (*domain.RatioResult, error)

func (f calculatorFunc) CalculatePeriod(ctx context.Context, periodID int) (*domain.RatioResult, error) {
	return f(ctx, periodID)
}

type fixture struct {
	tx            *pgmocks.MockTransactor
	companyRepo   *mocks.MockCompanyRepository
	periodRepo    *mocks.MockPeriodRepository
	statementRepo *mocks.MockStatementRepository
	columnRepo    *mocks.MockColumnConfigRepository
	store         *memoryStore
	calculated    []int
	service       ImportService
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		tx:            pgmocks.NewMockTransactor(ctrl),
		companyRepo:   mocks.NewMockCompanyRepository(ctrl),
		periodRepo:    mocks.NewMockPeriodRepository(ctrl),
		statementRepo: mocks.NewMockStatementRepository(ctrl),
		columnRepo:    mocks.NewMockColumnConfigRepository(ctrl),
		store:         &memoryStore{saved: map[string][]byte{}},
	}
	f.tx.EXPECT().RunInTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) }).
		AnyTimes()

	calculator := calculatorFunc(func(_ context.Context, periodID int) (*domain.RatioResult, error) {
		f.calculated = append(f.calculated, periodID)
		return &domain.RatioResult{PeriodID: periodID}, nil
	})

	f.service = NewService(f.tx, f.companyRepo, f.periodRepo, f.statementRepo, f.columnRepo, calculator, f.store, 10)
	return f
}

func (f *fixture) expectCompanyAndConfigs(companyID int) {
	f.companyRepo.EXPECT().GetByID(gomock.Any(), companyID).Return(&domain.Company{ID: companyID}, nil)
	f.columnRepo.EXPECT().List(gomock.Any(), domain.ColumnConfigFilters{CompanyID: &companyID, IncludeGlobal: true}).Return(nil, nil)
}

func (f *fixture) expectStatements(periodID int) {
	f.statementRepo.EXPECT().CreateTradingAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, t *domain.TradingAccount) (*domain.TradingAccount, error) {
			if t.PeriodID != periodID {
				return nil, errors.New("período errado")
			}
			return t, nil
		})
	f.statementRepo.EXPECT().CreateProfitAndLoss(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.ProfitAndLoss) (*domain.ProfitAndLoss, error) { return p, nil })
	f.statementRepo.EXPECT().CreateBalanceSheet(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *domain.BalanceSheet) (*domain.BalanceSheet, error) { return b, nil })
	f.statementRepo.EXPECT().CreateOperationalMetrics(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o *domain.OperationalMetrics) (*domain.OperationalMetrics, error) { return o, nil })
}

func TestService_Import(t *testing.T) {
	ctx := context.Background()
	content := xyzWorkbook(t, nil)

	tests := []struct {
		name     string
		req      func() ImportRequest
		setup    func(f *fixture)
		validate func(t *testing.T, f *fixture, result *ImportResult, err error)
	}{
		{
			name: "Novo período a partir do nome do arquivo",
			req: func() ImportRequest {
				return ImportRequest{CompanyID: 1, FileName: "XYZ FY 2012-13.xlsx", Content: content}
			},
			setup: func(f *fixture) {
				f.expectCompanyAndConfigs(1)
				f.periodRepo.EXPECT().GetByLabel(gomock.Any(), 1, "FY_2012_13").Return(nil, nil)
				f.periodRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *domain.FinancialPeriod) (*domain.FinancialPeriod, error) {
						p.ID = 5
						return p, nil
					})
				f.expectStatements(5)
			},
			validate: func(t *testing.T, f *fixture, result *ImportResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, 5, result.PeriodID)
				assert.Equal(t, "FY_2012_13", result.Label)
				assert.False(t, result.Replaced)
				assert.Empty(t, result.Warnings)
				assert.Equal(t, []int{5}, f.calculated)
				assert.Len(t, f.store.saved, 1)
			},
		},
		{
			name: "Substitui demonstrativos de período não finalizado",
			req: func() ImportRequest {
				return ImportRequest{CompanyID: 1, FileName: "dados.xlsx", Label: "fy_2012_13", Content: content}
			},
			setup: func(f *fixture) {
				f.expectCompanyAndConfigs(1)
				f.periodRepo.EXPECT().GetByLabel(gomock.Any(), 1, "FY_2012_13").
					Return(&domain.FinancialPeriod{ID: 3, CompanyID: 1, Label: "FY_2012_13"}, nil)
				f.statementRepo.EXPECT().DeleteByPeriod(gomock.Any(), 3).Return(nil)
				f.periodRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *domain.FinancialPeriod) error {
						assert.Equal(t, 3, p.ID)
						require.NotNil(t, p.UploadedFile)
						assert.Equal(t, "uploads/file.xlsx", *p.UploadedFile)
						return nil
					})
				f.expectStatements(3)
			},
			validate: func(t *testing.T, f *fixture, result *ImportResult, err error) {
				require.NoError(t, err)
				assert.True(t, result.Replaced)
				assert.Equal(t, 3, result.PeriodID)
			},
		},
		{
			name: "Planilha substituída é removida do armazenamento",
			req: func() ImportRequest {
				return ImportRequest{CompanyID: 1, FileName: "FY_2012_13.xlsx", Content: content}
			},
			setup: func(f *fixture) {
				old := "uploads/anterior.xlsx"
				f.store.saved[old] = []byte("antigo")
				f.expectCompanyAndConfigs(1)
				f.periodRepo.EXPECT().GetByLabel(gomock.Any(), 1, "FY_2012_13").
					Return(&domain.FinancialPeriod{ID: 3, CompanyID: 1, Label: "FY_2012_13", UploadedFile: &old}, nil)
				f.statementRepo.EXPECT().DeleteByPeriod(gomock.Any(), 3).Return(nil)
				f.periodRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				f.expectStatements(3)
			},
			validate: func(t *testing.T, f *fixture, result *ImportResult, err error) {
				require.NoError(t, err)
				assert.True(t, result.Replaced)
				assert.Equal(t, []string{"uploads/anterior.xlsx"}, f.store.removed)
				assert.Contains(t, f.store.saved, "uploads/file.xlsx")
				assert.NotContains(t, f.store.saved, "uploads/anterior.xlsx")
			},
		},
		{
			name: "Criação simultânea do mesmo rótulo",
			req: func() ImportRequest {
				return ImportRequest{CompanyID: 1, FileName: "FY_2012_13.xlsx", Content: content}
			},
			setup: func(f *fixture) {
				f.expectCompanyAndConfigs(1)
				f.periodRepo.EXPECT().GetByLabel(gomock.Any(), 1, "FY_2012_13").Return(nil, nil)
				f.periodRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, repository.ErrDuplicate)
			},
			validate: func(t *testing.T, f *fixture, result *ImportResult, err error) {
				var importErr *ImportError
				require.True(t, errors.As(err, &importErr))
				assert.Equal(t, apiErrors.ErrDuplicateResource, importErr.Code)
				assert.ErrorIs(t, err, ErrDuplicatePeriod)
				assert.Empty(t, f.store.saved, "arquivo descartado")
				assert.Empty(t, f.calculated)
			},
		},
		{
			name: "Período finalizado não é substituído",
			req: func() ImportRequest {
				return ImportRequest{CompanyID: 1, FileName: "FY_2012_13.xlsx", Content: content}
			},
			setup: func(f *fixture) {
				f.expectCompanyAndConfigs(1)
				f.periodRepo.EXPECT().GetByLabel(gomock.Any(), 1, "FY_2012_13").
					Return(&domain.FinancialPeriod{ID: 3, Label: "FY_2012_13", IsFinalized: true}, nil)
			},
			validate: func(t *testing.T, f *fixture, result *ImportResult, err error) {
				var importErr *ImportError
				require.True(t, errors.As(err, &importErr))
				assert.Equal(t, apiErrors.ErrPeriodFinalized, importErr.Code)
				assert.Equal(t, 3, importErr.PeriodID)
				assert.Empty(t, f.store.saved, "arquivo descartado")
				assert.Empty(t, f.calculated)
			},
		},
		{
			name: "Extensão não suportada",
			req: func() ImportRequest {
				return ImportRequest{CompanyID: 1, FileName: "FY_2012_13.xls", Content: content}
			},
			setup: func(f *fixture) {},
			validate: func(t *testing.T, f *fixture, result *ImportResult, err error) {
				assert.ErrorIs(t, err, ErrUnsupportedFile)
			},
		},
		{
			name: "Rótulo não reconhecido sem datas",
			req: func() ImportRequest {
				return ImportRequest{CompanyID: 1, FileName: "relatorio.xlsx", Content: content}
			},
			setup: func(f *fixture) {
				f.companyRepo.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Company{ID: 1}, nil)
			},
			validate: func(t *testing.T, f *fixture, result *ImportResult, err error) {
				var importErr *ImportError
				require.True(t, errors.As(err, &importErr))
				assert.Equal(t, apiErrors.ErrInvalidFormat, importErr.Code)
			},
		},
		{
			name: "Empresa inexistente",
			req: func() ImportRequest {
				return ImportRequest{CompanyID: 9, FileName: "FY_2012_13.xlsx", Content: content}
			},
			setup: func(f *fixture) {
				f.companyRepo.EXPECT().GetByID(gomock.Any(), 9).Return(nil, nil)
			},
			validate: func(t *testing.T, f *fixture, result *ImportResult, err error) {
				assert.ErrorIs(t, err, ErrCompanyNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)
			result, err := f.service.Import(ctx, tt.req())
			tt.validate(t, f, result, err)
		})
	}
}

func TestService_Import_MissingFields(t *testing.T) {
	f := newFixture(t)
	f.expectCompanyAndConfigs(1)

	buf, err := Template(NewResolver(nil, DefaultCatalog), DefaultCatalog)
	require.NoError(t, err)

	_, err = f.service.Import(context.Background(), ImportRequest{CompanyID: 1, FileName: "Q1_FY_2024_25.xlsx", Content: buf.Bytes()})

	var importErr *ImportError
	require.True(t, errors.As(err, &importErr))
	assert.Equal(t, apiErrors.ErrIncompleteStatements, importErr.Code)
	assert.Contains(t, importErr.Missing, "OPERATIONAL.staff_count")
}

func TestService_ColumnConfigs(t *testing.T) {
	ctx := context.Background()
	companyID := 1

	t.Run("Cria configuração normalizada", func(t *testing.T) {
		f := newFixture(t)
		f.companyRepo.EXPECT().GetByID(ctx, companyID).Return(&domain.Company{ID: companyID}, nil)
		f.columnRepo.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, cfg *domain.StatementColumnConfig) (*domain.StatementColumnConfig, error) {
				cfg.ID = 11
				return cfg, nil
			})

		created, err := f.service.CreateColumnConfig(ctx, &domain.StatementColumnConfig{
			CompanyID:      &companyID,
			StatementType:  domain.StatementTypeProfitLoss,
			CanonicalField: " interest_on_deposits ",
			DisplayName:    "Deposit Interest",
			Aliases:        []string{" juros ", ""},
		})
		require.NoError(t, err)
		assert.Equal(t, 11, created.ID)
		assert.Equal(t, "interest_on_deposits", created.CanonicalField)
		assert.Equal(t, []string{"juros"}, created.Aliases)
	})

	t.Run("Campo fora do catálogo", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.CreateColumnConfig(ctx, &domain.StatementColumnConfig{
			StatementType:  domain.StatementTypeTrading,
			CanonicalField: "deposits",
			DisplayName:    "Deposits",
		})
		assert.ErrorIs(t, err, ErrInvalidColumnConfig)
	})

	t.Run("Duplicada", func(t *testing.T) {
		f := newFixture(t)
		f.columnRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil, repository.ErrDuplicate)

		_, err := f.service.CreateColumnConfig(ctx, &domain.StatementColumnConfig{
			StatementType:  domain.StatementTypeTrading,
			CanonicalField: "sales",
			DisplayName:    "Turnover",
		})
		var importErr *ImportError
		require.True(t, errors.As(err, &importErr))
		assert.Equal(t, apiErrors.ErrDuplicateResource, importErr.Code)
	})

	t.Run("Remoção de inexistente", func(t *testing.T) {
		f := newFixture(t)
		f.columnRepo.EXPECT().GetByID(ctx, 4).Return(nil, nil)

		err := f.service.DeleteColumnConfig(ctx, 4)
		assert.ErrorIs(t, err, ErrColumnConfigNotFound)
	})
}
