package statement

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/coop-ratio-api/infrastructure/database/postgres"
	"github.com/vfg2006/coop-ratio-api/infrastructure/repository"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
)

type StatementService interface {
	ListPeriods(ctx context.Context, filters domain.PeriodFilters) ([]*domain.FinancialPeriod, error)
	GetPeriod(ctx context.Context, id int) (*domain.FinancialPeriod, error)
	GetPeriodDetail(ctx context.Context, id int) (*domain.PeriodDetail, error)
	CreatePeriod(ctx context.Context, input domain.PeriodInput) (*domain.FinancialPeriod, error)
	UpdatePeriod(ctx context.Context, id int, input domain.PeriodInput) (*domain.FinancialPeriod, error)
	DeletePeriod(ctx context.Context, id int) error
	FinalizePeriod(ctx context.Context, id int) (*domain.FinancialPeriod, error)

	ListTradingAccounts(ctx context.Context, periodID *int) ([]*domain.TradingAccount, error)
	GetTradingAccount(ctx context.Context, id int) (*domain.TradingAccount, error)
	CreateTradingAccount(ctx context.Context, t *domain.TradingAccount) (*domain.TradingAccount, error)
	UpdateTradingAccount(ctx context.Context, t *domain.TradingAccount) (*domain.TradingAccount, error)

	ListProfitAndLoss(ctx context.Context, periodID *int) ([]*domain.ProfitAndLoss, error)
	GetProfitAndLoss(ctx context.Context, id int) (*domain.ProfitAndLoss, error)
	CreateProfitAndLoss(ctx context.Context, p *domain.ProfitAndLoss) (*domain.ProfitAndLoss, error)
	UpdateProfitAndLoss(ctx context.Context, p *domain.ProfitAndLoss) (*domain.ProfitAndLoss, error)

	ListBalanceSheets(ctx context.Context, periodID *int) ([]*domain.BalanceSheetView, error)
	GetBalanceSheet(ctx context.Context, id int) (*domain.BalanceSheetView, error)
	CreateBalanceSheet(ctx context.Context, b *domain.BalanceSheet) (*domain.BalanceSheetView, error)
	UpdateBalanceSheet(ctx context.Context, b *domain.BalanceSheet) (*domain.BalanceSheetView, error)

	ListOperationalMetrics(ctx context.Context, periodID *int) ([]*domain.OperationalMetrics, error)
	GetOperationalMetrics(ctx context.Context, id int) (*domain.OperationalMetrics, error)
	CreateOperationalMetrics(ctx context.Context, o *domain.OperationalMetrics) (*domain.OperationalMetrics, error)
	UpdateOperationalMetrics(ctx context.Context, o *domain.OperationalMetrics) (*domain.OperationalMetrics, error)

	DeleteStatement(ctx context.Context, statementType domain.StatementType, id int) error
}

type Service struct {
	tx            postgres.Transactor
	companyRepo   repository.CompanyRepository
	periodRepo    repository.PeriodRepository
	statementRepo repository.StatementRepository
	ratioRepo     repository.RatioResultRepository
}

func NewService(
	tx postgres.Transactor,
	companyRepo repository.CompanyRepository,
	periodRepo repository.PeriodRepository,
	statementRepo repository.StatementRepository,
	ratioRepo repository.RatioResultRepository,
) StatementService {
	return &Service{
		tx:            tx,
		companyRepo:   companyRepo,
		periodRepo:    periodRepo,
		statementRepo: statementRepo,
		ratioRepo:     ratioRepo,
	}
}

func dbError(err error, periodID int, details string) error {
	logrus.WithError(err).WithField("period_id", periodID).Error(details)
	return NewStatementErrorWithPeriod(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, periodID, details)
}

// writablePeriod carrega o período e recusa alterações quando ele já foi finalizado
func (s *Service) writablePeriod(ctx context.Context, periodID int) (*domain.FinancialPeriod, error) {
	if periodID == 0 {
		return nil, NewStatementError(ErrMissingPeriod, apiErrors.ErrMissingRequiredData, "Período é obrigatório")
	}

	period, err := s.GetPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}

	if period.IsFinalized {
		return nil, NewStatementErrorWithPeriod(ErrPeriodFinalized, apiErrors.ErrPeriodFinalized, periodID, "Período finalizado não aceita alterações")
	}

	return period, nil
}

// write executa a alteração e marca os índices do período como desatualizados na mesma transação
func (s *Service) write(ctx context.Context, periodID int, fn func(ctx context.Context) error) error {
	if _, err := s.writablePeriod(ctx, periodID); err != nil {
		return err
	}

	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := fn(ctx); err != nil {
			return err
		}
		return s.periodRepo.Touch(ctx, periodID)
	})
	if err == nil {
		return nil
	}

	var statementErr *StatementError
	if errors.As(err, &statementErr) {
		return statementErr
	}

	if errors.Is(err, repository.ErrDuplicate) {
		return NewStatementErrorWithPeriod(ErrDuplicateStatement, apiErrors.ErrDuplicateResource, periodID, "O período já possui este demonstrativo")
	}

	return dbError(err, periodID, "Falha ao gravar demonstrativo")
}
