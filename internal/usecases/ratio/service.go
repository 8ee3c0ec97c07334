package ratio

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/pool"
	"github.com/vfg2006/coop-ratio-api/infrastructure/repository"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
)

type RatioService interface {
	CalculatePeriod(ctx context.Context, periodID int) (*domain.RatioResult, error)
	GetByID(ctx context.Context, id int) (*domain.RatioResult, error)
	GetByPeriod(ctx context.Context, periodID int) (*domain.RatioResult, error)
	List(ctx context.Context, filters domain.RatioFilters) ([]*domain.RatioResult, error)
	// Preview calcula sem gravar, a partir de demonstrativos avulsos
	Preview(ctx context.Context, statements domain.Statements) (*domain.RatioResult, error)
	RecalculateCompany(ctx context.Context, companyID int) (*RecalcSummary, error)
	RecalculatePeriods(ctx context.Context, periods []*domain.FinancialPeriod) *RecalcSummary
}

type RecalcOutcome struct {
	PeriodID int    `json:"period_id"`
	Label    string `json:"label"`
	Error    string `json:"error,omitempty"`
}

type RecalcSummary struct {
	Total     int             `json:"total"`
	Succeeded int             `json:"succeeded"`
	Failed    int             `json:"failed"`
	Outcomes  []RecalcOutcome `json:"outcomes"`
}

type Service struct {
	periodRepo    repository.PeriodRepository
	statementRepo repository.StatementRepository
	ratioRepo     repository.RatioResultRepository
	benchmarks    BenchmarkService
	maxConcurrent int
}

func NewService(
	periodRepo repository.PeriodRepository,
	statementRepo repository.StatementRepository,
	ratioRepo repository.RatioResultRepository,
	benchmarks BenchmarkService,
	maxConcurrent int,
) RatioService {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	return &Service{
		periodRepo:    periodRepo,
		statementRepo: statementRepo,
		ratioRepo:     ratioRepo,
		benchmarks:    benchmarks,
		maxConcurrent: maxConcurrent,
	}
}

func dbError(err error, periodID int, details string) error {
	logrus.WithError(err).WithField("period_id", periodID).Error(details)
	return NewRatioErrorWithPeriod(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, periodID, details)
}

func (s *Service) CalculatePeriod(ctx context.Context, periodID int) (*domain.RatioResult, error) {
	period, err := s.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		return nil, dbError(err, periodID, "Falha ao buscar período")
	}
	if period == nil {
		return nil, NewRatioErrorWithPeriod(ErrPeriodNotFound, apiErrors.ErrResourceNotFound, periodID, "Período não encontrado")
	}

	statements, err := s.statementRepo.GetByPeriod(ctx, periodID)
	if err != nil {
		return nil, dbError(err, periodID, "Falha ao buscar demonstrativos")
	}

	result, err := Calculate(*statements, s.benchmarks.Benchmarks(ctx))
	if err != nil {
		var ratioErr *RatioError
		if errors.As(err, &ratioErr) {
			ratioErr.PeriodID = periodID
		}
		return nil, err
	}
	result.PeriodID = periodID

	saved, err := s.ratioRepo.Upsert(ctx, result)
	if err != nil {
		return nil, dbError(err, periodID, "Falha ao gravar índices")
	}

	logrus.WithFields(logrus.Fields{
		"period_id":    periodID,
		"company_id":   period.CompanyID,
		"working_fund": saved.WorkingFund,
		"net_margin":   saved.NetMargin,
	}).Info("Índices calculados")

	return saved, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (*domain.RatioResult, error) {
	result, err := s.ratioRepo.GetByID(ctx, id)
	if err != nil {
		return nil, dbError(err, 0, "Falha ao buscar índices")
	}
	if result == nil {
		return nil, NewRatioError(ErrResultNotFound, apiErrors.ErrResourceNotFound, "Resultado não encontrado")
	}
	return result, nil
}

func (s *Service) GetByPeriod(ctx context.Context, periodID int) (*domain.RatioResult, error) {
	result, err := s.ratioRepo.GetByPeriod(ctx, periodID)
	if err != nil {
		return nil, dbError(err, periodID, "Falha ao buscar índices")
	}
	if result == nil {
		return nil, NewRatioErrorWithPeriod(ErrResultNotFound, apiErrors.ErrResourceNotFound, periodID,
			"Índices ainda não calculados para o período")
	}
	return result, nil
}

func (s *Service) List(ctx context.Context, filters domain.RatioFilters) ([]*domain.RatioResult, error) {
	results, err := s.ratioRepo.List(ctx, filters)
	if err != nil {
		return nil, dbError(err, 0, "Falha ao listar índices")
	}
	return results, nil
}

func (s *Service) Preview(ctx context.Context, statements domain.Statements) (*domain.RatioResult, error) {
	return Calculate(statements, s.benchmarks.Benchmarks(ctx))
}

func (s *Service) RecalculateCompany(ctx context.Context, companyID int) (*RecalcSummary, error) {
	periods, err := s.periodRepo.List(ctx, domain.PeriodFilters{CompanyID: &companyID})
	if err != nil {
		return nil, dbError(err, 0, "Falha ao listar períodos da empresa")
	}

	return s.RecalculatePeriods(ctx, periods), nil
}

// RecalculatePeriods recalcula os períodos em paralelo, limitado por maxConcurrent.
// Falhas individuais não interrompem os demais.
func (s *Service) RecalculatePeriods(ctx context.Context, periods []*domain.FinancialPeriod) *RecalcSummary {
	var succeeded, failed atomic.Int64

	p := pool.NewWithResults[RecalcOutcome]().WithContext(ctx).WithMaxGoroutines(s.maxConcurrent)
	for _, period := range periods {
		period := period
		p.Go(func(ctx context.Context) (RecalcOutcome, error) {
			outcome := RecalcOutcome{PeriodID: period.ID, Label: period.Label}

			if _, err := s.CalculatePeriod(ctx, period.ID); err != nil {
				failed.Add(1)
				outcome.Error = err.Error()
				logrus.WithError(err).WithField("period_id", period.ID).Warn("Falha ao recalcular período")
				return outcome, nil
			}

			succeeded.Add(1)
			return outcome, nil
		})
	}

	outcomes, _ := p.Wait()

	return &RecalcSummary{
		Total:     len(periods),
		Succeeded: int(succeeded.Load()),
		Failed:    int(failed.Load()),
		Outcomes:  outcomes,
	}
}
