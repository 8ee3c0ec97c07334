package analysis

import (
	"context"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/coop-ratio-api/infrastructure/repository"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
	"github.com/vfg2006/coop-ratio-api/pkg/utils"
)

type AnalysisService interface {
	Dashboard(ctx context.Context, filters domain.DashboardFilters) (*domain.Dashboard, error)
	Trends(ctx context.Context, filters domain.TrendFilters) ([]domain.RatioTrend, error)
	CompareByID(ctx context.Context, periodID1, periodID2 int) (*domain.PeriodComparison, error)
	CompareByLabel(ctx context.Context, companyID int, label1, label2 string) (*domain.PeriodComparison, error)
}

type Service struct {
	periodRepo    repository.PeriodRepository
	statementRepo repository.StatementRepository
	ratioRepo     repository.RatioResultRepository
}

func NewService(
	periodRepo repository.PeriodRepository,
	statementRepo repository.StatementRepository,
	ratioRepo repository.RatioResultRepository,
) AnalysisService {
	return &Service{
		periodRepo:    periodRepo,
		statementRepo: statementRepo,
		ratioRepo:     ratioRepo,
	}
}

func dbError(err error, periodID int, details string) error {
	logrus.WithError(err).WithField("period_id", periodID).Error(details)
	return NewAnalysisError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, periodID, details)
}

var round2 = utils.RoundWithTwoDecimalPlace

// changePercent devolve (atual - anterior) / |anterior| * 100, ou nil quando o anterior é zero
func changePercent(prev, cur float64) *float64 {
	if prev == 0 {
		return nil
	}
	change := round2((cur - prev) / math.Abs(prev) * 100)
	return &change
}

// ratioKeys resolve as chaves pedidas: lista explícita, categoria, ou o catálogo completo
func ratioKeys(keys []string, category string) ([]string, error) {
	if len(keys) > 0 {
		for _, key := range keys {
			if _, ok := domain.RatioDefinitionByKey(key); !ok {
				return nil, NewAnalysisError(ErrUnknownRatio, apiErrors.ErrInvalidFormat, 0, "Índice desconhecido: "+key)
			}
		}
		return keys, nil
	}

	if category != "" {
		if !domain.IsRatioCategory(category) {
			return nil, NewAnalysisError(ErrUnknownCategory, apiErrors.ErrInvalidFormat, 0, "Categoria desconhecida: "+category)
		}
		return domain.RatioKeysByCategory(category), nil
	}

	all := make([]string, 0, len(domain.RatioCatalog))
	for _, def := range domain.RatioCatalog {
		all = append(all, def.Key)
	}
	return all, nil
}

// resultsByPeriod indexa os resultados da empresa pelo período
func (s *Service) resultsByPeriod(ctx context.Context, companyID int) (map[int]*domain.RatioResult, error) {
	results, err := s.ratioRepo.List(ctx, domain.RatioFilters{CompanyID: &companyID})
	if err != nil {
		return nil, dbError(err, 0, "Falha ao listar índices da empresa")
	}

	index := make(map[int]*domain.RatioResult, len(results))
	for _, result := range results {
		index[result.PeriodID] = result
	}
	return index, nil
}
