package analysis

import (
	"context"
	"strings"

	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
	"github.com/vfg2006/coop-ratio-api/pkg/fiscal"
)

func (s *Service) CompareByID(ctx context.Context, periodID1, periodID2 int) (*domain.PeriodComparison, error) {
	p1, err := s.periodByID(ctx, periodID1)
	if err != nil {
		return nil, err
	}

	p2, err := s.periodByID(ctx, periodID2)
	if err != nil {
		return nil, err
	}

	return s.compare(ctx, p1, p2)
}

// CompareByLabel aceita o rótulo como gravado ou em qualquer grafia reconhecida
func (s *Service) CompareByLabel(ctx context.Context, companyID int, label1, label2 string) (*domain.PeriodComparison, error) {
	if companyID == 0 {
		return nil, NewAnalysisError(ErrCompanyRequired, apiErrors.ErrMissingRequiredData, 0, "Empresa é obrigatória")
	}

	p1, err := s.periodByLabel(ctx, companyID, label1)
	if err != nil {
		return nil, err
	}

	p2, err := s.periodByLabel(ctx, companyID, label2)
	if err != nil {
		return nil, err
	}

	return s.compare(ctx, p1, p2)
}

func (s *Service) periodByID(ctx context.Context, id int) (*domain.FinancialPeriod, error) {
	period, err := s.periodRepo.GetByID(ctx, id)
	if err != nil {
		return nil, dbError(err, id, "Falha ao buscar período")
	}
	if period == nil {
		return nil, NewAnalysisError(ErrPeriodNotFound, apiErrors.ErrResourceNotFound, id, "Período não encontrado")
	}
	return period, nil
}

func (s *Service) periodByLabel(ctx context.Context, companyID int, label string) (*domain.FinancialPeriod, error) {
	label = strings.TrimSpace(label)

	period, err := s.periodRepo.GetByLabel(ctx, companyID, label)
	if err != nil {
		return nil, dbError(err, 0, "Falha ao buscar período")
	}

	if period == nil {
		if parsed, ok := fiscal.ParseLabel(label); ok && parsed.Label != label {
			period, err = s.periodRepo.GetByLabel(ctx, companyID, parsed.Label)
			if err != nil {
				return nil, dbError(err, 0, "Falha ao buscar período")
			}
		}
	}

	if period == nil {
		return nil, NewAnalysisError(ErrPeriodNotFound, apiErrors.ErrResourceNotFound, 0, "Período '"+label+"' não encontrado")
	}
	return period, nil
}

func (s *Service) ratiosOf(ctx context.Context, period *domain.FinancialPeriod) (domain.RatioSet, error) {
	result, err := s.ratioRepo.GetByPeriod(ctx, period.ID)
	if err != nil {
		return nil, dbError(err, period.ID, "Falha ao buscar índices")
	}
	if result == nil {
		return nil, NewAnalysisError(ErrRatiosNotFound, apiErrors.ErrResourceNotFound, period.ID,
			"Índices não calculados para o período "+period.Label)
	}
	return result.AllRatios, nil
}

// compare calcula p2 - p1 para cada índice presente nos dois períodos
func (s *Service) compare(ctx context.Context, p1, p2 *domain.FinancialPeriod) (*domain.PeriodComparison, error) {
	r1, err := s.ratiosOf(ctx, p1)
	if err != nil {
		return nil, err
	}

	r2, err := s.ratiosOf(ctx, p2)
	if err != nil {
		return nil, err
	}

	difference := make(map[string]domain.RatioDifference, len(r1))
	for key, v1 := range r1 {
		v2, ok := r2[key]
		if !ok {
			continue
		}
		difference[key] = domain.RatioDifference{
			Value:            round2(v2 - v1),
			PercentageChange: changePercent(v1, v2),
		}
	}

	return &domain.PeriodComparison{
		Period1:    domain.PeriodRatios{ID: p1.ID, Label: p1.Label, Ratios: r1},
		Period2:    domain.PeriodRatios{ID: p2.ID, Label: p2.Label, Ratios: r2},
		Difference: difference,
	}, nil
}
