package analysis

import (
	"context"

	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
)

// Dashboard resume receita e lucro de cada período da empresa; com IncludeRatios
// acrescenta os índices gravados, opcionalmente restritos a uma categoria
func (s *Service) Dashboard(ctx context.Context, filters domain.DashboardFilters) (*domain.Dashboard, error) {
	if filters.CompanyID == 0 {
		return nil, NewAnalysisError(ErrCompanyRequired, apiErrors.ErrMissingRequiredData, 0, "Empresa é obrigatória")
	}

	periods, err := s.dashboardPeriods(ctx, filters)
	if err != nil {
		return nil, err
	}

	var keys []string
	var results map[int]*domain.RatioResult
	if filters.IncludeRatios {
		if filters.Category != "" {
			if keys, err = ratioKeys(nil, filters.Category); err != nil {
				return nil, err
			}
		}
		if results, err = s.resultsByPeriod(ctx, filters.CompanyID); err != nil {
			return nil, err
		}
	}

	dashboard := &domain.Dashboard{Periods: make([]domain.DashboardPeriod, 0, len(periods))}
	for _, period := range periods {
		item := domain.DashboardPeriod{
			ID:          period.ID,
			Label:       period.Label,
			PeriodType:  period.PeriodType,
			StartDate:   period.StartDate,
			EndDate:     period.EndDate,
			IsFinalized: period.IsFinalized,
		}

		periodID := period.ID
		profitLoss, err := s.statementRepo.ListProfitAndLoss(ctx, &periodID)
		if err != nil {
			return nil, dbError(err, period.ID, "Falha ao buscar demonstrativo de resultado")
		}
		if len(profitLoss) > 0 {
			item.NetRevenue = profitLoss[0].TotalIncome().Round(2).InexactFloat64()
			item.NetProfit = profitLoss[0].NetProfit.Round(2).InexactFloat64()
		}

		if result, ok := results[period.ID]; ok {
			item.Ratios = result.AllRatios.Filter(keys)
			item.TrafficLightStatus = filterStatuses(result.TrafficLightStatus, keys)
		}

		dashboard.Periods = append(dashboard.Periods, item)
	}

	return dashboard, nil
}

func (s *Service) dashboardPeriods(ctx context.Context, filters domain.DashboardFilters) ([]*domain.FinancialPeriod, error) {
	if filters.PeriodID == nil {
		periods, err := s.periodRepo.List(ctx, domain.PeriodFilters{CompanyID: &filters.CompanyID})
		if err != nil {
			return nil, dbError(err, 0, "Falha ao listar períodos")
		}
		return periods, nil
	}

	period, err := s.periodRepo.GetByID(ctx, *filters.PeriodID)
	if err != nil {
		return nil, dbError(err, *filters.PeriodID, "Falha ao buscar período")
	}
	if period == nil || period.CompanyID != filters.CompanyID {
		return nil, NewAnalysisError(ErrPeriodNotFound, apiErrors.ErrResourceNotFound, *filters.PeriodID, "Período não encontrado para a empresa")
	}

	return []*domain.FinancialPeriod{period}, nil
}

func filterStatuses(statuses map[string]domain.TrafficLight, keys []string) map[string]domain.TrafficLight {
	if len(keys) == 0 {
		return statuses
	}

	filtered := make(map[string]domain.TrafficLight, len(keys))
	for _, key := range keys {
		if status, ok := statuses[key]; ok {
			filtered[key] = status
		}
	}
	return filtered
}
