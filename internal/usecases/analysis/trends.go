package analysis

import (
	"context"
	"sort"

	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
)

// Trends monta a série histórica de cada índice, em ordem de início do período.
// Períodos sem índices calculados ficam de fora.
func (s *Service) Trends(ctx context.Context, filters domain.TrendFilters) ([]domain.RatioTrend, error) {
	if filters.CompanyID == 0 {
		return nil, NewAnalysisError(ErrCompanyRequired, apiErrors.ErrMissingRequiredData, 0, "Empresa é obrigatória")
	}

	keys, err := ratioKeys(filters.Ratios, filters.Category)
	if err != nil {
		return nil, err
	}

	periods, err := s.periodRepo.List(ctx, domain.PeriodFilters{CompanyID: &filters.CompanyID})
	if err != nil {
		return nil, dbError(err, 0, "Falha ao listar períodos")
	}

	sort.SliceStable(periods, func(i, j int) bool {
		return periods[i].StartDate.Before(periods[j].StartDate.Time)
	})

	results, err := s.resultsByPeriod(ctx, filters.CompanyID)
	if err != nil {
		return nil, err
	}

	trends := make([]domain.RatioTrend, 0, len(keys))
	for _, key := range keys {
		def, _ := domain.RatioDefinitionByKey(key)
		trend := domain.RatioTrend{
			Key:      def.Key,
			Name:     def.Name,
			Category: def.Category,
			Unit:     def.Unit,
			Points:   make([]domain.TrendPoint, 0, len(periods)),
		}

		for _, period := range periods {
			result, ok := results[period.ID]
			if !ok {
				continue
			}
			value, ok := result.AllRatios[key]
			if !ok {
				continue
			}

			point := domain.TrendPoint{
				PeriodID:  period.ID,
				Label:     period.Label,
				StartDate: period.StartDate,
				Value:     value,
				Direction: domain.TrendStable,
			}

			if n := len(trend.Points); n > 0 {
				prev := trend.Points[n-1].Value
				point.ChangePercent = changePercent(prev, value)
				point.Direction = direction(prev, value)
			}

			trend.Points = append(trend.Points, point)
		}

		trends = append(trends, trend)
	}

	return trends, nil
}

func direction(prev, cur float64) domain.TrendDirection {
	switch {
	case cur > prev:
		return domain.TrendUp
	case cur < prev:
		return domain.TrendDown
	}
	return domain.TrendStable
}
