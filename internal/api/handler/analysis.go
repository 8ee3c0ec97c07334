package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/analysis"
	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
)

// companyParam lê o id obrigatório da empresa (?company= ou ?company_id=)
func companyParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	companyID, err := queryInt(r, "company", "company_id")
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return 0, false
	}
	if companyID == nil {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro company é obrigatório", nil)
		return 0, false
	}
	return *companyID, true
}

func Dashboard(service analysis.AnalysisService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - Dashboard")

		companyID, ok := companyParam(w, r)
		if !ok {
			return
		}

		filters := domain.DashboardFilters{
			CompanyID:     companyID,
			IncludeRatios: queryBool(r, "include_ratios"),
			Category:      strings.TrimSpace(r.URL.Query().Get("category")),
		}

		// period=all (ou ausente) lista todos os períodos da empresa
		if period := strings.TrimSpace(r.URL.Query().Get("period")); period != "" && period != "all" {
			periodID, err := strconv.Atoi(period)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro period deve ser 'all' ou um id", nil)
				return
			}
			filters.PeriodID = &periodID
		}

		dashboard, err := service.Dashboard(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar o painel")
			return
		}

		writeEnvelope(w, http.StatusOK, dashboard)
	}
}

func RatioTrends(service analysis.AnalysisService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RatioTrends")

		companyID, ok := companyParam(w, r)
		if !ok {
			return
		}

		var keys []string
		for _, key := range strings.Split(r.URL.Query().Get("ratios"), ",") {
			if key = strings.TrimSpace(key); key != "" {
				keys = append(keys, key)
			}
		}

		trends, err := service.Trends(r.Context(), domain.TrendFilters{
			CompanyID: companyID,
			Category:  strings.TrimSpace(r.URL.Query().Get("category")),
			Ratios:    keys,
		})
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular tendências")
			return
		}
		if trends == nil {
			trends = []domain.RatioTrend{}
		}

		writeEnvelope(w, http.StatusOK, map[string]any{"trends": trends})
	}
}

func ComparePeriodsByID(service analysis.AnalysisService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ComparePeriodsByID")

		id1, err1 := queryInt(r, "period_id1")
		id2, err2 := queryInt(r, "period_id2")
		if err1 != nil || err2 != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "period_id1 e period_id2 devem ser inteiros", nil)
			return
		}
		if id1 == nil || id2 == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "period_id1 e period_id2 são obrigatórios", nil)
			return
		}

		comparison, err := service.CompareByID(r.Context(), *id1, *id2)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao comparar períodos")
			return
		}

		writeEnvelope(w, http.StatusOK, comparison)
	}
}

func ComparePeriodsByLabel(service analysis.AnalysisService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ComparePeriodsByLabel")

		companyID, ok := companyParam(w, r)
		if !ok {
			return
		}

		label1 := strings.TrimSpace(r.URL.Query().Get("period1"))
		label2 := strings.TrimSpace(r.URL.Query().Get("period2"))
		if label1 == "" || label2 == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "period1 e period2 são obrigatórios", nil)
			return
		}

		comparison, err := service.CompareByLabel(r.Context(), companyID, label1, label2)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao comparar períodos")
			return
		}

		writeEnvelope(w, http.StatusOK, comparison)
	}
}
