package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/ratio"
	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
)

// PreviewRequest traz os quatro demonstrativos para cálculo sem gravação
type PreviewRequest struct {
	TradingAccount     *domain.TradingAccount     `json:"trading_account"`
	ProfitLoss         *domain.ProfitAndLoss      `json:"profit_loss"`
	BalanceSheet       *domain.BalanceSheet       `json:"balance_sheet"`
	OperationalMetrics *domain.OperationalMetrics `json:"operational_metrics"`
}

type BenchmarksRequest struct {
	Benchmarks map[string]any `json:"benchmarks"`
}

// BenchmarksUpdateResponse informa em RecalcStarted se os semáforos gravados já estão sendo recalculados
type BenchmarksUpdateResponse struct {
	Status        string                 `json:"status"`
	Message       string                 `json:"message"`
	Benchmarks    domain.RatioBenchmarks `json:"benchmarks"`
	RecalcStarted bool                   `json:"recalculation_started"`
}

func ListRatioResults(service ratio.RatioService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListRatioResults")

		periodID, err := queryInt(r, "period", "period_id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}
		companyID, err := queryInt(r, "company", "company_id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		results, err := service.List(r.Context(), domain.RatioFilters{PeriodID: periodID, CompanyID: companyID})
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar índices")
			return
		}
		if results == nil {
			results = []*domain.RatioResult{}
		}

		writeJSON(w, http.StatusOK, results)
	}
}

func GetRatioResult(service ratio.RatioService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		result, err := service.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar índices")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// CalculateRatios calcula e grava os índices de um período
func CalculateRatios(service ratio.RatioService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CalculateRatios")

		periodID, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		result, err := service.CalculatePeriod(r.Context(), periodID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular índices")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func PreviewRatios(service ratio.RatioService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - PreviewRatios")

		var req PreviewRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		result, err := service.Preview(r.Context(), domain.Statements{
			Trading:     req.TradingAccount,
			ProfitLoss:  req.ProfitLoss,
			Balance:     req.BalanceSheet,
			Operational: req.OperationalMetrics,
		})
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular índices")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// RecalculateCompanyRatios recalcula todos os períodos da empresa
func RecalculateCompanyRatios(service ratio.RatioService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RecalculateCompanyRatios")

		companyID, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		summary, err := service.RecalculateCompany(r.Context(), companyID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao recalcular índices")
			return
		}

		writeEnvelope(w, http.StatusOK, summary)
	}
}

func GetRatioCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"categories": domain.RatioCategories,
			"ratios":     domain.RatioCatalog,
		})
	}
}

func GetBenchmarks(service ratio.BenchmarkService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Get(r.Context()))
	}
}

// UpdateBenchmarks grava as referências e dispara o recálculo dos semáforos de todos os períodos
func UpdateBenchmarks(service ratio.BenchmarkService, recalc FullRecalculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateBenchmarks")

		var req BenchmarksRequest
		if err := decodeBody(r, &req); err != nil || req.Benchmarks == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo deve conter o objeto benchmarks", nil)
			return
		}

		benchmarks, err := service.Set(r.Context(), req.Benchmarks)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gravar referências")
			return
		}

		started := false
		if recalc != nil {
			started = recalc.TriggerFullRecalc()
		}

		writeJSON(w, http.StatusOK, BenchmarksUpdateResponse{
			Status:        "success",
			Message:       "Referências atualizadas",
			Benchmarks:    benchmarks,
			RecalcStarted: started,
		})
	}
}
