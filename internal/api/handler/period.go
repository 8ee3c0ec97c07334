package handler

import (
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/statement"
	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
)

func ListPeriods(service statement.StatementService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListPeriods")

		companyID, err := queryInt(r, "company", "company_id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		periods, err := service.ListPeriods(r.Context(), domain.PeriodFilters{
			CompanyID: companyID,
			Label:     strings.TrimSpace(r.URL.Query().Get("label")),
		})
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar períodos")
			return
		}
		if periods == nil {
			periods = []*domain.FinancialPeriod{}
		}

		writeJSON(w, http.StatusOK, periods)
	}
}

// GetPeriod retorna o período com os demonstrativos e índices aninhados
func GetPeriod(service statement.StatementService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		detail, err := service.GetPeriodDetail(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar período")
			return
		}

		writeJSON(w, http.StatusOK, detail)
	}
}

func CreatePeriod(service statement.StatementService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreatePeriod")

		var input domain.PeriodInput
		if err := decodeBody(r, &input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		period, err := service.CreatePeriod(r.Context(), input)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar período")
			return
		}

		writeJSON(w, http.StatusCreated, period)
	}
}

func UpdatePeriod(service statement.StatementService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdatePeriod")

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var input domain.PeriodInput
		if err := decodeBody(r, &input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		period, err := service.UpdatePeriod(r.Context(), id, input)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar período")
			return
		}

		writeJSON(w, http.StatusOK, period)
	}
}

func DeletePeriod(service statement.StatementService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeletePeriod")

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		if err := service.DeletePeriod(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao excluir período")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func FinalizePeriod(service statement.StatementService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - FinalizePeriod")

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		period, err := service.FinalizePeriod(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao finalizar período")
			return
		}

		writeJSON(w, http.StatusOK, period)
	}
}
