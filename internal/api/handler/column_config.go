package handler

import (
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/importing"
	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
)

// ListColumnConfigs aceita ?statement_type=, ?company= e ?global=true
func ListColumnConfigs(service importing.ImportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListColumnConfigs")

		companyID, err := queryInt(r, "company", "company_id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		filters := domain.ColumnConfigFilters{
			StatementType: domain.StatementType(strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("statement_type")))),
			CompanyID:     companyID,
			OnlyGlobal:    queryBool(r, "global"),
			IncludeGlobal: queryBool(r, "include_global"),
		}
		if filters.StatementType != "" && !filters.StatementType.IsValid() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "statement_type inválido", nil)
			return
		}

		configs, err := service.ListColumnConfigs(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar configurações de colunas")
			return
		}
		if configs == nil {
			configs = []*domain.StatementColumnConfig{}
		}

		writeJSON(w, http.StatusOK, configs)
	}
}

func GetColumnConfig(service importing.ImportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		cfg, err := service.GetColumnConfig(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar configuração de coluna")
			return
		}

		writeJSON(w, http.StatusOK, cfg)
	}
}

func CreateColumnConfig(service importing.ImportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateColumnConfig")

		var cfg domain.StatementColumnConfig
		if err := decodeBody(r, &cfg); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		created, err := service.CreateColumnConfig(r.Context(), &cfg)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar configuração de coluna")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateColumnConfig(service importing.ImportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateColumnConfig")

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var cfg domain.StatementColumnConfig
		if err := decodeBody(r, &cfg); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		updated, err := service.UpdateColumnConfig(r.Context(), id, &cfg)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar configuração de coluna")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteColumnConfig(service importing.ImportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteColumnConfig")

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		if err := service.DeleteColumnConfig(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao excluir configuração de coluna")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
