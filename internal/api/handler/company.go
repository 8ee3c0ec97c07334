package handler

import (
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/company"
	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
)

func ListCompanies(service company.CompanyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListCompanies")

		companies, err := service.List(r.Context(), domain.CompanyFilters{
			Search: strings.TrimSpace(r.URL.Query().Get("search")),
		})
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar empresas")
			return
		}
		if companies == nil {
			companies = []*domain.Company{}
		}

		writeJSON(w, http.StatusOK, companies)
	}
}

func GetCompany(service company.CompanyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		c, err := service.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar empresa")
			return
		}

		writeJSON(w, http.StatusOK, c)
	}
}

func CreateCompany(service company.CompanyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCompany")

		var c domain.Company
		if err := decodeBody(r, &c); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		created, err := service.Create(r.Context(), &c)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar empresa")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateCompany(service company.CompanyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateCompany")

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var c domain.Company
		if err := decodeBody(r, &c); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		c.ID = id

		updated, err := service.Update(r.Context(), &c)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar empresa")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteCompany(service company.CompanyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteCompany")

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		if err := service.Delete(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao excluir empresa")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
