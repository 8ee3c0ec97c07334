package handler

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/importing"
	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	templateName    = "financial_statement_template.xlsx"
	// multipartOverhead cobre os campos de formulário além do arquivo
	multipartOverhead = 1 << 20
)

// UploadExcel recebe a planilha de demonstrativos (campo "file") e cria ou substitui o período
func UploadExcel(service importing.ImportService, maxSizeMB int64) http.HandlerFunc {
	maxBytes := maxSizeMB<<20 + multipartOverhead

	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UploadExcel")

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, fmt.Sprintf("Arquivo excede o limite de %d MB", maxSizeMB), nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Requisição multipart inválida", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Arquivo é obrigatório", nil)
			return
		}
		defer file.Close()

		content, err := io.ReadAll(file)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Falha ao ler o arquivo enviado", nil)
			return
		}

		req := importing.ImportRequest{
			FileName:   filepath.Base(header.Filename),
			Content:    content,
			Label:      strings.TrimSpace(r.FormValue("label")),
			PeriodType: domain.PeriodType(strings.ToUpper(strings.TrimSpace(r.FormValue("period_type")))),
		}

		companyID, err := strconv.Atoi(strings.TrimSpace(firstNonEmpty(r.FormValue("company_id"), r.FormValue("company"))))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "company_id é obrigatório", nil)
			return
		}
		req.CompanyID = companyID

		if req.StartDate, err = formDate(r, "start_date"); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}
		if req.EndDate, err = formDate(r, "end_date"); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		result, err := service.Import(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao importar planilha")
			return
		}

		status := http.StatusCreated
		if result.Replaced {
			status = http.StatusOK
		}
		writeJSON(w, status, result)
	}
}

// DownloadExcelTemplate devolve a planilha modelo, com os nomes da empresa quando ?company= for informado
func DownloadExcelTemplate(service importing.ImportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DownloadExcelTemplate")

		companyID, err := queryInt(r, "company", "company_id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		buf, err := service.Template(r.Context(), companyID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar planilha modelo")
			return
		}

		writeAttachment(w, templateName, xlsxContentType, buf.Bytes())
	}
}

func formDate(r *http.Request, key string) (*domain.Date, error) {
	raw := strings.TrimSpace(r.FormValue(key))
	if raw == "" {
		return nil, nil
	}
	date, err := domain.ParseDate(raw)
	if err != nil {
		return nil, fmt.Errorf("%s deve estar no formato AAAA-MM-DD", key)
	}
	return &date, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func writeAttachment(w http.ResponseWriter, fileName, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar arquivo")
	}
}
