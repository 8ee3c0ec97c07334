package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/reporting"
	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
)

func exportFormat(w http.ResponseWriter, r *http.Request) (reporting.Format, bool) {
	format, ok := reporting.ParseFormat(r.URL.Query().Get("format"))
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato não suportado: "+string(format), nil)
	}
	return format, ok
}

func ExportCompanies(service reporting.ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ExportCompanies")

		format, ok := exportFormat(w, r)
		if !ok {
			return
		}

		doc, err := service.ExportCompanies(r.Context(), format)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao exportar empresas")
			return
		}

		writeAttachment(w, doc.FileName, doc.ContentType, doc.Body)
	}
}

func ExportRatios(service reporting.ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ExportRatios")

		periodID, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		format, ok := exportFormat(w, r)
		if !ok {
			return
		}

		doc, err := service.ExportRatios(r.Context(), periodID, format)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao exportar índices")
			return
		}

		writeAttachment(w, doc.FileName, doc.ContentType, doc.Body)
	}
}
