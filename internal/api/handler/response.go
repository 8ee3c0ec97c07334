package handler

import (
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/analysis"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/authenticating"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/company"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/importing"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/ratio"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/reporting"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/statement"
	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
	"github.com/vfg2006/coop-ratio-api/pkg/log"
	"github.com/vfg2006/coop-ratio-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Envelope é o formato das respostas de análise
type Envelope struct {
	Status       string `json:"status"`
	ResponseCode int    `json:"response_code"`
	Message      string `json:"message,omitempty"`
	Data         any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao enviar resposta")
	}
}

func writeEnvelope(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Envelope{
		Status:       "success",
		ResponseCode: status,
		Data:         data,
	})
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// pathID lê um parâmetro inteiro da rota, escrevendo o erro quando inválido
func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName(name)
	if raw == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro "+name+" não informado", nil)
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro "+name+" inválido", nil)
		return 0, false
	}
	return id, true
}

// queryInt lê um inteiro opcional da query string; ausente retorna nil
func queryInt(r *http.Request, keys ...string) (*int, error) {
	for _, key := range keys {
		raw := strings.TrimSpace(r.URL.Query().Get(key))
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "parâmetro %s inválido", key)
		}
		return &value, nil
	}
	return nil, nil
}

func queryBool(r *http.Request, key string) bool {
	value, err := strconv.ParseBool(r.URL.Query().Get(key))
	return err == nil && value
}

func claimsOrUnauthorized(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
	}
	return claims, ok
}

// writeServiceError converte os erros tipados dos casos de uso em respostas da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	logger := log.ForContext(r.Context()).WithError(err)

	var (
		authErr      *authenticating.AuthError
		companyErr   *company.CompanyError
		statementErr *statement.StatementError
		ratioErr     *ratio.RatioError
		analysisErr  *analysis.AnalysisError
		importErr    *importing.ImportError
		reportErr    *reporting.ReportError
	)

	var (
		code    string
		message string
		details map[string]any
	)

	switch {
	case errors.As(err, &authErr):
		code, message = authErr.Code, authErr.Error()
		if authErr.UserID != 0 {
			details = map[string]any{"user_id": authErr.UserID}
		}
	case errors.As(err, &companyErr):
		code, message = companyErr.Code, companyErr.Error()
		if companyErr.CompanyID != 0 {
			details = map[string]any{"company_id": companyErr.CompanyID}
		}
	case errors.As(err, &statementErr):
		code, message = statementErr.Code, statementErr.Error()
		details = periodDetails(statementErr.PeriodID, nil)
	case errors.As(err, &ratioErr):
		code, message = ratioErr.Code, ratioErr.Error()
		details = periodDetails(ratioErr.PeriodID, ratioErr.Missing)
	case errors.As(err, &analysisErr):
		code, message = analysisErr.Code, analysisErr.Error()
		details = periodDetails(analysisErr.PeriodID, nil)
	case errors.As(err, &importErr):
		code, message = importErr.Code, importErr.Error()
		details = periodDetails(importErr.PeriodID, importErr.Missing)
	case errors.As(err, &reportErr):
		code, message = reportErr.Code, reportErr.Error()
		details = periodDetails(reportErr.PeriodID, nil)
	default:
		logger.Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
		return
	}

	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error(fallback)
	} else {
		logger.Warn(message)
	}

	if details == nil {
		apiErrors.WriteError(w, code, message, nil)
		return
	}
	apiErrors.WriteError(w, code, message, details)
}

func periodDetails(periodID int, missing []string) map[string]any {
	if periodID == 0 && len(missing) == 0 {
		return nil
	}
	details := map[string]any{}
	if periodID != 0 {
		details["period_id"] = periodID
	}
	if len(missing) > 0 {
		details["missing"] = missing
	}
	return details
}
