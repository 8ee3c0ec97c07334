package reporting

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrPeriodNotFound    = errors.New("financial period not found")
	ErrRatiosNotFound    = errors.New("ratios not calculated for period")
	ErrRender            = errors.New("report render error")
	ErrDatabaseOperation = errors.New("database operation error")
)

// ReportError carrega o código de API e o período exportado
type ReportError struct {
	Err      error
	Code     string
	PeriodID int
	Details  string
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(err error, code string, periodID int, details string) *ReportError {
	return &ReportError{
		Err:      err,
		Code:     code,
		PeriodID: periodID,
		Details:  details,
	}
}
