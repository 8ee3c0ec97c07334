package analysis

import (
	"errors"
	"fmt"
)

var (
	ErrCompanyRequired   = errors.New("company is required")
	ErrPeriodNotFound    = errors.New("financial period not found")
	ErrRatiosNotFound    = errors.New("ratios not calculated for period")
	ErrUnknownRatio      = errors.New("unknown ratio")
	ErrUnknownCategory   = errors.New("unknown ratio category")
	ErrDatabaseOperation = errors.New("database operation error")
)

// AnalysisError carrega o código de API e o período envolvido
type AnalysisError struct {
	Err      error
	Code     string
	PeriodID int
	Details  string
}

func (e *AnalysisError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

func NewAnalysisError(err error, code string, periodID int, details string) *AnalysisError {
	return &AnalysisError{
		Err:      err,
		Code:     code,
		PeriodID: periodID,
		Details:  details,
	}
}
