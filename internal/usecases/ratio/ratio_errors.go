package ratio

import (
	"errors"
	"fmt"
)

var (
	ErrIncompleteStatements = errors.New("period is missing financial statements")
	ErrPeriodNotFound       = errors.New("financial period not found")
	ErrResultNotFound       = errors.New("ratio result not found")
	ErrInvalidBenchmark     = errors.New("invalid benchmark")
	ErrDatabaseOperation    = errors.New("database operation error")
)

// RatioError carrega o código de API, o período e, quando houver, os demonstrativos ausentes
type RatioError struct {
	Err      error
	Code     string
	PeriodID int
	Details  string
	Missing  []string
}

func (e *RatioError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *RatioError) Unwrap() error {
	return e.Err
}

func NewRatioError(err error, code string, details string) *RatioError {
	return &RatioError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewRatioErrorWithPeriod(err error, code string, periodID int, details string) *RatioError {
	return &RatioError{
		Err:      err,
		Code:     code,
		PeriodID: periodID,
		Details:  details,
	}
}
