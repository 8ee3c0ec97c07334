package statement

import (
	"errors"
	"fmt"
)

var (
	ErrPeriodNotFound       = errors.New("financial period not found")
	ErrCompanyNotFound      = errors.New("company not found")
	ErrStatementNotFound    = errors.New("statement not found")
	ErrInvalidPeriod        = errors.New("invalid financial period")
	ErrUnknownLabel         = errors.New("period label not recognised")
	ErrDuplicatePeriod      = errors.New("period label already exists for company")
	ErrDuplicateStatement   = errors.New("statement already exists for period")
	ErrPeriodFinalized      = errors.New("financial period is finalized")
	ErrInvalidStatement     = errors.New("invalid statement data")
	ErrMissingPeriod        = errors.New("period is required")
	ErrUnknownStatementType = errors.New("unknown statement type")
	ErrDatabaseOperation    = errors.New("database operation error")
)

// StatementError carrega o código de API e o período envolvido
type StatementError struct {
	Err      error
	Code     string
	PeriodID int
	Details  string
}

func (e *StatementError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *StatementError) Unwrap() error {
	return e.Err
}

func NewStatementError(err error, code string, details string) *StatementError {
	return &StatementError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewStatementErrorWithPeriod(err error, code string, periodID int, details string) *StatementError {
	return &StatementError{
		Err:      err,
		Code:     code,
		PeriodID: periodID,
		Details:  details,
	}
}
