package importing

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFile       = errors.New("unsupported file type")
	ErrFileTooLarge          = errors.New("file too large")
	ErrInvalidWorkbook       = errors.New("invalid workbook")
	ErrMissingFields         = errors.New("required fields missing")
	ErrInvalidValue          = errors.New("invalid statement value")
	ErrCompanyNotFound       = errors.New("company not found")
	ErrPeriodFinalized       = errors.New("financial period is finalized")
	ErrDuplicatePeriod       = errors.New("period label already exists for company")
	ErrColumnConfigNotFound  = errors.New("column config not found")
	ErrInvalidColumnConfig   = errors.New("invalid column config")
	ErrDuplicateColumnConfig = errors.New("column config already exists")
	ErrStorage               = errors.New("file storage error")
	ErrDatabaseOperation     = errors.New("database operation error")
)

// ImportError carrega o código de API e, na falta de campos, quais são
type ImportError struct {
	Err      error
	Code     string
	PeriodID int
	Details  string
	Missing  []string
}

func (e *ImportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

func NewImportError(err error, code string, details string) *ImportError {
	return &ImportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
