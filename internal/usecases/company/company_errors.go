package company

import (
	"errors"
	"fmt"
)

var (
	ErrCompanyNotFound       = errors.New("company not found")
	ErrNameRequired          = errors.New("company name is required")
	ErrRegistrationRequired  = errors.New("registration number is required")
	ErrDuplicateRegistration = errors.New("registration number already in use")
	ErrDatabaseOperation     = errors.New("database operation error")
)

// CompanyError carrega o código de API e a empresa envolvida
type CompanyError struct {
	Err       error
	Code      string
	CompanyID int
	Details   string
}

func (e *CompanyError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CompanyError) Unwrap() error {
	return e.Err
}

func NewCompanyError(err error, code string, details string) *CompanyError {
	return &CompanyError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewCompanyErrorWithID(err error, code string, companyID int, details string) *CompanyError {
	return &CompanyError{
		Err:       err,
		Code:      code,
		CompanyID: companyID,
		Details:   details,
	}
}
