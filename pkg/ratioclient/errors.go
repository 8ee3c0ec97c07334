package ratioclient

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAuthenticated indica que não há tokens gravados; chame Login antes
	ErrNotAuthenticated = errors.New("ratioclient: não autenticado")
	// ErrNoRefreshToken indica access token expirado sem refresh token para renovar
	ErrNoRefreshToken = errors.New("ratioclient: token expirado e sem refresh token")
)

// APIError é o erro devolvido pela API ({"code","message","details"})
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("ratioclient: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("ratioclient: status %d: %s: %s", e.Status, e.Code, e.Message)
}

// IsCode informa se err é um APIError com o código informado
func IsCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}
