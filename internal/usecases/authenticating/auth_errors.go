package authenticating

import (
	"errors"
	"fmt"
)

// Categorias: o handler e os testes verificam com errors.Is
var (
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrUserDisabled          = errors.New("user account is disabled")
	ErrUserNotFound          = errors.New("user not found")
	ErrUserAlreadyExists     = errors.New("user already exists")
	ErrInvalidToken          = errors.New("invalid token")
	ErrExpiredToken          = errors.New("token expired")
	ErrInsufficientPrivilege = errors.New("insufficient privilege")

	ErrMissingRequiredData = errors.New("required user data missing")
	ErrInvalidFormat       = errors.New("invalid user data")

	ErrWeakPassword     = errors.New("password does not meet the policy")
	ErrPasswordMismatch = errors.New("password confirmation does not match")

	ErrDatabaseOperation = errors.New("user store operation failed")
)

// Casos específicos de usuários e perfis; cada um pertence a uma categoria acima
var (
	ErrUnknownRole         = fmt.Errorf("%w: role must be master or admin", ErrInvalidFormat)
	ErrWrongTokenType      = fmt.Errorf("%w: access and refresh tokens are not interchangeable", ErrInvalidToken)
	ErrNotProfileOwner     = fmt.Errorf("%w: only the owner or a master can edit a profile", ErrInsufficientPrivilege)
	ErrRoleChangeForbidden = fmt.Errorf("%w: only a master can change role or activation", ErrInsufficientPrivilege)
	ErrTokenIssue          = errors.New("could not sign token")
)

// AuthError carrega o código de API e, quando conhecido, o usuário envolvido
type AuthError struct {
	Err     error
	Code    string
	UserID  int
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsCredentialsError cobre as falhas de login que não devem revelar se o usuário existe
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrUserDisabled)
}

// IsAuthorizationError cobre token inválido, expirado ou de tipo errado e falta de privilégio
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrInsufficientPrivilege)
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{Err: baseErr, Code: code, Details: details}
}

func NewUserAuthError(baseErr error, code string, userID int, details string) *AuthError {
	return &AuthError{Err: baseErr, Code: code, UserID: userID, Details: details}
}
