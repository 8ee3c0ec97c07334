package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/authenticating"
	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
)

type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Status       string            `json:"status"`
	ResponseCode int               `json:"response_code"`
	Message      string            `json:"message"`
	Tokens       *domain.TokenPair `json:"tokens"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

type RegisterResponse struct {
	Status       string       `json:"status"`
	ResponseCode int          `json:"response_code"`
	Message      string       `json:"message"`
	User         *domain.User `json:"user"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - Login")

		var req LoginRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		// aceita username ou email no mesmo endpoint
		identifier := req.Username
		if identifier == "" {
			identifier = req.Email
		}
		if identifier == "" || req.Password == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Usuário e senha são obrigatórios", nil)
			return
		}

		tokens, err := service.Login(r.Context(), identifier, req.Password)
		if err != nil {
			writeServiceError(w, r, err, "Erro interno ao realizar login")
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			Status:       "success",
			ResponseCode: http.StatusOK,
			Message:      "Login realizado com sucesso",
			Tokens:       tokens,
		})
	}
}

func RefreshToken(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RefreshToken")

		var req RefreshRequest
		if err := decodeBody(r, &req); err != nil || req.Refresh == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Token de atualização é obrigatório", nil)
			return
		}

		access, err := service.Refresh(r.Context(), req.Refresh)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao renovar token")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"access": access})
	}
}

// Register é o cadastro público; o usuário fica inativo até um master ativá-lo
func Register(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - Register")

		var req domain.RegisterRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		user, err := service.Register(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao cadastrar usuário")
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			Status:       "success",
			ResponseCode: http.StatusCreated,
			Message:      "Usuário cadastrado com sucesso",
			User:         user,
		})
	}
}
