package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/coop-ratio-api/internal/domain"
	"github.com/vfg2006/coop-ratio-api/internal/usecases/authenticating"
	"github.com/vfg2006/coop-ratio-api/pkg/apiErrors"
)

func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListUsers")

		createdBy, err := queryInt(r, "created_by")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		users, err := service.ListUsers(r.Context(), domain.UserFilters{CreatedBy: createdBy})
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar usuários")
			return
		}
		if users == nil {
			users = []*domain.User{}
		}

		writeJSON(w, http.StatusOK, users)
	}
}

func GetUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		user, err := service.GetUser(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar usuário")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// CreateUser cria um usuário ativo em nome do master autenticado
func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateUser")

		claims, ok := claimsOrUnauthorized(w, r)
		if !ok {
			return
		}

		var req domain.RegisterRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		user, err := service.CreateUser(r.Context(), claims.UserID, req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar usuário")
			return
		}

		writeJSON(w, http.StatusCreated, user)
	}
}

func UpdateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateUser")

		claims, ok := claimsOrUnauthorized(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var req domain.UpdateUserRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		req.ID = id

		user, err := service.UpdateUser(r.Context(), claims, req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar usuário")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

func DeleteUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteUser")

		claims, ok := claimsOrUnauthorized(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		if id == claims.UserID {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Não é possível excluir o próprio usuário", nil)
			return
		}

		if err := service.DeleteUser(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao excluir usuário")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetProfile retorna o perfil do próprio usuário
func GetProfile(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrUnauthorized(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		if id != claims.UserID && !claims.IsMaster() {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Não autorizado a consultar o perfil de outro usuário", nil)
			return
		}

		user, err := service.GetUser(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar perfil")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// UpdateProfile altera dados e senha do próprio usuário; a senha atual é sempre exigida
func UpdateProfile(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateProfile")

		claims, ok := claimsOrUnauthorized(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		if id != claims.UserID {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Não autorizado a alterar o perfil de outro usuário", nil)
			return
		}

		var req domain.UpdateProfileRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		user, err := service.UpdateProfile(r.Context(), id, req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar perfil")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
