package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/rabie02/servicenow-gateway/internal/domain"
	"github.com/rabie02/servicenow-gateway/internal/usecases/authenticating"
	"github.com/rabie02/servicenow-gateway/pkg/apiErrors"
)

type CreateUserRequest struct {
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   int    `json:"role_id"`
}

func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		user, err := service.CreateUser(&domain.User{
			Name:         req.Name,
			Lastname:     req.Lastname,
			Email:        req.Email,
			PasswordHash: req.Password,
			RoleID:       req.RoleID,
		})
		if err != nil {
			logrus.Error("Erro ao criar usuário:", err)
			writeServiceError(w, err)
			return
		}

		user.PasswordHash = ""
		writeResult(w, http.StatusCreated, user)
	}
}

func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUsers()
		if err != nil {
			logrus.Error("Erro ao listar usuários:", err)
			writeServiceError(w, err)
			return
		}

		for _, user := range users {
			user.PasswordHash = ""
		}

		writeData(w, http.StatusOK, users)
	}
}

func UpdateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userIDStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		userID, err := strconv.Atoi(userIDStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
			return
		}

		var req domain.UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		req.ID = userID

		if err := service.UpdateUser(&req); err != nil {
			logrus.WithField("user", userID).Error("Erro ao atualizar usuário:", err)
			writeServiceError(w, err)
			return
		}

		writeResult(w, http.StatusOK, map[string]int{"id": userID})
	}
}
