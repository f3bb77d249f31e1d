package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro expostos para o dashboard
const (
	// Erros de autenticação (1000-1999)
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrUserDisabled          = "AUTH_002" // Usuário desativado
	ErrUserNotFound          = "AUTH_003" // Usuário não encontrado
	ErrInvalidToken          = "AUTH_004" // Token inválido
	ErrExpiredToken          = "AUTH_005" // Token expirado
	ErrInsufficientPrivilege = "AUTH_006" // Privilégios insuficientes
	ErrUserAlreadyExists     = "AUTH_007" // Usuário já existe
	ErrMissingToken          = "AUTH_008" // Requisição sem token

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidTransition   = "VAL_004" // Transição de estado não permitida

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrUpstreamService   = "SRV_003" // Erro na instância ServiceNow
	ErrCommunication     = "SRV_004" // Erro de comunicação com o upstream
	ErrMutationInFlight  = "SRV_005" // Mutação em andamento para a mesma entidade
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrMissingToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInvalidTransition:     http.StatusUnprocessableEntity,
	ErrUserAlreadyExists:     http.StatusBadRequest,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrUpstreamService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
	ErrMutationInFlight:      http.StatusConflict,
}

// APIError é o envelope de falha padronizado: success=false sempre, com a
// mensagem que o dashboard exibe diretamente.
type APIError struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	writeJSON(w, status, APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// WriteUpstreamError repassa o status HTTP e a mensagem vindos do
// ServiceNow sem tradução. Status zero ou mensagem vazia caem no erro
// genérico de servidor.
func WriteUpstreamError(w http.ResponseWriter, status int, message string) {
	if status < 400 {
		status = http.StatusInternalServerError
	}
	if message == "" {
		message = "Erro inesperado ao consultar o ServiceNow"
	}

	writeJSON(w, status, APIError{
		Code:    ErrUpstreamService,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, apiErr APIError) {
	apiErr.Success = false

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
