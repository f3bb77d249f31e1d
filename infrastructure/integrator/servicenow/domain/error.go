package domain

import "fmt"

// UpstreamError preserva o status HTTP e a mensagem devolvidos pela
// instância ServiceNow para serem repassados sem tradução ao dashboard.
type UpstreamError struct {
	StatusCode int
	Message    string
	Detail     string
}

func (e *UpstreamError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("servicenow respondeu %d: %s (%s)", e.StatusCode, e.Message, e.Detail)
	}
	return fmt.Sprintf("servicenow respondeu %d: %s", e.StatusCode, e.Message)
}

// ErrorEnvelope é o corpo de erro padrão da API REST do ServiceNow.
type ErrorEnvelope struct {
	Error struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	} `json:"error"`
	Status string `json:"status"`
}
