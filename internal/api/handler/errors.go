package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	sndomain "github.com/rabie02/servicenow-gateway/infrastructure/integrator/servicenow/domain"
	"github.com/rabie02/servicenow-gateway/internal/usecases/authenticating"
	"github.com/rabie02/servicenow-gateway/internal/usecases/cataloging"
	"github.com/rabie02/servicenow-gateway/internal/usecases/contracting"
	"github.com/rabie02/servicenow-gateway/internal/usecases/quoting"
	"github.com/rabie02/servicenow-gateway/pkg/apiErrors"
)

// writeServiceError converte o erro vindo do usecase na resposta HTTP.
// Falhas do ServiceNow preservam o status e a mensagem originais; erros
// tipados dos usecases já carregam o código da API.
func writeServiceError(w http.ResponseWriter, err error) {
	var upstreamErr *sndomain.UpstreamError
	if errors.As(err, &upstreamErr) {
		apiErrors.WriteUpstreamError(w, upstreamErr.StatusCode, upstreamErr.Message)
		return
	}

	var quoteErr *quoting.QuoteError
	if errors.As(err, &quoteErr) {
		apiErrors.WriteError(w, quoteErr.Code, quoteErr.Error(), nil)
		return
	}

	var contractErr *contracting.ContractError
	if errors.As(err, &contractErr) {
		apiErrors.WriteError(w, contractErr.Code, contractErr.Error(), nil)
		return
	}

	var catalogErr *cataloging.CatalogError
	if errors.As(err, &catalogErr) {
		apiErrors.WriteError(w, catalogErr.Code, catalogErr.Error(), nil)
		return
	}

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	logrus.Error("Erro não mapeado no handler:", err)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
}
