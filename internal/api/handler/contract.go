package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/rabie02/servicenow-gateway/internal/domain"
	"github.com/rabie02/servicenow-gateway/internal/usecases/contracting"
	"github.com/rabie02/servicenow-gateway/pkg/middleware"
)

// GenerateContract dispara a geração de contrato na instância a partir de uma
// cotação aprovada. O cabeçalho Idempotency-Key, quando presente, protege o
// reenvio da mesma ação.
func GenerateContract(service contracting.Contractor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quoteID := httprouter.ParamsFromContext(r.Context()).ByName("quoteId")
		idempotencyKey := r.Header.Get("Idempotency-Key")

		requestedBy := ""
		if claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims); ok {
			requestedBy = claims.UserEmail
		}

		contract, err := service.GenerateContract(r.Context(), quoteID, requestedBy, idempotencyKey)
		if err != nil {
			logrus.WithField("quote", quoteID).Error("Erro ao gerar contrato:", err)
			writeServiceError(w, err)
			return
		}

		writeResult(w, http.StatusCreated, contract)
	}
}

// DownloadContract repassa o binário do contrato com os cabeçalhos originais
// da instância, para que o cliente derive o nome do arquivo.
func DownloadContract(service contracting.Contractor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contractID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		document, err := service.DownloadContract(r.Context(), contractID)
		if err != nil {
			logrus.WithField("contract", contractID).Error("Erro ao baixar contrato:", err)
			writeServiceError(w, err)
			return
		}

		contentType := document.ContentType
		if contentType == "" {
			contentType = "application/pdf"
		}
		w.Header().Set("Content-Type", contentType)

		if document.ContentDisposition != "" {
			w.Header().Set("Content-Disposition", document.ContentDisposition)
		}

		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(document.Content); err != nil {
			logrus.WithField("contract", contractID).Error("Erro ao escrever binário do contrato:", err)
		}
	}
}
