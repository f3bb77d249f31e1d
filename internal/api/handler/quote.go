package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/rabie02/servicenow-gateway/internal/domain"
	"github.com/rabie02/servicenow-gateway/internal/usecases/quoting"
	"github.com/rabie02/servicenow-gateway/pkg/apiErrors"
)

const (
	defaultQuotePage  = 1
	defaultQuoteLimit = 10
)

// ListQuotes lista cotações com paginação e busca por número ou conta.
func ListQuotes(service quoting.Quoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := parsePositiveInt(r.URL.Query().Get("page"), defaultQuotePage)
		limit := parsePositiveInt(r.URL.Query().Get("limit"), defaultQuoteLimit)
		q := r.URL.Query().Get("q")

		quotes, err := service.ListQuotes(r.Context(), page, limit, q)
		if err != nil {
			logrus.Error("Erro ao listar cotações:", err)
			writeServiceError(w, err)
			return
		}

		writeData(w, http.StatusOK, quotes)
	}
}

func GetQuote(service quoting.Quoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quoteID := httprouter.ParamsFromContext(r.Context()).ByName("quoteId")

		quote, err := service.GetQuote(r.Context(), quoteID)
		if err != nil {
			logrus.WithField("quote", quoteID).Error("Erro ao buscar cotação:", err)
			writeServiceError(w, err)
			return
		}

		writeData(w, http.StatusOK, quote)
	}
}

// CreateQuote cria uma cotação a partir de uma oportunidade existente.
func CreateQuote(service quoting.Quoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opportunityID := httprouter.ParamsFromContext(r.Context()).ByName("opportunityId")

		quote, err := service.CreateQuote(r.Context(), opportunityID)
		if err != nil {
			logrus.WithField("opportunity", opportunityID).Error("Erro ao criar cotação:", err)
			writeServiceError(w, err)
			return
		}

		writeResult(w, http.StatusCreated, quote)
	}
}

// UpdateQuote aplica uma edição genérica de campos da cotação.
func UpdateQuote(service quoting.Quoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quoteID := httprouter.ParamsFromContext(r.Context()).ByName("quoteId")

		var fields map[string]any
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		quote, err := service.UpdateQuote(r.Context(), quoteID, fields)
		if err != nil {
			logrus.WithField("quote", quoteID).Error("Erro ao atualizar cotação:", err)
			writeServiceError(w, err)
			return
		}

		writeResult(w, http.StatusOK, quote)
	}
}

// UpdateQuoteState aplica uma transição de estado validada.
func UpdateQuoteState(service quoting.Quoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quoteID := httprouter.ParamsFromContext(r.Context()).ByName("quoteId")

		var req domain.UpdateQuoteStateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.State == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Estado alvo não informado", nil)
			return
		}

		quote, err := service.UpdateQuoteState(r.Context(), quoteID, req.State)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"quote": quoteID,
				"state": req.State,
			}).Error("Erro ao atualizar estado da cotação:", err)
			writeServiceError(w, err)
			return
		}

		writeResult(w, http.StatusOK, quote)
	}
}

func DeleteQuote(service quoting.Quoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quoteID := httprouter.ParamsFromContext(r.Context()).ByName("quoteId")

		if err := service.DeleteQuote(r.Context(), quoteID); err != nil {
			logrus.WithField("quote", quoteID).Error("Erro ao excluir cotação:", err)
			writeServiceError(w, err)
			return
		}

		writeResult(w, http.StatusOK, map[string]string{"sys_id": quoteID})
	}
}

func parsePositiveInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
