package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/rabie02/servicenow-gateway/internal/usecases/cataloging"
)

const defaultOpportunityLimit = 50

// ListOpportunities lista oportunidades abertas para a criação de cotações.
func ListOpportunities(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := parsePositiveInt(r.URL.Query().Get("limit"), defaultOpportunityLimit)

		opportunities, err := service.ListOpportunities(r.Context(), limit)
		if err != nil {
			logrus.Error("Erro ao listar oportunidades:", err)
			writeServiceError(w, err)
			return
		}

		writeData(w, http.StatusOK, opportunities)
	}
}
