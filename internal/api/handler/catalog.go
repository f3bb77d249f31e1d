package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/rabie02/servicenow-gateway/internal/usecases/cataloging"
)

const defaultCatalogLimit = 100

// GetOfferingsBySpec lista as ofertas de produto de uma especificação. Esta
// consulta vai sempre à instância, pois alimenta a seleção de produtos na
// edição de cotação.
func GetOfferingsBySpec(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		specID := httprouter.ParamsFromContext(r.Context()).ByName("specId")

		offerings, err := service.GetOfferingsBySpec(r.Context(), specID)
		if err != nil {
			logrus.WithField("spec", specID).Error("Erro ao listar ofertas por especificação:", err)
			writeServiceError(w, err)
			return
		}

		writeData(w, http.StatusOK, offerings)
	}
}

func ListProductOfferings(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := parsePositiveInt(r.URL.Query().Get("limit"), defaultCatalogLimit)
		offset := parseNonNegativeInt(r.URL.Query().Get("offset"), 0)

		offerings, err := service.ListOfferings(r.Context(), limit, offset)
		if err != nil {
			logrus.Error("Erro ao listar ofertas de produto:", err)
			writeServiceError(w, err)
			return
		}

		writeData(w, http.StatusOK, offerings)
	}
}

func ListProductSpecifications(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := parsePositiveInt(r.URL.Query().Get("limit"), defaultCatalogLimit)

		specs, err := service.ListSpecifications(r.Context(), limit)
		if err != nil {
			logrus.Error("Erro ao listar especificações de produto:", err)
			writeServiceError(w, err)
			return
		}

		writeData(w, http.StatusOK, specs)
	}
}

func ListCategories(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := parsePositiveInt(r.URL.Query().Get("limit"), defaultCatalogLimit)
		offset := parseNonNegativeInt(r.URL.Query().Get("offset"), 0)

		categories, err := service.ListCategories(r.Context(), limit, offset)
		if err != nil {
			logrus.Error("Erro ao listar categorias:", err)
			writeServiceError(w, err)
			return
		}

		writeData(w, http.StatusOK, categories)
	}
}

func ListCatalogs(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := parsePositiveInt(r.URL.Query().Get("limit"), defaultCatalogLimit)

		catalogs, err := service.ListCatalogs(r.Context(), limit)
		if err != nil {
			logrus.Error("Erro ao listar catálogos:", err)
			writeServiceError(w, err)
			return
		}

		writeData(w, http.StatusOK, catalogs)
	}
}

func parseNonNegativeInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
