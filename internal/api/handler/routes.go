package handler

import (
	"net/http"

	"github.com/rabie02/servicenow-gateway/internal/api/handler/router"
	"github.com/rabie02/servicenow-gateway/internal/scheduler"
	"github.com/rabie02/servicenow-gateway/internal/usecases/authenticating"
	"github.com/rabie02/servicenow-gateway/internal/usecases/cataloging"
	"github.com/rabie02/servicenow-gateway/internal/usecases/contracting"
	"github.com/rabie02/servicenow-gateway/internal/usecases/quoting"
	"github.com/rabie02/servicenow-gateway/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Quotes(service quoting.Quoter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/quotes",
			Method:      http.MethodGet,
			Handler:     ListQuotes(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/quotes/:quoteId",
			Method:      http.MethodGet,
			Handler:     GetQuote(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/opportunities/:opportunityId/quotes",
			Method:      http.MethodPost,
			Handler:     CreateQuote(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/quotes/:quoteId",
			Method:      http.MethodPatch,
			Handler:     UpdateQuote(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/quotes/:quoteId/state",
			Method:      http.MethodPatch,
			Handler:     UpdateQuoteState(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/quotes/:quoteId",
			Method:      http.MethodDelete,
			Handler:     DeleteQuote(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Contracts(service contracting.Contractor) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/quotes/:quoteId/contracts",
			Method:      http.MethodPost,
			Handler:     GenerateContract(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/contracts/:id/download",
			Method:      http.MethodGet,
			Handler:     DownloadContract(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Catalog(service cataloging.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/product-offerings",
			Method:      http.MethodGet,
			Handler:     ListProductOfferings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/product-offerings/by-spec/:specId",
			Method:      http.MethodGet,
			Handler:     GetOfferingsBySpec(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/product-specifications",
			Method:      http.MethodGet,
			Handler:     ListProductSpecifications(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/categories",
			Method:      http.MethodGet,
			Handler:     ListCategories(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/catalogs",
			Method:      http.MethodGet,
			Handler:     ListCatalogs(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Opportunities(service cataloging.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/opportunities",
			Method:      http.MethodGet,
			Handler:     ListOpportunities(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CatalogSync(service *scheduler.CatalogSyncService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sync/catalog/run",
			Method:      http.MethodPost,
			Handler:     RunCatalogSync(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/sync/status",
			Method:      http.MethodGet,
			Handler:     GetSyncStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
