package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/rabie02/servicenow-gateway/internal/scheduler"
	"github.com/rabie02/servicenow-gateway/pkg/apiErrors"
)

// RunCatalogSync dispara manualmente a sincronização do espelho de catálogo.
// O disparo é assíncrono; o status é consultado em /v1/sync/status.
func RunCatalogSync(service *scheduler.CatalogSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de catálogo não disponível", nil)
			return
		}

		logrus.Info("Sincronização manual de catálogo solicitada via API")
		service.TriggerManualSync()

		writeResult(w, http.StatusAccepted, map[string]string{
			"message": "Sincronização de catálogo iniciada",
		})
	}
}

// GetSyncStatus retorna o status atual do agendador de catálogo.
func GetSyncStatus(service *scheduler.CatalogSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de catálogo não disponível", nil)
			return
		}

		writeData(w, http.StatusOK, service.GetStatus())
	}
}
