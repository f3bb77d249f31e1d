package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	snmocks "github.com/rabie02/servicenow-gateway/infrastructure/integrator/servicenow/mocks"
	repomocks "github.com/rabie02/servicenow-gateway/infrastructure/repository/mocks"
	"github.com/rabie02/servicenow-gateway/internal/config"
	"github.com/rabie02/servicenow-gateway/internal/domain"
)

func newSyncFixture(t *testing.T, bulkLimit int) (*CatalogSyncService, *snmocks.MockCatalogIntegrator, *repomocks.MockProductOfferingRepository, *repomocks.MockCategoryRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	integrator := snmocks.NewMockCatalogIntegrator(ctrl)
	offeringRepo := repomocks.NewMockProductOfferingRepository(ctrl)
	categoryRepo := repomocks.NewMockCategoryRepository(ctrl)

	cfg := &config.Config{
		CatalogSync: config.CatalogSync{
			CronSchedule:        "0 3 * * *",
			BulkLimit:           bulkLimit,
			RequestDelaySeconds: 0,
			Enabled:             false,
		},
	}

	return NewCatalogSyncService(integrator, offeringRepo, categoryRepo, cfg), integrator, offeringRepo, categoryRepo
}

func TestSyncCatalogUpdatesStatus(t *testing.T) {
	service, integrator, offeringRepo, categoryRepo := newSyncFixture(t, 2)

	before := service.GetStatus()
	assert.True(t, before["last_sync_started_at"].(time.Time).IsZero())
	assert.True(t, before["last_sync_completed_at"].(time.Time).IsZero())

	integrator.EXPECT().ListProductOfferings(gomock.Any(), 2, 0).
		Return([]*domain.ProductOffering{{SysID: "off1", Name: "Fibra 500"}}, nil)
	offeringRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

	integrator.EXPECT().ListCategories(gomock.Any(), 2, 0).
		Return([]*domain.Category{{SysID: "cat1", Name: "Banda Larga"}}, nil)
	categoryRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

	service.syncCatalog(context.Background())

	after := service.GetStatus()
	startedAt := after["last_sync_started_at"].(time.Time)
	completedAt := after["last_sync_completed_at"].(time.Time)

	assert.False(t, startedAt.IsZero())
	assert.False(t, completedAt.IsZero())
	assert.False(t, completedAt.Before(startedAt))
}

func TestGetStatusDuringSync(t *testing.T) {
	service, integrator, _, _ := newSyncFixture(t, 2)

	started := make(chan struct{})
	release := make(chan struct{})

	// Uma única execução pode buscar ofertas; a chamada concorrente deve
	// ser ignorada enquanto a primeira ainda roda
	integrator.EXPECT().ListProductOfferings(gomock.Any(), 2, 0).
		DoAndReturn(func(ctx context.Context, limit, offset int) ([]*domain.ProductOffering, error) {
			close(started)
			<-release
			return nil, nil
		}).Times(1)
	integrator.EXPECT().ListCategories(gomock.Any(), 2, 0).Return(nil, nil).Times(1)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		service.syncCatalog(context.Background())
	}()

	<-started

	// Consulta de status no meio da execução vê o início mas não o término
	mid := service.GetStatus()
	assert.False(t, mid["last_sync_started_at"].(time.Time).IsZero())
	assert.True(t, mid["last_sync_completed_at"].(time.Time).IsZero())

	// Segunda execução com uma em andamento retorna sem tocar a instância
	service.syncCatalog(context.Background())

	close(release)
	wg.Wait()

	after := service.GetStatus()
	assert.False(t, after["last_sync_completed_at"].(time.Time).IsZero())
}
