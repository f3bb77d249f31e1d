package cataloging

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	snmocks "github.com/rabie02/servicenow-gateway/infrastructure/integrator/servicenow/mocks"
	repomocks "github.com/rabie02/servicenow-gateway/infrastructure/repository/mocks"
	"github.com/rabie02/servicenow-gateway/internal/config"
	"github.com/rabie02/servicenow-gateway/internal/domain"
)

func mirrorConfig(ttlMinutes int) *config.Config {
	return &config.Config{
		CatalogSync: config.CatalogSync{
			MirrorTTLMinutes: ttlMinutes,
		},
	}
}

func TestListOfferings(t *testing.T) {
	ctx := context.Background()

	fresh := time.Now().Add(-5 * time.Minute)
	stale := time.Now().Add(-2 * time.Hour)

	mirrored := []*domain.ProductOffering{{SysID: "off1", Name: "Plano Fibra 500"}}
	upstream := []*domain.ProductOffering{{SysID: "off2", Name: "Plano Fibra 1G"}}

	tests := []struct {
		name     string
		ttl      int
		offset   int
		setup    func(integrator *snmocks.MockCatalogIntegrator, offeringRepo *repomocks.MockProductOfferingRepository)
		expected []*domain.ProductOffering
	}{
		{
			name:   "Deve servir do espelho quando a sincronização está dentro do TTL",
			ttl:    60,
			offset: 0,
			setup: func(integrator *snmocks.MockCatalogIntegrator, offeringRepo *repomocks.MockProductOfferingRepository) {
				offeringRepo.EXPECT().LastSyncedAt().Return(&fresh, nil)
				offeringRepo.EXPECT().List(10).Return(mirrored, nil)
			},
			expected: mirrored,
		},
		{
			name:   "Deve cair para a instância quando o espelho está vencido",
			ttl:    60,
			offset: 0,
			setup: func(integrator *snmocks.MockCatalogIntegrator, offeringRepo *repomocks.MockProductOfferingRepository) {
				offeringRepo.EXPECT().LastSyncedAt().Return(&stale, nil)
				integrator.EXPECT().ListProductOfferings(gomock.Any(), 10, 0).Return(upstream, nil)
			},
			expected: upstream,
		},
		{
			name:   "Deve cair para a instância quando nunca houve sincronização",
			ttl:    60,
			offset: 0,
			setup: func(integrator *snmocks.MockCatalogIntegrator, offeringRepo *repomocks.MockProductOfferingRepository) {
				offeringRepo.EXPECT().LastSyncedAt().Return(nil, nil)
				integrator.EXPECT().ListProductOfferings(gomock.Any(), 10, 0).Return(upstream, nil)
			},
			expected: upstream,
		},
		{
			name:   "Deve ignorar o espelho em páginas seguintes",
			ttl:    60,
			offset: 10,
			setup: func(integrator *snmocks.MockCatalogIntegrator, offeringRepo *repomocks.MockProductOfferingRepository) {
				integrator.EXPECT().ListProductOfferings(gomock.Any(), 10, 10).Return(upstream, nil)
			},
			expected: upstream,
		},
		{
			name:   "Deve ignorar o espelho com TTL zero",
			ttl:    0,
			offset: 0,
			setup: func(integrator *snmocks.MockCatalogIntegrator, offeringRepo *repomocks.MockProductOfferingRepository) {
				integrator.EXPECT().ListProductOfferings(gomock.Any(), 10, 0).Return(upstream, nil)
			},
			expected: upstream,
		},
		{
			name:   "Deve cair para a instância quando a leitura do espelho falha",
			ttl:    60,
			offset: 0,
			setup: func(integrator *snmocks.MockCatalogIntegrator, offeringRepo *repomocks.MockProductOfferingRepository) {
				offeringRepo.EXPECT().LastSyncedAt().Return(&fresh, nil)
				offeringRepo.EXPECT().List(10).Return(nil, assert.AnError)
				integrator.EXPECT().ListProductOfferings(gomock.Any(), 10, 0).Return(upstream, nil)
			},
			expected: upstream,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			integrator := snmocks.NewMockCatalogIntegrator(ctrl)
			offeringRepo := repomocks.NewMockProductOfferingRepository(ctrl)
			categoryRepo := repomocks.NewMockCategoryRepository(ctrl)
			tt.setup(integrator, offeringRepo)

			service := NewService(mirrorConfig(tt.ttl), integrator, snmocks.NewMockOpportunityIntegrator(ctrl)).
				WithMirror(offeringRepo, categoryRepo)

			offerings, err := service.ListOfferings(ctx, 10, tt.offset)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, offerings)
		})
	}
}

func TestGetOfferingsBySpecAlwaysHitsInstance(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := snmocks.NewMockCatalogIntegrator(ctrl)
	offeringRepo := repomocks.NewMockProductOfferingRepository(ctrl)
	categoryRepo := repomocks.NewMockCategoryRepository(ctrl)

	upstream := []*domain.ProductOffering{{SysID: "off1", Name: "Plano Fibra 500"}}

	// Mesmo com espelho habilitado e fresco, a busca por especificação vai
	// direto à instância.
	integrator.EXPECT().ListProductOfferingsBySpec(gomock.Any(), "spec1").Return(upstream, nil)

	service := NewService(mirrorConfig(60), integrator, snmocks.NewMockOpportunityIntegrator(ctrl)).
		WithMirror(offeringRepo, categoryRepo)

	offerings, err := service.GetOfferingsBySpec(ctx, "spec1")

	assert.NoError(t, err)
	assert.Equal(t, upstream, offerings)

	_, err = service.GetOfferingsBySpec(ctx, "")
	assert.ErrorIs(t, err, ErrSpecIDRequired)
}

func TestListOfferingsWithoutMirror(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := snmocks.NewMockCatalogIntegrator(ctrl)
	upstream := []*domain.ProductOffering{{SysID: "off1"}}

	integrator.EXPECT().ListProductOfferings(gomock.Any(), 10, 0).Return(upstream, nil)

	service := NewService(mirrorConfig(60), integrator, snmocks.NewMockOpportunityIntegrator(ctrl))

	offerings, err := service.ListOfferings(ctx, 10, 0)

	assert.NoError(t, err)
	assert.Equal(t, upstream, offerings)
}
