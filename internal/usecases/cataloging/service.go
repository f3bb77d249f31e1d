package cataloging

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rabie02/servicenow-gateway/infrastructure/integrator/servicenow"
	"github.com/rabie02/servicenow-gateway/infrastructure/repository"
	"github.com/rabie02/servicenow-gateway/internal/config"
	"github.com/rabie02/servicenow-gateway/internal/domain"
	"github.com/rabie02/servicenow-gateway/pkg/apiErrors"
)

type Cataloger interface {
	ListOfferings(ctx context.Context, limit, offset int) ([]*domain.ProductOffering, error)
	GetOfferingsBySpec(ctx context.Context, specSysID string) ([]*domain.ProductOffering, error)
	ListSpecifications(ctx context.Context, limit int) ([]*domain.ProductSpecification, error)
	ListCategories(ctx context.Context, limit, offset int) ([]*domain.Category, error)
	ListCatalogs(ctx context.Context, limit int) ([]*domain.Catalog, error)
	ListOpportunities(ctx context.Context, limit int) ([]*domain.Opportunity, error)
}

// Service resolve as consultas de catálogo. Com o espelho habilitado, ofertas
// e categorias são servidas do banco local enquanto a última sincronização
// estiver dentro do TTL; fora disso a consulta vai direto à instância.
type Service struct {
	cfg          *config.Config
	integrator   servicenow.CatalogIntegrator
	opportunity  servicenow.OpportunityIntegrator
	offeringRepo repository.ProductOfferingRepository
	categoryRepo repository.CategoryRepository
	useMirror    bool
}

func NewService(
	cfg *config.Config,
	integrator servicenow.CatalogIntegrator,
	opportunity servicenow.OpportunityIntegrator,
) *Service {
	return &Service{
		cfg:         cfg,
		integrator:  integrator,
		opportunity: opportunity,
		useMirror:   false,
	}
}

// WithMirror habilita o espelho local de catálogo
func (s *Service) WithMirror(
	offeringRepo repository.ProductOfferingRepository,
	categoryRepo repository.CategoryRepository,
) *Service {
	s.offeringRepo = offeringRepo
	s.categoryRepo = categoryRepo
	s.useMirror = (s.offeringRepo != nil && s.categoryRepo != nil)
	return s
}

func (s *Service) ListOfferings(ctx context.Context, limit, offset int) ([]*domain.ProductOffering, error) {
	if s.useMirror && offset == 0 && s.mirrorFresh(s.offeringRepo.LastSyncedAt) {
		offerings, err := s.offeringRepo.List(limit)
		if err != nil {
			logrus.Error("Erro ao consultar espelho de ofertas, caindo para a instância:", err)
		} else if len(offerings) > 0 {
			return offerings, nil
		}
	}

	return s.integrator.ListProductOfferings(ctx, limit, offset)
}

// GetOfferingsBySpec consulta sempre a instância: a seleção de produto na
// edição de cotação precisa do catálogo vigente, não do espelho.
func (s *Service) GetOfferingsBySpec(ctx context.Context, specSysID string) ([]*domain.ProductOffering, error) {
	if specSysID == "" {
		return nil, NewCatalogError(ErrSpecIDRequired, apiErrors.ErrMissingRequiredData, "Identificador da especificação ausente")
	}

	return s.integrator.ListProductOfferingsBySpec(ctx, specSysID)
}

func (s *Service) ListSpecifications(ctx context.Context, limit int) ([]*domain.ProductSpecification, error) {
	return s.integrator.ListProductSpecifications(ctx, limit)
}

func (s *Service) ListCategories(ctx context.Context, limit, offset int) ([]*domain.Category, error) {
	if s.useMirror && offset == 0 && s.mirrorFresh(s.categoryRepo.LastSyncedAt) {
		categories, err := s.categoryRepo.List(limit)
		if err != nil {
			logrus.Error("Erro ao consultar espelho de categorias, caindo para a instância:", err)
		} else if len(categories) > 0 {
			return categories, nil
		}
	}

	return s.integrator.ListCategories(ctx, limit, offset)
}

func (s *Service) ListCatalogs(ctx context.Context, limit int) ([]*domain.Catalog, error) {
	return s.integrator.ListCatalogs(ctx, limit)
}

func (s *Service) ListOpportunities(ctx context.Context, limit int) ([]*domain.Opportunity, error) {
	return s.opportunity.ListOpportunities(ctx, limit)
}

// mirrorFresh verifica se a última sincronização está dentro do TTL
// configurado. TTL zero desabilita o espelho nas leituras.
func (s *Service) mirrorFresh(lastSyncedAt func() (*time.Time, error)) bool {
	ttl := time.Duration(s.cfg.CatalogSync.MirrorTTLMinutes) * time.Minute
	if ttl <= 0 {
		return false
	}

	syncedAt, err := lastSyncedAt()
	if err != nil {
		logrus.Error("Erro ao consultar carimbo de sincronização:", err)
		return false
	}
	if syncedAt == nil {
		return false
	}

	return time.Since(*syncedAt) < ttl
}
