package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/rabie02/servicenow-gateway/infrastructure/integrator/servicenow"
	"github.com/rabie02/servicenow-gateway/infrastructure/repository"
	"github.com/rabie02/servicenow-gateway/internal/config"
)

// CatalogSyncConfig representa a configuração do agendador de espelho de catálogo
type CatalogSyncConfig struct {
	CronSchedule        string
	BulkLimit           int
	RequestDelaySeconds int
	SyncEnabled         bool
}

// CatalogSyncService espelha ofertas de produto e categorias do ServiceNow no
// banco local. O espelho alimenta as listagens de catálogo dentro do TTL; as
// consultas por especificação continuam indo direto à instância.
type CatalogSyncService struct {
	scheduler           *gocron.Scheduler
	config              CatalogSyncConfig
	appConfig           *config.Config
	integrator          servicenow.CatalogIntegrator
	offeringRepo        repository.ProductOfferingRepository
	categoryRepo        repository.CategoryRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewCatalogSyncService cria uma nova instância do serviço de sincronização de catálogo
func NewCatalogSyncService(
	integrator servicenow.CatalogIntegrator,
	offeringRepo repository.ProductOfferingRepository,
	categoryRepo repository.CategoryRepository,
	appConfig *config.Config,
) *CatalogSyncService {
	syncConfig := CatalogSyncConfig{
		CronSchedule:        appConfig.CatalogSync.CronSchedule,
		BulkLimit:           appConfig.CatalogSync.BulkLimit,
		RequestDelaySeconds: appConfig.CatalogSync.RequestDelaySeconds,
		SyncEnabled:         appConfig.CatalogSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"bulk_limit":            syncConfig.BulkLimit,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de espelho de catálogo carregada")

	return &CatalogSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		appConfig:    appConfig,
		integrator:   integrator,
		offeringRepo: offeringRepo,
		categoryRepo: categoryRepo,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *CatalogSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de catálogo desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de catálogo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncCatalog(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de catálogo: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de catálogo")
		s.scheduler.Stop()
	}()

	return nil
}

// syncCatalog espelha ofertas e categorias, paginando pela Table API com o
// limite configurado e respeitando o intervalo entre requisições.
func (s *CatalogSyncService) syncCatalog(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de catálogo já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização do espelho de catálogo")

	offerings := s.syncOfferings(ctx)
	categories := s.syncCategories(ctx)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":   duration.String(),
		"offerings":  offerings,
		"categories": categories,
	}).Info("Sincronização do espelho de catálogo concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

func (s *CatalogSyncService) syncOfferings(ctx context.Context) int {
	total := 0

	for offset := 0; ; offset += s.config.BulkLimit {
		page, err := s.integrator.ListProductOfferings(ctx, s.config.BulkLimit, offset)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"offset": offset,
				"error":  err.Error(),
			}).Error("Erro ao buscar ofertas de produto da instância")
			return total
		}

		if len(page) == 0 {
			break
		}

		if err := s.offeringRepo.SaveOrUpdate(page); err != nil {
			logrus.WithField("offset", offset).Error("Erro ao salvar ofertas de produto no banco de dados:", err)
			return total
		}

		total += len(page)

		if len(page) < s.config.BulkLimit {
			break
		}

		time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
	}

	logrus.WithField("offerings", total).Info("Ofertas de produto espelhadas com sucesso")
	return total
}

func (s *CatalogSyncService) syncCategories(ctx context.Context) int {
	total := 0

	for offset := 0; ; offset += s.config.BulkLimit {
		page, err := s.integrator.ListCategories(ctx, s.config.BulkLimit, offset)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"offset": offset,
				"error":  err.Error(),
			}).Error("Erro ao buscar categorias da instância")
			return total
		}

		if len(page) == 0 {
			break
		}

		if err := s.categoryRepo.SaveOrUpdate(page); err != nil {
			logrus.WithField("offset", offset).Error("Erro ao salvar categorias no banco de dados:", err)
			return total
		}

		total += len(page)

		if len(page) < s.config.BulkLimit {
			break
		}

		time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
	}

	logrus.WithField("categories", total).Info("Categorias espelhadas com sucesso")
	return total
}

// TriggerManualSync inicia manualmente uma sincronização de catálogo
func (s *CatalogSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de catálogo já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de catálogo")
	go s.syncCatalog(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *CatalogSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	startedAt := s.lastSyncStartedAt
	completedAt := s.lastSyncCompletedAt
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_bulk_limit":        s.config.BulkLimit,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"mirror_ttl_minutes":     s.appConfig.CatalogSync.MirrorTTLMinutes,
		"last_sync_started_at":   startedAt,
		"last_sync_completed_at": completedAt,
	}
}
