package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rabie02/servicenow-gateway/infrastructure/database/postgres"
	"github.com/rabie02/servicenow-gateway/infrastructure/integrator/servicenow"
	"github.com/rabie02/servicenow-gateway/infrastructure/integrator/servicenow/servicenowclient"
	"github.com/rabie02/servicenow-gateway/infrastructure/repository"
	"github.com/rabie02/servicenow-gateway/internal/api"
	"github.com/rabie02/servicenow-gateway/internal/config"
	"github.com/rabie02/servicenow-gateway/internal/scheduler"
	"github.com/rabie02/servicenow-gateway/internal/usecases/authenticating"
	"github.com/rabie02/servicenow-gateway/internal/usecases/cataloging"
	"github.com/rabie02/servicenow-gateway/internal/usecases/contracting"
	"github.com/rabie02/servicenow-gateway/internal/usecases/quoting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	offeringRepo := repository.NewProductOfferingRepository(pgConn)
	categoryRepo := repository.NewCategoryRepository(pgConn)
	contractLogRepo := repository.NewContractLogRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	renderClient := config.NewRenderClient(cfg)

	// O refresh token rotaciona a cada renovação; o valor persistido no
	// Render é mais recente do que o do ambiente após o primeiro deploy
	if cfg.Render.ServiceID != "" {
		secrets, err := renderClient.ListSecrets(cfg.Render.ServiceID)
		if err != nil {
			logrus.WithError(err).Warn("Erro ao carregar segredos do Render, usando refresh token do ambiente")
		} else if token, ok := secrets["servicenow_refresh_token"]; ok && token != "" {
			cfg.ServiceNow.RefreshToken = token
			logrus.Info("Refresh token do ServiceNow carregado do Render")
		}
	}

	tokenManager := servicenowclient.NewTokenManager(cfg, renderClient)
	go tokenManager.StartAutoRefresh()
	defer tokenManager.StopAutoRefresh()

	snClient := servicenowclient.NewClient(cfg, tokenManager)
	snIntegrator := servicenow.New(cfg, snClient)

	quoteService := quoting.NewService(snIntegrator, contractLogRepo)
	contractService := contracting.NewService(snIntegrator, contractLogRepo)

	// Inicializa o serviço de catálogo com o espelho local habilitado
	catalogService := cataloging.NewService(cfg, snIntegrator, snIntegrator).WithMirror(
		offeringRepo,
		categoryRepo,
	)

	catalogSyncService := scheduler.NewCatalogSyncService(
		snIntegrator,
		offeringRepo,
		categoryRepo,
		cfg,
	)

	if err := catalogSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de catálogo")
	} else {
		logrus.Info("Agendador de sincronização de catálogo iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		quoteService,
		contractService,
		catalogService,
		catalogSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
