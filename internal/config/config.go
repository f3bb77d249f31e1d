package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	ServiceNow  ServiceNow  `mapstructure:",squash"`
	Render      Render      `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	CatalogSync CatalogSync `mapstructure:",squash"`
	SecretKey   string      `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// ServiceNow guarda as credenciais OAuth da instância e os caminhos de API
// usados pelo gateway. O token de acesso vive apenas em memória e é renovado
// pelo token manager; somente o refresh token é durável.
type ServiceNow struct {
	InstanceURL      string    `mapstructure:"servicenow_instance_url"`
	ClientID         string    `mapstructure:"servicenow_client_id"`
	ClientSecret     string    `mapstructure:"servicenow_client_secret"`
	RefreshToken     string    `mapstructure:"servicenow_refresh_token"`
	AccessToken      string    `mapstructure:"servicenow_access_token"`
	TokenExpiresAt   time.Time `mapstructure:"-"`
	ContractGenPath  string    `mapstructure:"servicenow_contract_gen_path"`
	RequestTimeoutMS int       `mapstructure:"servicenow_request_timeout_ms"`
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret          string `mapstructure:"auth_secret"`
	TokenTTLMinutes int    `mapstructure:"auth_token_ttl_minutes"`
}

// CatalogSync configura o agendador que espelha ofertas de produto e
// categorias do ServiceNow no banco local.
type CatalogSync struct {
	CronSchedule        string `mapstructure:"catalog_sync_cron"`
	BulkLimit           int    `mapstructure:"catalog_sync_bulk_limit"`
	RequestDelaySeconds int    `mapstructure:"catalog_sync_request_delay_seconds"`
	MirrorTTLMinutes    int    `mapstructure:"catalog_sync_mirror_ttl_minutes"`
	Enabled             bool   `mapstructure:"catalog_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/gateway")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SERVICENOW_INSTANCE_URL", "https://dev00000.service-now.com")
	viper.SetDefault("SERVICENOW_CLIENT_ID", "your_client_id")
	viper.SetDefault("SERVICENOW_CLIENT_SECRET", "your_client_secret")
	viper.SetDefault("SERVICENOW_REFRESH_TOKEN", "your_refresh_token") // ONLY LOCAL
	viper.SetDefault("SERVICENOW_ACCESS_TOKEN", "")
	viper.SetDefault("SERVICENOW_CONTRACT_GEN_PATH", "/api/sn_ind_tmt_orm/contract/generate")
	viper.SetDefault("SERVICENOW_REQUEST_TIMEOUT_MS", 30000)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("AUTH_TOKEN_TTL_MINUTES", 480)

	// Defaults para o espelho de catálogo
	viper.SetDefault("CATALOG_SYNC_CRON", "0 2 * * *")         // Todos os dias às 2h da manhã
	viper.SetDefault("CATALOG_SYNC_BULK_LIMIT", 1000)          // Página de busca em massa
	viper.SetDefault("CATALOG_SYNC_REQUEST_DELAY_SECONDS", 2)  // 2 segundos entre requisições
	viper.SetDefault("CATALOG_SYNC_MIRROR_TTL_MINUTES", 24*60) // Espelho vale por um dia
	viper.SetDefault("CATALOG_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
