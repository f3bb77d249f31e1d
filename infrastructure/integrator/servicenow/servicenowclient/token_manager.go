package servicenowclient

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rabie02/servicenow-gateway/internal/config"
)

// TokenManager gerencia o token de acesso OAuth da conta de serviço do
// ServiceNow. Tokens de acesso da instância duram 30 minutos; o refresh
// token rotacionado é persistido no Render para sobreviver a deploys.
type TokenManager struct {
	cfg               *config.Config
	TokenRefreshMutex sync.Mutex
	stopRefresh       chan struct{}
	SecretStorage     config.SecretStorage
}

// NewTokenManager cria uma nova instância do gerenciador de tokens
func NewTokenManager(cfg *config.Config, secrets config.SecretStorage) *TokenManager {
	return &TokenManager{
		cfg:               cfg,
		TokenRefreshMutex: sync.Mutex{},
		stopRefresh:       make(chan struct{}),
		SecretStorage:     secrets,
	}
}

// StartAutoRefresh renova o token periodicamente em uma goroutine própria.
func (tm *TokenManager) StartAutoRefresh() {
	if err := tm.RefreshToken(); err != nil {
		logrus.Errorf("Erro ao obter o token inicial do ServiceNow: %v", err)
	}

	// Renovar a cada 25 minutos, antes do vencimento de 30 minutos
	refreshInterval := 25 * time.Minute
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			logrus.Info("Iniciando renovação periódica do token do ServiceNow")
			if err := tm.RefreshToken(); err != nil {
				logrus.Errorf("Erro na renovação periódica do token: %v", err)

				// Se falhar, tente novamente em um intervalo mais curto
				ticker.Reset(1 * time.Minute)
			} else {
				logrus.Info("Renovação periódica do token concluída com sucesso")
				ticker.Reset(refreshInterval)
			}
		case <-tm.stopRefresh:
			logrus.Info("Encerrando goroutine de renovação periódica do token")
			return
		}
	}
}

// StopAutoRefresh para a goroutine de renovação automática
func (tm *TokenManager) StopAutoRefresh() {
	close(tm.stopRefresh)
}

// EnsureValidToken renova o token quando ausente ou perto de expirar.
func (tm *TokenManager) EnsureValidToken() error {
	tm.TokenRefreshMutex.Lock()
	valid := tm.cfg.ServiceNow.AccessToken != "" && time.Now().Before(tm.cfg.ServiceNow.TokenExpiresAt)
	tm.TokenRefreshMutex.Unlock()

	if valid {
		return nil
	}

	return tm.RefreshToken()
}

// RefreshToken obtém um novo token de acesso via refresh grant.
func (tm *TokenManager) RefreshToken() error {
	tm.TokenRefreshMutex.Lock()
	defer tm.TokenRefreshMutex.Unlock()

	// Outra goroutine pode ter renovado enquanto esperávamos o lock
	if tm.cfg.ServiceNow.AccessToken != "" && time.Now().Before(tm.cfg.ServiceNow.TokenExpiresAt) {
		return nil
	}

	tokenResponse, err := RefreshAccessToken(
		tm.cfg.ServiceNow.InstanceURL,
		tm.cfg.ServiceNow.ClientID,
		tm.cfg.ServiceNow.ClientSecret,
		tm.cfg.ServiceNow.RefreshToken,
	)
	if err != nil {
		return fmt.Errorf("erro ao renovar token do ServiceNow: %w", err)
	}

	tm.cfg.ServiceNow.AccessToken = tokenResponse.AccessToken
	tm.cfg.ServiceNow.TokenExpiresAt = CalculateTokenExpiration(tokenResponse.ExpiresIn)

	// A instância pode rotacionar o refresh token junto com o de acesso
	if tokenResponse.RefreshToken != "" && tokenResponse.RefreshToken != tm.cfg.ServiceNow.RefreshToken {
		tm.cfg.ServiceNow.RefreshToken = tokenResponse.RefreshToken

		if tm.SecretStorage != nil && tm.cfg.Render.ServiceID != "" {
			if err := tm.SecretStorage.AddOrUpdateSecret(tm.cfg.Render.ServiceID, "servicenow_refresh_token", tokenResponse.RefreshToken); err != nil {
				logrus.Errorf("Erro ao persistir refresh token rotacionado no Render: %v", err)
			}
		}
	}

	logrus.Infof("Token do ServiceNow renovado com sucesso. Expira em: %s",
		tm.cfg.ServiceNow.TokenExpiresAt.Format(time.RFC3339))

	return nil
}
