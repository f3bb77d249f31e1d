package servicenowclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	sndomain "github.com/rabie02/servicenow-gateway/infrastructure/integrator/servicenow/domain"
	"github.com/rabie02/servicenow-gateway/internal/config"
)

type Client interface {
	ListQuotes(ctx context.Context, page, limit int, q string) ([]sndomain.QuoteRecord, int, error)
	GetQuote(ctx context.Context, sysID string) (*sndomain.QuoteRecord, error)
	CreateQuoteFromOpportunity(ctx context.Context, opportunitySysID string) (*sndomain.QuoteRecord, error)
	UpdateQuote(ctx context.Context, sysID string, fields map[string]any) (*sndomain.QuoteRecord, error)
	DeleteQuote(ctx context.Context, sysID string) error
	ListQuoteLines(ctx context.Context, quoteSysID string) ([]sndomain.QuoteLineRecord, error)

	GenerateContract(ctx context.Context, quoteSysID string) (*sndomain.ContractRecord, error)
	DownloadContract(ctx context.Context, contractSysID string) (*sndomain.Attachment, error)

	ListProductOfferings(ctx context.Context, limit, offset int) ([]sndomain.ProductOfferingRecord, error)
	ListProductOfferingsBySpec(ctx context.Context, specSysID string) ([]sndomain.ProductOfferingRecord, error)
	ListProductSpecifications(ctx context.Context, limit int) ([]sndomain.ProductSpecificationRecord, error)
	ListCategories(ctx context.Context, limit, offset int) ([]sndomain.CategoryRecord, error)
	ListCatalogs(ctx context.Context, limit int) ([]sndomain.CatalogRecord, error)
	ListOpportunities(ctx context.Context, limit int) ([]sndomain.OpportunityRecord, error)

	EnsureValidToken() error
	HandleResponse(resp *http.Response) ([]byte, error)
}

type SNClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
	httpClient   *http.Client
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	timeout := time.Duration(cfg.ServiceNow.RequestTimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &SNClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// EnsureValidToken verifica se o token atual é válido e renova se necessário
func (c *SNClient) EnsureValidToken() error {
	return c.TokenManager.EnsureValidToken()
}

// HandleResponse lê o corpo e converte respostas de erro do ServiceNow em
// UpstreamError, preservando status e mensagem originais.
func (c *SNClient) HandleResponse(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		upstreamErr := &sndomain.UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    resp.Status,
		}

		var envelope sndomain.ErrorEnvelope
		if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
			upstreamErr.Message = envelope.Error.Message
			upstreamErr.Detail = envelope.Error.Detail
		}

		return nil, upstreamErr
	}

	return body, nil
}
