package servicenowclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	sndomain "github.com/rabie02/servicenow-gateway/infrastructure/integrator/servicenow/domain"
	"github.com/rabie02/servicenow-gateway/pkg/utils"
)

type quoteListEnvelope struct {
	Result []sndomain.QuoteRecord `json:"result"`
}

type quoteEnvelope struct {
	Result sndomain.QuoteRecord `json:"result"`
}

type quoteLineListEnvelope struct {
	Result []sndomain.QuoteLineRecord `json:"result"`
}

// ListQuotes busca uma página de cotações. O filtro de texto livre cobre o
// número da cotação e o nome da conta. O total vem do cabeçalho
// X-Total-Count da Table API.
func (c *SNClient) ListQuotes(ctx context.Context, page, limit int, q string) ([]sndomain.QuoteRecord, int, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, 0, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	query := "ORDERBYDESCsys_updated_on"
	if q != "" {
		query = fmt.Sprintf("numberLIKE%s^ORaccount.nameLIKE%s^%s", q, q, query)
	}

	req, err := c.newRequest(ctx, http.MethodGet, c.tableURL(quoteTable, tableQuery{
		Query:  query,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}), nil)
	if err != nil {
		return nil, 0, err
	}

	body, resp, err := c.do(req)
	if err != nil {
		return nil, 0, err
	}

	var envelope quoteListEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, 0, fmt.Errorf("erro ao decodificar lista de cotações: %w", err)
	}

	total := len(envelope.Result)
	if header := resp.Header.Get("X-Total-Count"); header != "" {
		if parsed, err := strconv.Atoi(header); err == nil {
			total = parsed
		}
	}

	return envelope.Result, total, nil
}

func (c *SNClient) GetQuote(ctx context.Context, sysID string) (*sndomain.QuoteRecord, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodGet, c.recordURL(quoteTable, sysID), nil)
	if err != nil {
		return nil, err
	}

	body, _, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var envelope quoteEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("erro ao decodificar cotação: %w", err)
	}

	return &envelope.Result, nil
}

// CreateQuoteFromOpportunity insere uma cotação rascunho vinculada à
// oportunidade. As regras de negócio da instância preenchem linhas, moeda e
// datas a partir da oportunidade.
func (c *SNClient) CreateQuoteFromOpportunity(ctx context.Context, opportunitySysID string) (*sndomain.QuoteRecord, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	payload, err := json.Marshal(map[string]string{"opportunity": opportunitySysID})
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, c.tableURL(quoteTable, tableQuery{}), payload)
	if err != nil {
		return nil, err
	}

	body, _, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var envelope quoteEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("erro ao decodificar cotação criada: %w", err)
	}

	return &envelope.Result, nil
}

// UpdateQuote aplica um PATCH parcial e devolve a cópia ecoada pela
// instância, que substitui o estado local (atualização pessimista).
func (c *SNClient) UpdateQuote(ctx context.Context, sysID string, fields map[string]any) (*sndomain.QuoteRecord, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	payload, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}

	logrus.Debug("Payload de atualização enviado ao ServiceNow: ", utils.PrettyJson(payload))

	req, err := c.newRequest(ctx, http.MethodPatch, c.recordURL(quoteTable, sysID), payload)
	if err != nil {
		return nil, err
	}

	body, _, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var envelope quoteEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("erro ao decodificar cotação atualizada: %w", err)
	}

	return &envelope.Result, nil
}

func (c *SNClient) DeleteQuote(ctx context.Context, sysID string) error {
	if err := c.EnsureValidToken(); err != nil {
		return fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodDelete, c.recordURL(quoteTable, sysID), nil)
	if err != nil {
		return err
	}

	_, _, err = c.do(req)
	return err
}

func (c *SNClient) ListQuoteLines(ctx context.Context, quoteSysID string) ([]sndomain.QuoteLineRecord, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodGet, c.tableURL(quoteLineTable, tableQuery{
		Query: fmt.Sprintf("quote=%s^ORDERBYorder", quoteSysID),
	}), nil)
	if err != nil {
		return nil, err
	}

	body, _, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var envelope quoteLineListEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("erro ao decodificar linhas da cotação: %w", err)
	}

	return envelope.Result, nil
}
