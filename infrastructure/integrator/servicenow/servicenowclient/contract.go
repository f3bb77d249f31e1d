package servicenowclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	sndomain "github.com/rabie02/servicenow-gateway/infrastructure/integrator/servicenow/domain"
)

type contractEnvelope struct {
	Result sndomain.ContractRecord `json:"result"`
}

// GenerateContract dispara a geração do contrato na instância via a API
// scriptada de ORM. A geração em si (template, PDF, anexos) acontece do
// lado do ServiceNow; aqui só recebemos o registro criado.
func (c *SNClient) GenerateContract(ctx context.Context, quoteSysID string) (*sndomain.ContractRecord, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	endpoint := fmt.Sprintf("%s%s/%s", c.Cfg.ServiceNow.InstanceURL, c.Cfg.ServiceNow.ContractGenPath, quoteSysID)

	req, err := c.newRequest(ctx, http.MethodPost, endpoint, []byte("{}"))
	if err != nil {
		return nil, err
	}

	body, _, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var envelope contractEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("erro ao decodificar contrato gerado: %w", err)
	}

	return &envelope.Result, nil
}

// DownloadContract baixa o PDF do contrato pela Attachment API, preservando
// Content-Type e Content-Disposition para o repasse ao dashboard.
func (c *SNClient) DownloadContract(ctx context.Context, contractSysID string) (*sndomain.Attachment, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	endpoint := fmt.Sprintf("%s/api/now/attachment/%s/file", c.Cfg.ServiceNow.InstanceURL, contractSysID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Cfg.ServiceNow.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(resp.Body)

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

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o conteúdo do anexo: %w", err)
	}

	return &sndomain.Attachment{
		Content:            content,
		ContentType:        resp.Header.Get("Content-Type"),
		ContentDisposition: resp.Header.Get("Content-Disposition"),
	}, nil
}
