package servicenowclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Tabelas da instância consumidas pelo gateway.
const (
	quoteTable       = "sn_quote_mgmt_core_quote"
	quoteLineTable   = "sn_quote_mgmt_core_quote_line"
	offeringTable    = "sn_prd_pm_product_offering"
	specTable        = "sn_prd_pm_product_specification"
	categoryTable    = "sn_prd_pm_category"
	catalogTable     = "sn_prd_pm_catalog"
	opportunityTable = "sn_opty_mgmt_core_opportunity"
)

// tableQuery reúne os sysparm_* aceitos pela Table API. Display values são
// sempre resolvidos: o dashboard só exibe texto, nunca sys_ids de referência.
type tableQuery struct {
	Query  string
	Limit  int
	Offset int
	Fields string
}

func (q tableQuery) values() url.Values {
	params := url.Values{}
	params.Set("sysparm_display_value", "true")
	params.Set("sysparm_exclude_reference_link", "true")

	if q.Query != "" {
		params.Set("sysparm_query", q.Query)
	}
	if q.Limit > 0 {
		params.Set("sysparm_limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		params.Set("sysparm_offset", strconv.Itoa(q.Offset))
	}
	if q.Fields != "" {
		params.Set("sysparm_fields", q.Fields)
	}

	return params
}

func (c *SNClient) tableURL(table string, query tableQuery) string {
	return fmt.Sprintf("%s/api/now/table/%s?%s", c.Cfg.ServiceNow.InstanceURL, table, query.values().Encode())
}

func (c *SNClient) recordURL(table, sysID string) string {
	params := tableQuery{}.values()
	return fmt.Sprintf("%s/api/now/table/%s/%s?%s", c.Cfg.ServiceNow.InstanceURL, table, url.PathEscape(sysID), params.Encode())
}

// newRequest monta a requisição já autenticada com o token de acesso da
// conta de serviço. EnsureValidToken precisa ter sido chamado antes.
func (c *SNClient) newRequest(ctx context.Context, method, rawURL string, body []byte) (*http.Request, error) {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.Cfg.ServiceNow.AccessToken)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// do executa a requisição e devolve o corpo já validado por HandleResponse.
func (c *SNClient) do(req *http.Request) ([]byte, *http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}

	body, err := c.HandleResponse(resp)
	if err != nil {
		return nil, resp, err
	}

	return body, resp, nil
}
