package servicenowclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	sndomain "github.com/rabie02/servicenow-gateway/infrastructure/integrator/servicenow/domain"
)

// specLookupLimit limita a consulta de ofertas por especificação, que o
// dashboard usa para popular um seletor.
const specLookupLimit = 50

type offeringListEnvelope struct {
	Result []sndomain.ProductOfferingRecord `json:"result"`
}

type specificationListEnvelope struct {
	Result []sndomain.ProductSpecificationRecord `json:"result"`
}

type categoryListEnvelope struct {
	Result []sndomain.CategoryRecord `json:"result"`
}

type catalogListEnvelope struct {
	Result []sndomain.CatalogRecord `json:"result"`
}

func (c *SNClient) ListProductOfferings(ctx context.Context, limit, offset int) ([]sndomain.ProductOfferingRecord, error) {
	var envelope offeringListEnvelope
	if err := c.listTable(ctx, offeringTable, tableQuery{Limit: limit, Offset: offset, Query: "ORDERBYname"}, &envelope); err != nil {
		return nil, err
	}
	return envelope.Result, nil
}

func (c *SNClient) ListProductOfferingsBySpec(ctx context.Context, specSysID string) ([]sndomain.ProductOfferingRecord, error) {
	var envelope offeringListEnvelope
	query := tableQuery{
		Query: fmt.Sprintf("product_specification=%s", specSysID),
		Limit: specLookupLimit,
	}
	if err := c.listTable(ctx, offeringTable, query, &envelope); err != nil {
		return nil, err
	}
	return envelope.Result, nil
}

func (c *SNClient) ListProductSpecifications(ctx context.Context, limit int) ([]sndomain.ProductSpecificationRecord, error) {
	var envelope specificationListEnvelope
	if err := c.listTable(ctx, specTable, tableQuery{Limit: limit, Query: "ORDERBYname"}, &envelope); err != nil {
		return nil, err
	}
	return envelope.Result, nil
}

func (c *SNClient) ListCategories(ctx context.Context, limit, offset int) ([]sndomain.CategoryRecord, error) {
	var envelope categoryListEnvelope
	if err := c.listTable(ctx, categoryTable, tableQuery{Limit: limit, Offset: offset, Query: "ORDERBYname"}, &envelope); err != nil {
		return nil, err
	}
	return envelope.Result, nil
}

func (c *SNClient) ListCatalogs(ctx context.Context, limit int) ([]sndomain.CatalogRecord, error) {
	var envelope catalogListEnvelope
	if err := c.listTable(ctx, catalogTable, tableQuery{Limit: limit, Query: "ORDERBYname"}, &envelope); err != nil {
		return nil, err
	}
	return envelope.Result, nil
}

// listTable executa o GET de listagem e decodifica o envelope {result: [...]}.
func (c *SNClient) listTable(ctx context.Context, table string, query tableQuery, envelope any) error {
	if err := c.EnsureValidToken(); err != nil {
		return fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodGet, c.tableURL(table, query), nil)
	if err != nil {
		return err
	}

	body, _, err := c.do(req)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, envelope); err != nil {
		return fmt.Errorf("erro ao decodificar listagem de %s: %w", table, err)
	}

	return nil
}
