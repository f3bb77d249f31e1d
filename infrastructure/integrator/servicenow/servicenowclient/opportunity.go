package servicenowclient

import (
	"context"

	sndomain "github.com/rabie02/servicenow-gateway/infrastructure/integrator/servicenow/domain"
)

type opportunityListEnvelope struct {
	Result []sndomain.OpportunityRecord `json:"result"`
}

func (c *SNClient) ListOpportunities(ctx context.Context, limit int) ([]sndomain.OpportunityRecord, error) {
	var envelope opportunityListEnvelope
	if err := c.listTable(ctx, opportunityTable, tableQuery{Limit: limit, Query: "ORDERBYDESCsys_updated_on"}, &envelope); err != nil {
		return nil, err
	}
	return envelope.Result, nil
}
