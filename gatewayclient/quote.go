package gatewayclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rabie02/servicenow-gateway/internal/domain"
)

type quoteListEnvelope struct {
	Success bool              `json:"success"`
	Data    *domain.QuoteList `json:"data"`
}

type quoteDataEnvelope struct {
	Success bool          `json:"success"`
	Data    *domain.Quote `json:"data"`
}

type quoteResultEnvelope struct {
	Success bool          `json:"success"`
	Result  *domain.Quote `json:"result"`
}

func (c *Client) GetQuotes(ctx context.Context, page, limit int, q string) (*domain.QuoteList, error) {
	query := url.Values{}
	query.Set("page", fmt.Sprintf("%d", page))
	query.Set("limit", fmt.Sprintf("%d", limit))
	if q != "" {
		query.Set("q", q)
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/v1/quotes?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var envelope quoteListEnvelope
	if err := c.do(req, &envelope); err != nil {
		return nil, err
	}

	return envelope.Data, nil
}

func (c *Client) GetQuote(ctx context.Context, quoteID string) (*domain.Quote, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/v1/quotes/"+quoteID, nil)
	if err != nil {
		return nil, err
	}

	var envelope quoteDataEnvelope
	if err := c.do(req, &envelope); err != nil {
		return nil, err
	}

	return envelope.Data, nil
}

func (c *Client) CreateQuote(ctx context.Context, opportunityID string) (*domain.Quote, error) {
	req, err := c.mutationRequest(ctx, http.MethodPost, "/v1/opportunities/"+opportunityID+"/quotes", nil)
	if err != nil {
		return nil, err
	}

	var envelope quoteResultEnvelope
	if err := c.do(req, &envelope); err != nil {
		return nil, err
	}

	return envelope.Result, nil
}

func (c *Client) UpdateQuote(ctx context.Context, quoteID string, fields map[string]any) (*domain.Quote, error) {
	if err := c.acquireMutation(quoteID); err != nil {
		return nil, err
	}
	defer c.releaseMutation(quoteID)

	req, err := c.mutationRequest(ctx, http.MethodPatch, "/v1/quotes/"+quoteID, fields)
	if err != nil {
		return nil, err
	}

	var envelope quoteResultEnvelope
	if err := c.do(req, &envelope); err != nil {
		return nil, err
	}

	return envelope.Result, nil
}

// UpdateQuoteState valida a transição no cliente antes de emitir a
// requisição: apenas draft para approved é aceito, o resto falha localmente.
func (c *Client) UpdateQuoteState(ctx context.Context, quote *domain.Quote, targetState domain.QuoteState) (*domain.Quote, error) {
	if quote == nil {
		return nil, fmt.Errorf("cotação não informada")
	}

	if !quote.State.CanTransitionTo(targetState) {
		return nil, fmt.Errorf("transição de %s para %s não permitida", quote.State, targetState)
	}

	if err := c.acquireMutation(quote.SysID); err != nil {
		return nil, err
	}
	defer c.releaseMutation(quote.SysID)

	body := domain.UpdateQuoteStateRequest{State: string(targetState)}
	req, err := c.mutationRequest(ctx, http.MethodPatch, "/v1/quotes/"+quote.SysID+"/state", body)
	if err != nil {
		return nil, err
	}

	var envelope quoteResultEnvelope
	if err := c.do(req, &envelope); err != nil {
		return nil, err
	}

	return envelope.Result, nil
}

func (c *Client) DeleteQuote(ctx context.Context, quoteID string) error {
	if err := c.acquireMutation(quoteID); err != nil {
		return err
	}
	defer c.releaseMutation(quoteID)

	req, err := c.mutationRequest(ctx, http.MethodDelete, "/v1/quotes/"+quoteID, nil)
	if err != nil {
		return err
	}

	return c.do(req, nil)
}
