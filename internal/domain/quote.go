package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// QuoteState é o ciclo de vida de uma cotação. O ServiceNow é a fonte da
// verdade; o gateway valida a transição antes de repassar a mutação.
type QuoteState string

const (
	QuoteStateDraft    QuoteState = "draft"
	QuoteStateApproved QuoteState = "approved"
	QuoteStatePending  QuoteState = "pending"
	QuoteStateRejected QuoteState = "rejected"
	QuoteStateExpired  QuoteState = "expired"
)

// allowedTransitions é a tabela fechada de transições que o gateway aceita
// disparar. Os demais estados são apenas exibidos, nunca alvo de ação.
var allowedTransitions = map[QuoteState][]QuoteState{
	QuoteStateDraft: {QuoteStateApproved},
}

// ParseQuoteState converte uma string em QuoteState, rejeitando valores fora
// da enumeração.
func ParseQuoteState(s string) (QuoteState, error) {
	switch QuoteState(s) {
	case QuoteStateDraft, QuoteStateApproved, QuoteStatePending, QuoteStateRejected, QuoteStateExpired:
		return QuoteState(s), nil
	}
	return "", fmt.Errorf("estado de cotação desconhecido: %q", s)
}

// CanTransitionTo informa se a transição de s para target é aceita.
func (s QuoteState) CanTransitionTo(target QuoteState) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Terminal indica que nenhuma transição parte deste estado.
func (s QuoteState) Terminal() bool {
	return len(allowedTransitions[s]) == 0
}

type Quote struct {
	SysID                 string              `json:"sys_id"`
	Number                string              `json:"number"`
	State                 QuoteState          `json:"state"`
	Version               string              `json:"version"`
	Currency              string              `json:"currency"`
	Account               string              `json:"account"`
	Total                 decimal.Decimal     `json:"total"`
	QuoteLines            []QuoteLine         `json:"quote_lines"`
	Contracts             []ContractReference `json:"contracts"`
	SubscriptionStartDate *time.Time          `json:"subscription_start_date"`
	SubscriptionEndDate   *time.Time          `json:"subscription_end_date"`
	ExpirationDate        *time.Time          `json:"expiration_date"`
}

// QuoteLine pertence a sua cotação e é somente leitura neste aplicativo.
type QuoteLine struct {
	SysID           string          `json:"sys_id"`
	ProductOffering string          `json:"product_offering"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	TermMonth       int             `json:"term_month"`
	State           string          `json:"state"`
}

// QuoteList é a página retornada pela listagem de cotações.
type QuoteList struct {
	Data       []*Quote `json:"data"`
	Page       int      `json:"page"`
	TotalPages int      `json:"total_pages"`
	Total      int      `json:"total"`
}

// UpdateQuoteStateRequest é o corpo de PATCH /v1/quotes/:id/state.
type UpdateQuoteStateRequest struct {
	State string `json:"state"`
}
