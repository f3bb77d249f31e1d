package quoting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de cotações
var (
	// Erros de validação
	ErrQuoteIDRequired       = errors.New("quote ID is required")
	ErrOpportunityIDRequired = errors.New("opportunity ID is required")
	ErrUnknownState          = errors.New("unknown quote state")
	ErrTransitionNotAllowed  = errors.New("state transition not allowed")
	ErrNoFieldsToUpdate      = errors.New("no fields to update")

	// Erros de concorrência
	ErrQuoteMutationInFlight = errors.New("another mutation is in flight for this quote")

	// Erros de banco de dados
	ErrFetchContractLog = errors.New("error fetching contract log from database")
)

// QuoteError é um erro com contexto adicional para cotações
type QuoteError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	QuoteID string // sys_id da cotação envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *QuoteError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *QuoteError) Unwrap() error {
	return e.Err
}

// NewQuoteError cria um novo QuoteError
func NewQuoteError(err error, code string, details string) *QuoteError {
	return &QuoteError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewQuoteErrorWithID cria um novo QuoteError com o sys_id da cotação
func NewQuoteErrorWithID(err error, code string, quoteID string, details string) *QuoteError {
	return &QuoteError{
		Err:     err,
		Code:    code,
		QuoteID: quoteID,
		Details: details,
	}
}
