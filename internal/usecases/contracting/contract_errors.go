package contracting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de contratos
var (
	// Erros de validação
	ErrQuoteIDRequired    = errors.New("quote ID is required")
	ErrContractIDRequired = errors.New("contract ID is required")

	// Erros de serviços externos
	ErrContractGeneration = errors.New("error generating contract on the instance")
	ErrContractDownload   = errors.New("error downloading contract from the instance")

	// Erros de banco de dados
	ErrContractLogLookup = errors.New("error looking up contract log")

	// Erros de sincronização
	ErrGenerateID = errors.New("error generating log entry ID")
)

// ContractError é um erro com contexto adicional para contratos
type ContractError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	QuoteID string // sys_id da cotação envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ContractError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ContractError) Unwrap() error {
	return e.Err
}

// NewContractError cria um novo ContractError
func NewContractError(err error, code string, details string) *ContractError {
	return &ContractError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewContractErrorWithQuote cria um novo ContractError com o sys_id da cotação
func NewContractErrorWithQuote(err error, code string, quoteID string, details string) *ContractError {
	return &ContractError{
		Err:     err,
		Code:    code,
		QuoteID: quoteID,
		Details: details,
	}
}
