package cataloging

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de catálogo
var (
	ErrSpecIDRequired = errors.New("product specification ID is required")
	ErrMirrorRead     = errors.New("error reading catalog mirror")
)

// CatalogError é um erro com contexto adicional para catálogo
type CatalogError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *CatalogError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

func NewCatalogError(err error, code string, details string) *CatalogError {
	return &CatalogError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
