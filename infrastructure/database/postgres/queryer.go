package postgres

import "database/sql"

// Queryer é a superfície de consulta usada pelos repositórios; tanto a
// conexão quanto uma transação aberta a satisfazem.
type Queryer interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}
