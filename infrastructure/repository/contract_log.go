package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/rabie02/servicenow-gateway/infrastructure/database/postgres"
	"github.com/rabie02/servicenow-gateway/internal/domain"
)

const contractLogTable = "contract_log"

// ContractLogRepository registra localmente cada contrato gerado pelo
// gateway. O registro autoritativo continua sendo o da instância; este log
// alimenta as referências de contrato exibidas junto à cotação.
type ContractLogRepository interface {
	Insert(entry *domain.ContractLogEntry) error
	ListByQuote(quoteSysID string) ([]*domain.ContractLogEntry, error)
	GetByIdempotencyKey(key string) (*domain.ContractLogEntry, error)
}

type contractLogRepository struct {
	conn *postgres.Connection
}

func NewContractLogRepository(conn *postgres.Connection) ContractLogRepository {
	return &contractLogRepository{
		conn: conn,
	}
}

func (r *contractLogRepository) Insert(entry *domain.ContractLogEntry) error {
	entrySQL, entryArgs, err := squirrel.
		Insert(contractLogTable).
		Columns("id", "contract_sys_id", "contract_number", "quote_sys_id", "requested_by", "idempotency_key", "created_at").
		Values(entry.ID, entry.ContractSysID, entry.ContractNumber, entry.QuoteSysID, entry.RequestedBy, entry.IdempotencyKey, entry.CreatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(entrySQL, entryArgs...)
	return err
}

func (r *contractLogRepository) ListByQuote(quoteSysID string) ([]*domain.ContractLogEntry, error) {
	entriesSQL, entriesArgs, err := squirrel.
		Select("id, contract_sys_id, contract_number, quote_sys_id, requested_by, idempotency_key, created_at").
		From(contractLogTable).
		Where(squirrel.Eq{"quote_sys_id": quoteSysID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(entriesSQL, entriesArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.ContractLogEntry, 0)
	for rows.Next() {
		entry := &domain.ContractLogEntry{}
		if err := rows.Scan(
			&entry.ID,
			&entry.ContractSysID,
			&entry.ContractNumber,
			&entry.QuoteSysID,
			&entry.RequestedBy,
			&entry.IdempotencyKey,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// GetByIdempotencyKey permite tratar reenvio da mesma ação do usuário sem
// disparar uma segunda geração na instância.
func (r *contractLogRepository) GetByIdempotencyKey(key string) (*domain.ContractLogEntry, error) {
	entrySQL, entryArgs, err := squirrel.
		Select("id, contract_sys_id, contract_number, quote_sys_id, requested_by, idempotency_key, created_at").
		From(contractLogTable).
		Where(squirrel.Eq{"idempotency_key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(entrySQL, entryArgs...)

	entry := &domain.ContractLogEntry{}
	if err := row.Scan(
		&entry.ID,
		&entry.ContractSysID,
		&entry.ContractNumber,
		&entry.QuoteSysID,
		&entry.RequestedBy,
		&entry.IdempotencyKey,
		&entry.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return entry, nil
}
