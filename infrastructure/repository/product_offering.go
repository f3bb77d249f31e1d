package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/rabie02/servicenow-gateway/infrastructure/database/postgres"
	"github.com/rabie02/servicenow-gateway/internal/domain"
)

const offeringsTable = "product_offerings"

// ProductOfferingRepository é o espelho local das ofertas de produto da
// instância, alimentado pelo agendador de sincronização de catálogo.
type ProductOfferingRepository interface {
	SaveOrUpdate(offerings []*domain.ProductOffering) error
	List(limit int) ([]*domain.ProductOffering, error)
	LastSyncedAt() (*time.Time, error)
}

type productOfferingRepository struct {
	conn *postgres.Connection
}

func NewProductOfferingRepository(conn *postgres.Connection) ProductOfferingRepository {
	return &productOfferingRepository{
		conn: conn,
	}
}

// SaveOrUpdate faz upsert por sys_id carimbando synced_at com o horário da
// sincronização.
func (r *productOfferingRepository) SaveOrUpdate(offerings []*domain.ProductOffering) error {
	now := time.Now().UTC()

	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		for _, offering := range offerings {
			offeringSQL, offeringArgs, err := squirrel.
				Insert(offeringsTable).
				Columns("sys_id", "name", "code", "status", "product_specification", "category", "price", "recurring_price", "synced_at").
				Values(offering.SysID, offering.Name, offering.Code, offering.Status, offering.ProductSpecification, offering.Category, offering.Price, offering.RecurringPrice, now).
				Suffix(`ON CONFLICT (sys_id) DO UPDATE SET
					name = EXCLUDED.name,
					code = EXCLUDED.code,
					status = EXCLUDED.status,
					product_specification = EXCLUDED.product_specification,
					category = EXCLUDED.category,
					price = EXCLUDED.price,
					recurring_price = EXCLUDED.recurring_price,
					synced_at = EXCLUDED.synced_at`).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return err
			}

			if _, err := tx.Exec(offeringSQL, offeringArgs...); err != nil {
				logrus.WithError(err).Errorf("Erro ao gravar oferta %s no espelho", offering.SysID)
				return err
			}
		}
		return nil
	})
}

func (r *productOfferingRepository) List(limit int) ([]*domain.ProductOffering, error) {
	queryBuilder := squirrel.
		Select("sys_id, name, code, status, product_specification, category, price, recurring_price, synced_at").
		From(offeringsTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	return r.list(queryBuilder)
}

func (r *productOfferingRepository) list(queryBuilder squirrel.SelectBuilder) ([]*domain.ProductOffering, error) {
	offeringsSQL, offeringsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(offeringsSQL, offeringsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	offerings := make([]*domain.ProductOffering, 0)
	for rows.Next() {
		offering := &domain.ProductOffering{}
		if err := rows.Scan(
			&offering.SysID,
			&offering.Name,
			&offering.Code,
			&offering.Status,
			&offering.ProductSpecification,
			&offering.Category,
			&offering.Price,
			&offering.RecurringPrice,
			&offering.SyncedAt,
		); err != nil {
			return nil, err
		}
		offerings = append(offerings, offering)
	}

	return offerings, rows.Err()
}

// LastSyncedAt informa o carimbo mais recente do espelho, usado para a
// decisão de frescor do cache.
func (r *productOfferingRepository) LastSyncedAt() (*time.Time, error) {
	syncedSQL, _, err := squirrel.
		Select("MAX(synced_at)").
		From(offeringsTable).
		ToSql()
	if err != nil {
		return nil, err
	}

	var syncedAt sql.NullTime
	if err := r.conn.QueryRow(syncedSQL).Scan(&syncedAt); err != nil {
		return nil, err
	}

	if !syncedAt.Valid {
		return nil, nil
	}

	return &syncedAt.Time, nil
}
