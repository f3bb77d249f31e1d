package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/rabie02/servicenow-gateway/infrastructure/database/postgres"
	"github.com/rabie02/servicenow-gateway/internal/domain"
)

const categoriesTable = "categories"

// CategoryRepository é o espelho local das categorias de catálogo.
type CategoryRepository interface {
	SaveOrUpdate(categories []*domain.Category) error
	List(limit int) ([]*domain.Category, error)
	LastSyncedAt() (*time.Time, error)
}

type categoryRepository struct {
	conn *postgres.Connection
}

func NewCategoryRepository(conn *postgres.Connection) CategoryRepository {
	return &categoryRepository{
		conn: conn,
	}
}

func (r *categoryRepository) SaveOrUpdate(categories []*domain.Category) error {
	now := time.Now().UTC()

	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		for _, category := range categories {
			categorySQL, categoryArgs, err := squirrel.
				Insert(categoriesTable).
				Columns("sys_id", "name", "code", "status", "catalog", "synced_at").
				Values(category.SysID, category.Name, category.Code, category.Status, category.Catalog, now).
				Suffix(`ON CONFLICT (sys_id) DO UPDATE SET
					name = EXCLUDED.name,
					code = EXCLUDED.code,
					status = EXCLUDED.status,
					catalog = EXCLUDED.catalog,
					synced_at = EXCLUDED.synced_at`).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return err
			}

			if _, err := tx.Exec(categorySQL, categoryArgs...); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *categoryRepository) List(limit int) ([]*domain.Category, error) {
	queryBuilder := squirrel.
		Select("sys_id, name, code, status, catalog, synced_at").
		From(categoriesTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	categoriesSQL, categoriesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(categoriesSQL, categoriesArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		category := &domain.Category{}
		if err := rows.Scan(
			&category.SysID,
			&category.Name,
			&category.Code,
			&category.Status,
			&category.Catalog,
			&category.SyncedAt,
		); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

func (r *categoryRepository) LastSyncedAt() (*time.Time, error) {
	syncedSQL, _, err := squirrel.
		Select("MAX(synced_at)").
		From(categoriesTable).
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
