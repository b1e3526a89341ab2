package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/restobooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TableRepository interface {
	List(ctx context.Context) ([]domain.Table, error)
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
}

type PGTableRepository struct {
	db *pgxpool.Pool
}

func NewTableRepository(db *pgxpool.Pool) TableRepository {
	return &PGTableRepository{db: db}
}

func (r *PGTableRepository) List(ctx context.Context) ([]domain.Table, error) {
	rows, err := r.db.Query(ctx, `SELECT id, table_number, capacity, created_at, updated_at FROM tables ORDER BY table_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := make([]domain.Table, 0)
	for rows.Next() {
		var t domain.Table
		if err := rows.Scan(&t.ID, &t.Number, &t.Capacity, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, rows.Err()
}

func (r *PGTableRepository) GetByID(ctx context.Context, id int64) (*domain.Table, error) {
	row := r.db.QueryRow(ctx, `SELECT id, table_number, capacity, created_at, updated_at FROM tables WHERE id=$1`, id)
	var t domain.Table
	if err := row.Scan(&t.ID, &t.Number, &t.Capacity, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

var _ TableRepository = (*PGTableRepository)(nil)
