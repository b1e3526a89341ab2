package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/restobooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MenuRepository interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	GetByName(ctx context.Context, name string) (*domain.MenuItem, error)
	Create(ctx context.Context, item *domain.MenuItem) error
}

type PGMenuRepository struct {
	db *pgxpool.Pool
}

func NewMenuRepository(db *pgxpool.Pool) MenuRepository {
	return &PGMenuRepository{db: db}
}

func (r *PGMenuRepository) List(ctx context.Context) ([]domain.MenuItem, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, price_cents, created_at, updated_at FROM menu_items ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.MenuItem, 0)
	for rows.Next() {
		var m domain.MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.PriceCents, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *PGMenuRepository) GetByName(ctx context.Context, name string) (*domain.MenuItem, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, price_cents, created_at, updated_at FROM menu_items WHERE name=$1`, name)
	var m domain.MenuItem
	if err := row.Scan(&m.ID, &m.Name, &m.PriceCents, &m.CreatedAt, &m.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *PGMenuRepository) Create(ctx context.Context, item *domain.MenuItem) error {
	return r.db.QueryRow(ctx, `INSERT INTO menu_items (name, price_cents)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`, item.Name, item.PriceCents).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

var _ MenuRepository = (*PGMenuRepository)(nil)
