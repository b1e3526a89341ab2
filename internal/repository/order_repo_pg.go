package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/restobooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderFilter struct {
	TableID *int64
	Status  *domain.OrderStatus
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	GetActiveByTable(ctx context.Context, tableID int64) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]domain.Order, error)
}

type PGOrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) OrderRepository {
	return &PGOrderRepository{db: db}
}

func (r *PGOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	order.Status = domain.OrderStatusPrepping
	if err := tx.QueryRow(ctx, `INSERT INTO orders (table_id, ticket, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`, order.TableID, order.Ticket, order.Status).
		Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
		return err
	}

	for _, item := range order.Items {
		if _, err := tx.Exec(ctx, `INSERT INTO order_items (order_id, name, quantity, price_cents) VALUES ($1, $2, $3, $4)`,
			order.ID, item.Name, item.Quantity, item.PriceCents); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PGOrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	row := r.db.QueryRow(ctx, `SELECT id, table_id, ticket, status, created_at, updated_at FROM orders WHERE id=$1`, id)
	return r.scanWithItems(ctx, row)
}

func (r *PGOrderRepository) GetActiveByTable(ctx context.Context, tableID int64) (*domain.Order, error) {
	row := r.db.QueryRow(ctx, `SELECT id, table_id, ticket, status, created_at, updated_at FROM orders
		WHERE table_id=$1 AND status = ANY($2)`, tableID, activeStatuses())
	return r.scanWithItems(ctx, row)
}

func (r *PGOrderRepository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error) {
	row := r.db.QueryRow(ctx, `UPDATE orders SET status=$1, updated_at=now() WHERE id=$2 RETURNING id, table_id, ticket, status, created_at, updated_at`, status, id)
	return r.scanWithItems(ctx, row)
}

func (r *PGOrderRepository) List(ctx context.Context, filter OrderFilter) ([]domain.Order, error) {
	query := `SELECT id, table_id, ticket, status, created_at, updated_at FROM orders`
	args := []interface{}{}
	switch {
	case filter.TableID != nil && filter.Status != nil:
		query += ` WHERE table_id=$1 AND status=$2`
		args = append(args, *filter.TableID, *filter.Status)
	case filter.TableID != nil:
		query += ` WHERE table_id=$1`
		args = append(args, *filter.TableID)
	case filter.Status != nil:
		query += ` WHERE status=$1`
		args = append(args, *filter.Status)
	}

	rows, err := r.db.Query(ctx, query+` ORDER BY created_at, id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.TableID, &o.Ticket, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.loadItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *PGOrderRepository) scanWithItems(ctx context.Context, row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	if err := row.Scan(&o.ID, &o.TableID, &o.Ticket, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	items, err := r.loadItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *PGOrderRepository) loadItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	rows, err := r.db.Query(ctx, `SELECT name, quantity, price_cents FROM order_items WHERE order_id=$1 ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		var it domain.OrderItem
		if err := rows.Scan(&it.Name, &it.Quantity, &it.PriceCents); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func activeStatuses() []string {
	return []string{
		string(domain.OrderStatusPrepping),
		string(domain.OrderStatusCooking),
		string(domain.OrderStatusReady),
	}
}

var _ OrderRepository = (*PGOrderRepository)(nil)
