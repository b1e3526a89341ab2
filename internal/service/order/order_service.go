package order

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/Domenick1991/restobooking/internal/domain"
	"github.com/Domenick1991/restobooking/internal/kafka"
	"github.com/Domenick1991/restobooking/internal/lock"
	"github.com/Domenick1991/restobooking/internal/repository"
	"github.com/google/uuid"
)

type OrderUseCase interface {
	TakeOrder(ctx context.Context, input TakeOrderInput) (*domain.Order, error)
	ListOrders(ctx context.Context, filter repository.OrderFilter) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error)
	ServeOrder(ctx context.Context, id int64) (*domain.Order, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type OrderService struct {
	orders      repository.OrderRepository
	tables      repository.TableRepository
	menu        repository.MenuRepository
	producer    Producer
	ordersTopic string
	locks       *lock.KeyedMutex
}

type OrderItemInput struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type TakeOrderInput struct {
	TableID int64            `json:"table_id"`
	Items   []OrderItemInput `json:"items"`
}

func NewOrderService(
	orders repository.OrderRepository,
	tables repository.TableRepository,
	menu repository.MenuRepository,
	producer Producer,
	ordersTopic string,
) *OrderService {
	return &OrderService{
		orders:      orders,
		tables:      tables,
		menu:        menu,
		producer:    producer,
		ordersTopic: ordersTopic,
		locks:       lock.NewKeyedMutex(),
	}
}

func (s *OrderService) TakeOrder(ctx context.Context, input TakeOrderInput) (*domain.Order, error) {
	if len(input.Items) == 0 {
		return nil, errors.New("order must contain at least one item")
	}

	if _, err := s.tables.GetByID(ctx, input.TableID); err != nil {
		return nil, err
	}

	// Prices are captured from the menu at creation time; the item
	// list is immutable afterwards.
	items := make([]domain.OrderItem, 0, len(input.Items))
	for _, it := range input.Items {
		if it.Quantity < 1 {
			return nil, errors.New("item quantity must be positive")
		}
		menuItem, err := s.menu.GetByName(ctx, it.Name)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrUnknownItem
			}
			return nil, err
		}
		items = append(items, domain.OrderItem{
			Name:       menuItem.Name,
			Quantity:   it.Quantity,
			PriceCents: menuItem.PriceCents,
		})
	}

	s.locks.Lock(input.TableID)
	defer s.locks.Unlock(input.TableID)

	if _, err := s.orders.GetActiveByTable(ctx, input.TableID); err == nil {
		return nil, domain.ErrDuplicateOrder
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	order := domain.Order{
		TableID: input.TableID,
		Ticket:  uuid.NewString(),
		Items:   items,
	}
	if err := s.orders.Create(ctx, &order); err != nil {
		return nil, err
	}

	s.publish(ctx, "order_created", &order)
	return &order, nil
}

// ListOrders returns orders in arrival order. The kitchen view depends
// on this, so the sort is applied here regardless of storage order.
func (s *OrderService) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]domain.Order, error) {
	orders, err := s.orders.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	sort.Slice(orders, func(i, j int) bool {
		if orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].ID < orders[j].ID
		}
		return orders[i].CreatedAt.Before(orders[j].CreatedAt)
	})
	return orders, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error) {
	if !status.IsValid() {
		return nil, domain.ErrInvalidTransition
	}

	current, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == status {
		return current, nil
	}
	if !current.Status.CanTransition(status) {
		return nil, domain.ErrInvalidTransition
	}

	updated, err := s.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "order_status_updated", updated)
	return updated, nil
}

// ServeOrder clears a READY order from its table, re-opening the table
// for a new order.
func (s *OrderService) ServeOrder(ctx context.Context, id int64) (*domain.Order, error) {
	current, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != domain.OrderStatusReady {
		return nil, domain.ErrInvalidTransition
	}

	updated, err := s.orders.UpdateStatus(ctx, id, domain.OrderStatusServed)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "order_served", updated)
	return updated, nil
}

func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.Order) {
	if s.producer == nil || s.ordersTopic == "" {
		return
	}
	event := kafka.OrderEvent{
		Type:    eventType,
		Ticket:  order.Ticket,
		TableID: order.TableID,
		Status:  string(order.Status),
	}
	if err := s.producer.Publish(ctx, s.ordersTopic, order.Ticket, event); err != nil {
		fmt.Printf("WARNING: Failed to publish %s event for order %s: %v\n", eventType, order.Ticket, err)
	}
}

var _ OrderUseCase = (*OrderService)(nil)
