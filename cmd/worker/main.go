package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/restobooking/config"
	"github.com/Domenick1991/restobooking/internal/kafka"
	"github.com/Domenick1991/restobooking/internal/notify"
	"github.com/Domenick1991/restobooking/internal/repository"
	"github.com/Domenick1991/restobooking/internal/service/order"
	"github.com/jackc/pgx/v5/pgxpool"
	kafkaGo "github.com/segmentio/kafka-go"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	orderRepo := repository.NewOrderRepository(pool)
	tableRepo := repository.NewTableRepository(pool)
	menuRepo := repository.NewMenuRepository(pool)
	orderService := order.NewOrderService(orderRepo, tableRepo, menuRepo, nil, "")

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	sender := notify.NewSender()

	go func() {
		if err := consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
			var event kafka.BookingEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				log.Printf("decode event error: %v", err)
				return nil
			}
			return sender.Send(ctx, event)
		}); err != nil {
			log.Printf("consumer stopped: %v", err)
		}
	}()

	displayTicker := time.NewTicker(time.Duration(cfg.Worker.KitchenDisplaySeconds) * time.Second)
	defer displayTicker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-displayTicker.C:
			showKitchenQueue(ctx, orderService)
		case s := <-sig:
			log.Printf("received signal %v, shutting down", s)
			return
		}
	}
}

// showKitchenQueue logs active orders in arrival order, the view the
// kitchen works from.
func showKitchenQueue(ctx context.Context, svc order.OrderUseCase) {
	orders, err := svc.ListOrders(ctx, repository.OrderFilter{})
	if err != nil {
		log.Printf("list orders error: %v", err)
		return
	}

	queued := 0
	for _, o := range orders {
		if !o.Status.Active() {
			continue
		}
		queued++
		log.Printf("kitchen queue: order %d (table %d) %s since %s", o.ID, o.TableID, o.Status, o.CreatedAt.Format("15:04:05"))
	}
	if queued == 0 {
		log.Printf("kitchen queue: empty")
	}
}
