package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/restobooking/config"
	"github.com/Domenick1991/restobooking/internal/bootstrap"
	"github.com/Domenick1991/restobooking/internal/cache"
	"github.com/Domenick1991/restobooking/internal/kafka"
	"github.com/Domenick1991/restobooking/internal/repository"
	"github.com/Domenick1991/restobooking/internal/service/booking"
	"github.com/Domenick1991/restobooking/internal/service/menu"
	"github.com/Domenick1991/restobooking/internal/service/order"
	"github.com/Domenick1991/restobooking/internal/service/tables"
	"github.com/jackc/pgx/v5/pgxpool"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(
		cfg.Redis,
		time.Duration(cfg.Booking.TablesCacheTTLSeconds)*time.Second,
		time.Duration(cfg.Booking.MenuCacheTTLSeconds)*time.Second,
	)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	tableRepo := repository.NewTableRepository(pool)
	menuRepo := repository.NewMenuRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)

	tableService := tables.NewTableService(tableRepo, redisCache)
	menuService := menu.NewMenuService(menuRepo, redisCache)
	bookingService := booking.NewBookingService(
		bookingRepo,
		tableRepo,
		redisCache,
		producer,
		cfg.Kafka.BookingsTopic,
		time.Duration(cfg.Booking.DefaultDurationMinutes)*time.Minute,
		time.Duration(cfg.Booking.TableLockTTLSeconds)*time.Second,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)
	orderService := order.NewOrderService(
		orderRepo,
		tableRepo,
		menuRepo,
		producer,
		cfg.Kafka.OrdersTopic,
	)

	if err := bootstrap.Run(ctx, cfg, tableService, menuService, bookingService, orderService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
