package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/restobooking/api"
	"github.com/Domenick1991/restobooking/config"
	"github.com/Domenick1991/restobooking/internal/service/booking"
	"github.com/Domenick1991/restobooking/internal/service/menu"
	"github.com/Domenick1991/restobooking/internal/service/order"
	"github.com/Domenick1991/restobooking/internal/service/tables"
	"github.com/gin-gonic/gin"
)

// Run starts the HTTP server and blocks until the context is canceled
// or the server fails.
func Run(
	ctx context.Context,
	cfg *config.Config,
	tableSvc tables.TableUseCase,
	menuSvc menu.MenuUseCase,
	bookingSvc booking.BookingUseCase,
	orderSvc order.OrderUseCase,
) error {
	router := NewRouter(tableSvc, menuSvc, bookingSvc, orderSvc)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

// NewRouter wires all handler groups onto a gin engine.
func NewRouter(
	tableSvc tables.TableUseCase,
	menuSvc menu.MenuUseCase,
	bookingSvc booking.BookingUseCase,
	orderSvc order.OrderUseCase,
) *gin.Engine {
	router := gin.Default()

	api.NewTableHandler(tableSvc).Register(router.Group("/tables"))
	api.NewMenuHandler(menuSvc).Register(router.Group("/menu"))
	api.NewBookingHandler(bookingSvc).Register(router.Group("/bookings"))
	api.NewOrderHandler(orderSvc).Register(router.Group("/orders"))

	return router
}
