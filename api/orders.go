package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Domenick1991/restobooking/internal/domain"
	"github.com/Domenick1991/restobooking/internal/repository"
	"github.com/Domenick1991/restobooking/internal/service/order"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	service order.OrderUseCase
}

type takeOrderRequest struct {
	TableID int64 `json:"table_id"`
	Items   []struct {
		Name     string `json:"name"`
		Quantity int    `json:"quantity"`
	} `json:"items"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

type orderItemResponse struct {
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	PriceCents int64  `json:"price_cents"`
}

type orderResponse struct {
	ID        int64               `json:"id"`
	Ticket    string              `json:"ticket"`
	TableID   int64               `json:"table_id"`
	Items     []orderItemResponse `json:"items"`
	Status    string              `json:"status"`
	CreatedAt string              `json:"created_at"`
}

func NewOrderHandler(service order.OrderUseCase) *OrderHandler {
	return &OrderHandler{service: service}
}

func (h *OrderHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.take)
	router.GET("/", h.list)
	router.PATCH("/:id/status", h.updateStatus)
	router.POST("/:id/serve", h.serve)
}

func (h *OrderHandler) take(c *gin.Context) {
	var req takeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := make([]order.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, order.OrderItemInput{Name: it.Name, Quantity: it.Quantity})
	}

	created, err := h.service.TakeOrder(c.Request.Context(), order.TakeOrderInput{
		TableID: req.TableID,
		Items:   items,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(created))
}

func (h *OrderHandler) list(c *gin.Context) {
	var filter repository.OrderFilter
	if v := c.Query("table_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid table_id"})
			return
		}
		filter.TableID = &id
	}
	if v := c.Query("status"); v != "" {
		status := domain.OrderStatus(v)
		if !status.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
		filter.Status = &status
	}

	orders, err := h.service.ListOrders(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]orderResponse, 0, len(orders))
	for i := range orders {
		response = append(response, toOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, response)
}

func (h *OrderHandler) updateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := domain.OrderStatus(req.Status)
	if !status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(updated))
}

func (h *OrderHandler) serve(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	served, err := h.service.ServeOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(served))
}

func toOrderResponse(o *domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemResponse{Name: it.Name, Quantity: it.Quantity, PriceCents: it.PriceCents})
	}
	return orderResponse{
		ID:        o.ID,
		Ticket:    o.Ticket,
		TableID:   o.TableID,
		Items:     items,
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
	}
}
