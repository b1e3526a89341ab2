package api

import (
	"net/http"

	"github.com/Domenick1991/restobooking/internal/service/menu"
	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	service menu.MenuUseCase
}

type addMenuItemRequest struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
}

func NewMenuHandler(service menu.MenuUseCase) *MenuHandler {
	return &MenuHandler{service: service}
}

func (h *MenuHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.POST("/", h.add)
}

func (h *MenuHandler) list(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *MenuHandler) add(c *gin.Context) {
	var req addMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.service.AddItem(c.Request.Context(), req.Name, req.PriceCents)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}
