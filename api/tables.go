package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/restobooking/internal/service/tables"
	"github.com/gin-gonic/gin"
)

type TableHandler struct {
	service tables.TableUseCase
}

func NewTableHandler(service tables.TableUseCase) *TableHandler {
	return &TableHandler{service: service}
}

func (h *TableHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
}

func (h *TableHandler) list(c *gin.Context) {
	result, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *TableHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	table, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}
