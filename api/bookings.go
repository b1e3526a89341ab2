package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Domenick1991/restobooking/internal/domain"
	"github.com/Domenick1991/restobooking/internal/repository"
	"github.com/Domenick1991/restobooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	TableID      int64     `json:"table_id"`
	GuestName    string    `json:"guest_name"`
	GuestContact string    `json:"guest_contact"`
	PartySize    int       `json:"party_size"`
	StartsAt     time.Time `json:"starts_at"`
	EndsAt       time.Time `json:"ends_at"`
}

type updateBookingRequest struct {
	TableID   *int64     `json:"table_id"`
	PartySize *int       `json:"party_size"`
	StartsAt  *time.Time `json:"starts_at"`
	EndsAt    *time.Time `json:"ends_at"`
}

type bookingResponse struct {
	ID           int64  `json:"id"`
	Reference    string `json:"reference"`
	TableID      int64  `json:"table_id"`
	GuestName    string `json:"guest_name"`
	GuestContact string `json:"guest_contact"`
	PartySize    int    `json:"party_size"`
	StartsAt     string `json:"starts_at"`
	EndsAt       string `json:"ends_at"`
	Status       string `json:"status"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.GET("/availability", h.availability)
	router.PATCH("/:id", h.update)
	router.DELETE("/:id", h.cancel)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		TableID:      req.TableID,
		GuestName:    req.GuestName,
		GuestContact: req.GuestContact,
		PartySize:    req.PartySize,
		StartsAt:     req.StartsAt,
		EndsAt:       req.EndsAt,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(created))
}

func (h *BookingHandler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req updateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.UpdateBooking(c.Request.Context(), id, booking.UpdateBookingInput{
		TableID:   req.TableID,
		PartySize: req.PartySize,
		StartsAt:  req.StartsAt,
		EndsAt:    req.EndsAt,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponse(updated))
}

func (h *BookingHandler) cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	cancelled, err := h.service.CancelBooking(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponse(cancelled))
}

func (h *BookingHandler) list(c *gin.Context) {
	filter, err := parseBookingFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bookings, err := h.service.ListBookings(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		response = append(response, toBookingResponse(&bookings[i]))
	}
	c.JSON(http.StatusOK, response)
}

func (h *BookingHandler) availability(c *gin.Context) {
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start"})
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end"})
		return
	}

	availability, err := h.service.GetAvailability(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, availability)
}

func parseBookingFilter(c *gin.Context) (repository.BookingFilter, error) {
	var filter repository.BookingFilter

	if v := c.Query("table_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, err
		}
		filter.TableID = &id
	}
	if v := c.Query("status"); v != "" {
		status := domain.BookingStatus(v)
		filter.Status = &status
	}
	if v := c.Query("from"); v != "" {
		from, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, err
		}
		filter.From = &from
	}
	if v := c.Query("to"); v != "" {
		to, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, err
		}
		filter.To = &to
	}
	return filter, nil
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:           b.ID,
		Reference:    b.Reference,
		TableID:      b.TableID,
		GuestName:    b.GuestName,
		GuestContact: b.GuestContact,
		PartySize:    b.PartySize,
		StartsAt:     b.StartsAt.Format(time.RFC3339),
		EndsAt:       b.EndsAt.Format(time.RFC3339),
		Status:       string(b.Status),
	}
}
