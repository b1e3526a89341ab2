package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/restobooking/internal/domain"
	"github.com/gin-gonic/gin"
)

// statusForError maps business-rule rejections onto HTTP statuses.
// Unrecognized errors are treated as bad requests.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrSlotUnavailable),
		errors.Is(err, domain.ErrDuplicateOrder),
		errors.Is(err, domain.ErrAlreadyCancelled),
		errors.Is(err, domain.ErrDuplicateItem):
		return http.StatusConflict
	case errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrInvalidInterval),
		errors.Is(err, domain.ErrUnknownItem),
		errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusForError(err), gin.H{"error": err.Error()})
}
