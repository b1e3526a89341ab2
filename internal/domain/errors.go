package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrCapacityExceeded  = errors.New("party size exceeds table capacity")
	ErrInvalidInterval   = errors.New("booking end must be after start")
	ErrSlotUnavailable   = errors.New("table is not available for the requested interval")
	ErrAlreadyCancelled  = errors.New("booking is already cancelled")
	ErrUnknownItem       = errors.New("menu item does not exist")
	ErrDuplicateOrder    = errors.New("table already has an active order")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrDuplicateItem     = errors.New("menu item already exists")
)
