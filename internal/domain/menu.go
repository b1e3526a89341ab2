package domain

import "time"

type MenuItem struct {
	ID         int64
	Name       string
	PriceCents int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
