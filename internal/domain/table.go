package domain

import "time"

type Table struct {
	ID        int64
	Number    int
	Capacity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
