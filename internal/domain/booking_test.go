package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBooking_Overlaps(t *testing.T) {
	base := time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)
	booking := Booking{
		StartsAt: base,
		EndsAt:   base.Add(time.Hour),
	}

	cases := []struct {
		name     string
		start    time.Time
		end      time.Time
		overlaps bool
	}{
		{"identical", base, base.Add(time.Hour), true},
		{"contained", base.Add(15 * time.Minute), base.Add(30 * time.Minute), true},
		{"straddles start", base.Add(-30 * time.Minute), base.Add(30 * time.Minute), true},
		{"straddles end", base.Add(30 * time.Minute), base.Add(90 * time.Minute), true},
		{"back to back before", base.Add(-time.Hour), base, false},
		{"back to back after", base.Add(time.Hour), base.Add(2 * time.Hour), false},
		{"well before", base.Add(-3 * time.Hour), base.Add(-2 * time.Hour), false},
		{"well after", base.Add(2 * time.Hour), base.Add(3 * time.Hour), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlaps, booking.Overlaps(tc.start, tc.end))
		})
	}
}
