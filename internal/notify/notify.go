package notify

import (
	"context"
	"fmt"

	"github.com/Domenick1991/restobooking/internal/kafka"
)

// Sender delivers guest-facing messages for booking lifecycle events.
// Delivery is a stub (stdout); the contact field carries a phone number.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	fmt.Printf("notify %s (%s) about %s for table %d at %s\n",
		event.GuestName, event.GuestContact, event.Type, event.TableID, event.StartsAt.Format("2006-01-02 15:04"))
	return nil
}
