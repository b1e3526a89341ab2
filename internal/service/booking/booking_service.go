package booking

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Domenick1991/restobooking/internal/domain"
	"github.com/Domenick1991/restobooking/internal/kafka"
	"github.com/Domenick1991/restobooking/internal/lock"
	"github.com/Domenick1991/restobooking/internal/repository"
	"github.com/google/uuid"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	UpdateBooking(ctx context.Context, id int64, input UpdateBookingInput) (*domain.Booking, error)
	CancelBooking(ctx context.Context, id int64) (*domain.Booking, error)
	ListBookings(ctx context.Context, filter repository.BookingFilter) ([]domain.Booking, error)
	GetAvailability(ctx context.Context, start, end time.Time) ([]TableAvailability, error)
}

type Cache interface {
	AcquireTableLock(ctx context.Context, tableID int64, ttl time.Duration) (bool, error)
	ReleaseTableLock(ctx context.Context, tableID int64) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	tables             repository.TableRepository
	cache              Cache
	producer           Producer
	bookingsTopic      string
	notificationsTopic string
	defaultDuration    time.Duration
	lockTTL            time.Duration
	locks              *lock.KeyedMutex
}

type CreateBookingInput struct {
	TableID      int64     `json:"table_id"`
	GuestName    string    `json:"guest_name"`
	GuestContact string    `json:"guest_contact"`
	PartySize    int       `json:"party_size"`
	StartsAt     time.Time `json:"starts_at"`
	EndsAt       time.Time `json:"ends_at"`
}

type UpdateBookingInput struct {
	TableID   *int64     `json:"table_id"`
	PartySize *int       `json:"party_size"`
	StartsAt  *time.Time `json:"starts_at"`
	EndsAt    *time.Time `json:"ends_at"`
}

// Interval is one conflicting ACTIVE booking slot on a table.
type Interval struct {
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
}

type TableAvailability struct {
	Table     domain.Table `json:"table"`
	Available bool         `json:"available"`
	Conflicts []Interval   `json:"conflicts,omitempty"`
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	tables repository.TableRepository,
	cache Cache,
	producer Producer,
	bookingsTopic string,
	defaultDuration, lockTTL time.Duration,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:        bookings,
		tables:          tables,
		cache:           cache,
		producer:        producer,
		bookingsTopic:   bookingsTopic,
		defaultDuration: defaultDuration,
		lockTTL:         lockTTL,
		locks:           lock.NewKeyedMutex(),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	candidate := domain.Booking{
		TableID:      input.TableID,
		Reference:    uuid.NewString(),
		GuestName:    input.GuestName,
		GuestContact: input.GuestContact,
		PartySize:    input.PartySize,
		StartsAt:     input.StartsAt,
		EndsAt:       input.EndsAt,
	}
	if candidate.EndsAt.IsZero() && s.defaultDuration > 0 {
		candidate.EndsAt = candidate.StartsAt.Add(s.defaultDuration)
	}

	s.locks.Lock(candidate.TableID)
	defer s.locks.Unlock(candidate.TableID)

	unlock, err := s.lockTable(ctx, candidate.TableID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err := s.validate(ctx, &candidate, 0); err != nil {
		return nil, err
	}

	if err := s.bookings.Create(ctx, &candidate); err != nil {
		return nil, err
	}

	s.publish(ctx, "booking_created", &candidate)
	return &candidate, nil
}

func (s *BookingService) UpdateBooking(ctx context.Context, id int64, input UpdateBookingInput) (*domain.Booking, error) {
	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != domain.BookingStatusActive {
		return nil, domain.ErrAlreadyCancelled
	}

	candidate := *current
	if input.TableID != nil {
		candidate.TableID = *input.TableID
	}
	if input.PartySize != nil {
		candidate.PartySize = *input.PartySize
	}
	if input.StartsAt != nil {
		candidate.StartsAt = *input.StartsAt
	}
	if input.EndsAt != nil {
		candidate.EndsAt = *input.EndsAt
	}

	s.locks.Lock(candidate.TableID)
	defer s.locks.Unlock(candidate.TableID)

	unlock, err := s.lockTable(ctx, candidate.TableID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	// The booking being updated must not conflict with itself.
	if err := s.validate(ctx, &candidate, current.ID); err != nil {
		return nil, err
	}

	if err := s.bookings.Update(ctx, &candidate); err != nil {
		return nil, err
	}

	s.publish(ctx, "booking_updated", &candidate)
	return &candidate, nil
}

func (s *BookingService) CancelBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != domain.BookingStatusActive {
		return nil, domain.ErrAlreadyCancelled
	}

	updated, err := s.bookings.UpdateStatus(ctx, id, domain.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "booking_cancelled", updated)
	return updated, nil
}

func (s *BookingService) ListBookings(ctx context.Context, filter repository.BookingFilter) ([]domain.Booking, error) {
	bookings, err := s.bookings.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	sortBookings(bookings)
	return bookings, nil
}

// GetAvailability is a derived query: it recomputes per-table conflicts
// from current ACTIVE bookings on every call, nothing is stored.
func (s *BookingService) GetAvailability(ctx context.Context, start, end time.Time) ([]TableAvailability, error) {
	if !start.Before(end) {
		return nil, domain.ErrInvalidInterval
	}

	tables, err := s.tables.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]TableAvailability, 0, len(tables))
	for _, t := range tables {
		active, err := s.bookings.ListActiveByTable(ctx, t.ID)
		if err != nil {
			return nil, err
		}

		availability := TableAvailability{Table: t, Available: true}
		for _, b := range active {
			if b.Overlaps(start, end) {
				availability.Available = false
				availability.Conflicts = append(availability.Conflicts, Interval{StartsAt: b.StartsAt, EndsAt: b.EndsAt})
			}
		}
		result = append(result, availability)
	}
	return result, nil
}

// validate runs every create-style business rule against the candidate.
// excludeID removes the booking being updated from the overlap check.
// Nothing is written until all rules pass.
func (s *BookingService) validate(ctx context.Context, candidate *domain.Booking, excludeID int64) error {
	table, err := s.tables.GetByID(ctx, candidate.TableID)
	if err != nil {
		return err
	}
	if candidate.PartySize < 1 || candidate.PartySize > table.Capacity {
		return domain.ErrCapacityExceeded
	}
	if !candidate.StartsAt.Before(candidate.EndsAt) {
		return domain.ErrInvalidInterval
	}

	active, err := s.bookings.ListActiveByTable(ctx, candidate.TableID)
	if err != nil {
		return err
	}
	for _, b := range active {
		if b.ID == excludeID {
			continue
		}
		if b.Overlaps(candidate.StartsAt, candidate.EndsAt) {
			return domain.ErrSlotUnavailable
		}
	}
	return nil
}

func (s *BookingService) lockTable(ctx context.Context, tableID int64) (func(), error) {
	if s.cache == nil {
		return func() {}, nil
	}
	ok, err := s.cache.AcquireTableLock(ctx, tableID, s.lockTTL)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrSlotUnavailable
	}
	return func() { _ = s.cache.ReleaseTableLock(ctx, tableID) }, nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil || s.bookingsTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:         eventType,
		Reference:    booking.Reference,
		TableID:      booking.TableID,
		GuestName:    booking.GuestName,
		GuestContact: booking.GuestContact,
		PartySize:    booking.PartySize,
		StartsAt:     booking.StartsAt,
		EndsAt:       booking.EndsAt,
		Status:       string(booking.Status),
	}
	if err := s.producer.Publish(ctx, s.bookingsTopic, booking.Reference, event); err != nil {
		fmt.Printf("WARNING: Failed to publish %s event for booking %s: %v\n", eventType, booking.Reference, err)
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, booking.Reference, event); err != nil {
			fmt.Printf("WARNING: Failed to publish %s notification for booking %s: %v\n", eventType, booking.Reference, err)
		}
	}
}

func sortBookings(bookings []domain.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		if bookings[i].StartsAt.Equal(bookings[j].StartsAt) {
			return bookings[i].ID < bookings[j].ID
		}
		return bookings[i].StartsAt.Before(bookings[j].StartsAt)
	})
}

var _ BookingUseCase = (*BookingService)(nil)
