package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/restobooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingFilter struct {
	TableID *int64
	Status  *domain.BookingStatus
	From    *time.Time
	To      *time.Time
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error)
	ListActiveByTable(ctx context.Context, tableID int64) ([]domain.Booking, error)
	List(ctx context.Context, filter BookingFilter) ([]domain.Booking, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, table_id, reference, guest_name, guest_contact, party_size, starts_at, ends_at, status, created_at, updated_at`

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.TableID, &b.Reference, &b.GuestName, &b.GuestContact, &b.PartySize, &b.StartsAt, &b.EndsAt, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	booking.Status = domain.BookingStatusActive
	return r.db.QueryRow(ctx, `INSERT INTO bookings (table_id, reference, guest_name, guest_contact, party_size, starts_at, ends_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		booking.TableID, booking.Reference, booking.GuestName, booking.GuestContact, booking.PartySize, booking.StartsAt, booking.EndsAt, booking.Status).
		Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=$1`, id)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *PGBookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	row := r.db.QueryRow(ctx, `UPDATE bookings SET table_id=$1, party_size=$2, starts_at=$3, ends_at=$4, updated_at=now() WHERE id=$5 RETURNING `+bookingColumns,
		booking.TableID, booking.PartySize, booking.StartsAt, booking.EndsAt, booking.ID)
	updated, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	*booking = *updated
	return nil
}

func (r *PGBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE bookings SET status=$1, updated_at=now() WHERE id=$2 RETURNING `+bookingColumns, status, id)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *PGBookingRepository) ListActiveByTable(ctx context.Context, tableID int64) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE table_id=$1 AND status=$2 ORDER BY starts_at, id`, tableID, domain.BookingStatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

func (r *PGBookingRepository) List(ctx context.Context, filter BookingFilter) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings`
	args := []interface{}{}
	where := ""

	appendCond := func(cond string, arg interface{}) {
		args = append(args, arg)
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += fmt.Sprintf(cond, len(args))
	}

	if filter.TableID != nil {
		appendCond("table_id=$%d", *filter.TableID)
	}
	if filter.Status != nil {
		appendCond("status=$%d", *filter.Status)
	}
	if filter.From != nil {
		appendCond("ends_at > $%d", *filter.From)
	}
	if filter.To != nil {
		appendCond("starts_at < $%d", *filter.To)
	}

	rows, err := r.db.Query(ctx, query+where+` ORDER BY starts_at, id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

func collectBookings(rows pgx.Rows) ([]domain.Booking, error) {
	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

var _ BookingRepository = (*PGBookingRepository)(nil)
