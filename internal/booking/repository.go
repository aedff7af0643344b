package booking

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	// ErrSlotConflict surfaces the partial unique index on
	// (studio_id, slot_date, start_time) for confirmed rows. Two racing
	// requests can both pass the availability check; the index is what
	// guarantees only one insert commits.
	ErrSlotConflict = errors.New("slot already booked")

	ErrBookingNotFoundOrAlreadyCancelled = errors.New("booking not found or already cancelled")
)

const bookingColumns = `id, user_id, studio_id, slot_date, start_time, end_time, status, purpose, cancelled_at, created_at`

const detailColumns = `
			b.id,
			b.user_id,
			b.studio_id,
			b.slot_date,
			b.start_time,
			b.end_time,
			b.status,
			b.purpose,
			b.cancelled_at,
			b.created_at,
			s.name AS studio_name,
			s.location AS studio_location,
			u.name AS user_name,
			u.email AS user_email`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateBooking(ctx context.Context, userID, studioID int, date time.Time, startTime, endTime, purpose string) (*Booking, error) {
	query := `
		INSERT INTO bookings (user_id, studio_id, slot_date, start_time, end_time, status, purpose)
		VALUES ($1, $2, $3, $4, $5, 'confirmed', NULLIF($6, ''))
		RETURNING ` + bookingColumns

	var b Booking
	err := r.db.GetContext(ctx, &b, query, userID, studioID, date.Format("2006-01-02"), startTime, endTime, purpose)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, ErrSlotConflict
		}
		return nil, err
	}

	return &b, nil
}

func (r *repository) GetBookingByID(ctx context.Context, id int) (*Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1
	`

	var b Booking
	err := r.db.GetContext(ctx, &b, query, id)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

// MarkCancelled transitions a confirmed booking to the given terminal
// status. The status guard makes concurrent double-cancellation a no-op
// for the loser.
func (r *repository) MarkCancelled(ctx context.Context, id int, status string, cancelledAt time.Time) error {
	query := `
		UPDATE bookings
		SET status = $2, cancelled_at = $3
		WHERE id = $1 AND status = 'confirmed'
	`

	result, err := r.db.ExecContext(ctx, query, id, status, cancelledAt)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrBookingNotFoundOrAlreadyCancelled
	}

	return nil
}

func (r *repository) IsSlotBooked(ctx context.Context, studioID int, date time.Time, startTime string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE studio_id = $1
			  AND slot_date = $2
			  AND start_time = $3
			  AND status NOT IN ('cancelled', 'cancelled_late')
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, studioID, date.Format("2006-01-02"), startTime)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) CountMonthlyBookings(ctx context.Context, userID int, monthStart, monthEnd time.Time) (int, error) {
	// cancelled_late stays in the count: a forfeited slot still consumes
	// its hours for the month.
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE user_id = $1
		  AND slot_date BETWEEN $2 AND $3
		  AND status <> 'cancelled'
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID, monthStart.Format("2006-01-02"), monthEnd.Format("2006-01-02"))
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *repository) GetUserBookings(ctx context.Context, userID int) ([]BookingWithDetails, error) {
	query := `
		SELECT ` + detailColumns + `
		FROM bookings b
		JOIN studios s ON b.studio_id = s.id
		JOIN users u ON b.user_id = u.id
		WHERE b.user_id = $1
		ORDER BY b.slot_date DESC, b.start_time DESC
	`

	var bookings []BookingWithDetails
	err := r.db.SelectContext(ctx, &bookings, query, userID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) GetBookingsByStudio(ctx context.Context, studioID int) ([]BookingWithDetails, error) {
	query := `
		SELECT ` + detailColumns + `
		FROM bookings b
		JOIN studios s ON b.studio_id = s.id
		JOIN users u ON b.user_id = u.id
		WHERE b.studio_id = $1
		ORDER BY b.slot_date DESC, b.start_time DESC
	`

	var bookings []BookingWithDetails
	err := r.db.SelectContext(ctx, &bookings, query, studioID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}
