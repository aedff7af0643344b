package booking

import (
	"context"
	"time"
)

type Repository interface {
	CreateBooking(ctx context.Context, userID, studioID int, date time.Time, startTime, endTime, purpose string) (*Booking, error)
	GetBookingByID(ctx context.Context, id int) (*Booking, error)
	MarkCancelled(ctx context.Context, id int, status string, cancelledAt time.Time) error
	IsSlotBooked(ctx context.Context, studioID int, date time.Time, startTime string) (bool, error)
	CountMonthlyBookings(ctx context.Context, userID int, monthStart, monthEnd time.Time) (int, error)
	GetUserBookings(ctx context.Context, userID int) ([]BookingWithDetails, error)
	GetBookingsByStudio(ctx context.Context, studioID int) ([]BookingWithDetails, error)
	GetBookingStatsByDay(ctx context.Context, from, to time.Time) ([]BookingStatsByBucket, error)
	GetBookingStatsByStudio(ctx context.Context, from, to time.Time) ([]BookingStatsByStudio, error)
}
