package booking

import "time"

const (
	StatusConfirmed     = "confirmed"
	StatusCancelled     = "cancelled"
	StatusCancelledLate = "cancelled_late"
)

type Booking struct {
	ID          int        `db:"id" json:"id"`
	UserID      int        `db:"user_id" json:"user_id"`
	StudioID    int        `db:"studio_id" json:"studio_id"`
	SlotDate    time.Time  `db:"slot_date" json:"slot_date"`
	StartTime   string     `db:"start_time" json:"start_time"`
	EndTime     string     `db:"end_time" json:"end_time"`
	Status      string     `db:"status" json:"status"`
	Purpose     *string    `db:"purpose" json:"purpose,omitempty"`
	CancelledAt *time.Time `db:"cancelled_at" json:"cancelled_at,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

type BookingWithDetails struct {
	Booking
	StudioName     string `db:"studio_name" json:"studio_name"`
	StudioLocation string `db:"studio_location" json:"studio_location"`
	UserName       string `db:"user_name" json:"user_name"`
	UserEmail      string `db:"user_email" json:"user_email"`
}

type BookSlotRequest struct {
	StudioID  int    `json:"studio_id" binding:"required"`
	Date      string `json:"date" binding:"required,datetime=2006-01-02" example:"2025-06-16"`
	StartTime string `json:"start_time" binding:"required" example:"09:00"`
	Purpose   string `json:"purpose"`
}

// CancellationResult is the full outcome of a cancellation decision,
// including the strike ledger state after any escalation.
type CancellationResult struct {
	BookingID        int        `json:"booking_id"`
	Status           string     `json:"status"`
	HoursRestored    bool       `json:"hours_restored"`
	StrikeIssued     bool       `json:"strike_issued"`
	StrikeCountAfter int        `json:"strike_count_after"`
	SuspendedUntil   *time.Time `json:"suspended_until,omitempty"`
}

// Allocation explains a member's monthly studio-hour budget.
type Allocation struct {
	Tier           string `json:"tier"`
	MonthlyHours   int    `json:"monthly_hours"`
	HoursUsed      int    `json:"hours_used"`
	HoursRemaining int    `json:"hours_remaining"`
	Month          string `json:"month" example:"2025-06"`
}
