package booking

import (
	"context"
	"errors"
	"time"

	"studiobook/internal/clock"
	"studiobook/internal/logger"
	"studiobook/internal/membership"
	"studiobook/internal/metrics"
	"studiobook/internal/studio"
	"studiobook/internal/user"
)

const (
	// Cancelling this far ahead restores the slot's hours.
	fullRestoreThreshold = 24 * time.Hour
	// Cancelling closer than this to the start issues a strike.
	strikeThreshold = 6 * time.Hour

	suspensionDays = 7
)

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrNotOwner         = errors.New("can only cancel own bookings")
	ErrAlreadyCancelled = errors.New("booking already cancelled")

	ErrClosedSunday = errors.New("studio closed on Sundays")
	ErrSlotTaken    = errors.New("slot already booked")
	ErrPastDate     = errors.New("cannot book a past date")
	ErrSuspended    = errors.New("booking privileges suspended")
	ErrNoHoursLeft  = errors.New("no studio hours left this month")
	ErrInvalidSlot  = errors.New("not a valid slot start time")
	ErrInvalidDate  = errors.New("invalid date")
)

// CalendarSync is the best-effort external calendar feed. Callers never
// wait on it and never see its failures.
type CalendarSync interface {
	EnqueueCreate(ctx context.Context, b *Booking, studioName string) error
	EnqueueDelete(ctx context.Context, bookingID int) error
}

type Service interface {
	RequestBooking(ctx context.Context, userID int, req BookSlotRequest) (*Booking, error)
	RequestCancellation(ctx context.Context, userID, bookingID int) (*CancellationResult, error)
	GetUserBookings(ctx context.Context, userID int) ([]BookingWithDetails, error)
	GetBookingsByStudio(ctx context.Context, studioID int) ([]BookingWithDetails, error)
	GetAllocation(ctx context.Context, userID int) (*Allocation, error)
	StatsByDay(ctx context.Context, from, to time.Time) ([]BookingStatsByBucket, error)
	StatsByStudio(ctx context.Context, from, to time.Time) ([]BookingStatsByStudio, error)
}

type service struct {
	repo       Repository
	studioRepo studio.Repository
	userRepo   user.Repository
	calendar   CalendarSync
	clk        clock.Clock
}

func NewService(
	repo Repository,
	studioRepo studio.Repository,
	userRepo user.Repository,
	calendar CalendarSync,
	clk clock.Clock,
) Service {
	return &service{
		repo:       repo,
		studioRepo: studioRepo,
		userRepo:   userRepo,
		calendar:   calendar,
		clk:        clk,
	}
}

// RequestBooking gates a booking attempt through the policy checks in a
// fixed order, rejecting on the first failure: closed day, slot conflict,
// past date, suspension, monthly allocation.
func (s *service) RequestBooking(ctx context.Context, userID int, req BookSlotRequest) (*Booking, error) {
	slot, ok := studio.SlotByStart(req.StartTime)
	if !ok {
		return nil, ErrInvalidSlot
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, s.clk.Location())
	if err != nil {
		return nil, ErrInvalidDate
	}

	st, err := s.studioRepo.GetStudioByID(ctx, req.StudioID)
	if err != nil {
		return nil, studio.ErrStudioNotFound
	}

	if studio.IsClosedDay(date) {
		metrics.RecordBookingDecision("closed_sunday")
		return nil, ErrClosedSunday
	}

	booked, err := s.repo.IsSlotBooked(ctx, req.StudioID, date, slot.Start)
	if err != nil {
		return nil, err
	}
	if booked {
		metrics.RecordBookingDecision("slot_taken")
		return nil, ErrSlotTaken
	}

	now := s.clk.Now()
	if date.Before(clock.StartOfDay(now)) {
		metrics.RecordBookingDecision("past_date")
		return nil, ErrPastDate
	}

	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if u.BookingSuspendedUntil != nil && u.BookingSuspendedUntil.After(now) {
		metrics.RecordBookingDecision("suspended")
		return nil, ErrSuspended
	}

	monthStart, monthEnd := clock.MonthBounds(now)
	count, err := s.repo.CountMonthlyBookings(ctx, userID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	remaining := u.Tier.MonthlyHours() - membership.SlotHours*count
	if remaining < membership.SlotHours {
		metrics.RecordBookingDecision("no_hours_left")
		return nil, ErrNoHoursLeft
	}

	b, err := s.repo.CreateBooking(ctx, userID, req.StudioID, date, slot.Start, slot.End, req.Purpose)
	if err != nil {
		// The unique index catches the read-then-write race between two
		// concurrent requests for the same slot.
		if errors.Is(err, ErrSlotConflict) {
			metrics.RecordBookingDecision("slot_taken")
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	metrics.RecordBookingDecision("accepted")
	s.syncCalendar(ctx, func(syncCtx context.Context) error {
		return s.calendar.EnqueueCreate(syncCtx, b, st.Name)
	})

	return b, nil
}

// RequestCancellation decides the outcome purely from the time remaining
// until the booking starts, in the studio's civil timezone:
//
//	>= 24h  cancelled, hours restored
//	6..24h  cancelled_late, hours forfeited
//	< 6h    cancelled_late, hours forfeited, strike issued
func (s *service) RequestCancellation(ctx context.Context, userID, bookingID int) (*CancellationResult, error) {
	b, err := s.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	if b.UserID != userID {
		return nil, ErrNotOwner
	}

	if b.Status != StatusConfirmed {
		return nil, ErrAlreadyCancelled
	}

	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.clk.Now()
	start := studio.SlotStart(b.SlotDate, b.StartTime, s.clk.Location())
	untilStart := start.Sub(now)

	res := &CancellationResult{
		BookingID:        b.ID,
		StrikeCountAfter: u.LateCancellationStrikes,
	}

	switch {
	case untilStart >= fullRestoreThreshold:
		res.Status = StatusCancelled
		res.HoursRestored = true
	case untilStart >= strikeThreshold:
		res.Status = StatusCancelledLate
	default:
		res.Status = StatusCancelledLate
		res.StrikeIssued = true
	}

	if err := s.repo.MarkCancelled(ctx, b.ID, res.Status, now); err != nil {
		if errors.Is(err, ErrBookingNotFoundOrAlreadyCancelled) {
			return nil, ErrAlreadyCancelled
		}
		return nil, err
	}
	metrics.RecordCancellation(res.Status)

	if res.StrikeIssued {
		s.applyStrike(ctx, userID, now, res)
	}

	s.syncCalendar(ctx, func(syncCtx context.Context) error {
		return s.calendar.EnqueueDelete(syncCtx, b.ID)
	})

	return res, nil
}

// applyStrike is the second, independent write of a late cancellation. A
// failure here leaves the booking cancelled with the strike unrecorded;
// that window is an accepted part of the design, so errors are logged and
// the cancellation outcome stands.
func (s *service) applyStrike(ctx context.Context, userID int, now time.Time, res *CancellationResult) {
	count, err := s.userRepo.RecordLateCancellationStrike(ctx, userID)
	if err != nil {
		logger.Errorf("failed to record strike for user %d: %v", userID, err)
		return
	}

	res.StrikeCountAfter = count
	metrics.RecordStrike()

	var until time.Time
	var window string
	switch {
	case count >= 3:
		until = clock.EndOfMonth(now)
		window = "month_end"
	case count == 2:
		until = now.AddDate(0, 0, suspensionDays)
		window = "seven_days"
	default:
		// First strike is a warning only.
		return
	}

	if err := s.userRepo.SetBookingSuspension(ctx, userID, until); err != nil {
		logger.Errorf("failed to suspend user %d: %v", userID, err)
		return
	}

	res.SuspendedUntil = &until
	metrics.RecordSuspension(window)
}

// syncCalendar fires a best-effort calendar update. It is never awaited
// and its failure is swallowed.
func (s *service) syncCalendar(ctx context.Context, fn func(context.Context) error) {
	if s.calendar == nil {
		return
	}
	go func(syncCtx context.Context) {
		if err := fn(syncCtx); err != nil {
			logger.Debugf("calendar sync skipped: %v", err)
		}
	}(context.WithoutCancel(ctx))
}

func (s *service) GetUserBookings(ctx context.Context, userID int) ([]BookingWithDetails, error) {
	return s.repo.GetUserBookings(ctx, userID)
}

func (s *service) GetBookingsByStudio(ctx context.Context, studioID int) ([]BookingWithDetails, error) {
	return s.repo.GetBookingsByStudio(ctx, studioID)
}

// GetAllocation recomputes the member's monthly budget from the booking
// count; there is no stored balance to drift.
func (s *service) GetAllocation(ctx context.Context, userID int) (*Allocation, error) {
	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.clk.Now()
	monthStart, monthEnd := clock.MonthBounds(now)
	count, err := s.repo.CountMonthlyBookings(ctx, userID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	used := membership.SlotHours * count
	return &Allocation{
		Tier:           string(u.Tier),
		MonthlyHours:   u.Tier.MonthlyHours(),
		HoursUsed:      used,
		HoursRemaining: u.Tier.MonthlyHours() - used,
		Month:          now.Format("2006-01"),
	}, nil
}

func (s *service) StatsByDay(ctx context.Context, from, to time.Time) ([]BookingStatsByBucket, error) {
	return s.repo.GetBookingStatsByDay(ctx, from, to)
}

func (s *service) StatsByStudio(ctx context.Context, from, to time.Time) ([]BookingStatsByStudio, error) {
	return s.repo.GetBookingStatsByStudio(ctx, from, to)
}
