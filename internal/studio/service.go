package studio

import (
	"context"
	"errors"
	"time"

	"studiobook/internal/clock"
)

var (
	ErrStudioNotFound = errors.New("studio not found")
	ErrInvalidDate    = errors.New("invalid date")
)

type Service interface {
	CreateStudio(ctx context.Context, req CreateStudioRequest) (*Studio, error)
	GetAllStudios(ctx context.Context) ([]Studio, error)
	GetStudioByID(ctx context.Context, id int) (*Studio, error)
	GetDaySchedule(ctx context.Context, studioID, userID int, date string) (*DaySchedule, error)
}

type service struct {
	repo Repository
	clk  clock.Clock
}

func NewService(repo Repository, clk clock.Clock) Service {
	return &service{
		repo: repo,
		clk:  clk,
	}
}

func (s *service) CreateStudio(ctx context.Context, req CreateStudioRequest) (*Studio, error) {
	return s.repo.CreateStudio(ctx, req.Name, req.Location)
}

func (s *service) GetAllStudios(ctx context.Context) ([]Studio, error) {
	return s.repo.GetAllStudios(ctx)
}

func (s *service) GetStudioByID(ctx context.Context, id int) (*Studio, error) {
	st, err := s.repo.GetStudioByID(ctx, id)
	if err != nil {
		return nil, ErrStudioNotFound
	}
	return st, nil
}

func (s *service) GetDaySchedule(ctx context.Context, studioID, userID int, date string) (*DaySchedule, error) {
	if _, err := s.repo.GetStudioByID(ctx, studioID); err != nil {
		return nil, ErrStudioNotFound
	}

	day, err := time.ParseInLocation("2006-01-02", date, s.clk.Location())
	if err != nil {
		return nil, ErrInvalidDate
	}

	sched := &DaySchedule{
		StudioID: studioID,
		Date:     date,
	}

	if IsClosedDay(day) {
		sched.Closed = true
		return sched, nil
	}

	booked, err := s.repo.GetBookedSlots(ctx, studioID, day)
	if err != nil {
		return nil, err
	}

	byStart := make(map[string]BookedSlot, len(booked))
	for _, b := range booked {
		byStart[b.StartTime] = b
	}

	sched.Slots = make([]SlotAvailability, 0, len(Grid))
	for _, slot := range Grid {
		sa := SlotAvailability{Slot: slot}
		if b, ok := byStart[slot.Start]; ok {
			sa.Taken = true
			sa.Mine = b.UserID == userID
		}
		sched.Slots = append(sched.Slots, sa)
	}

	return sched, nil
}
