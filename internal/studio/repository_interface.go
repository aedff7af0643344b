package studio

import (
	"context"
	"time"
)

type Repository interface {
	CreateStudio(ctx context.Context, name, location string) (*Studio, error)
	GetAllStudios(ctx context.Context) ([]Studio, error)
	GetStudioByID(ctx context.Context, id int) (*Studio, error)
	GetBookedSlots(ctx context.Context, studioID int, date time.Time) ([]BookedSlot, error)
}
