package studio

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// BookedSlot is a start time occupied on a given studio day, with the
// holder's id so schedules can mark the requester's own bookings.
type BookedSlot struct {
	StartTime string `db:"start_time"`
	UserID    int    `db:"user_id"`
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateStudio(ctx context.Context, name, location string) (*Studio, error) {
	query := `
		INSERT INTO studios (name, location)
		VALUES ($1, $2)
		RETURNING id, name, location, created_at
	`

	var s Studio
	err := r.db.GetContext(ctx, &s, query, name, location)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) GetAllStudios(ctx context.Context) ([]Studio, error) {
	query := `
		SELECT id, name, location, created_at
		FROM studios
		ORDER BY name
	`

	var studios []Studio
	err := r.db.SelectContext(ctx, &studios, query)
	if err != nil {
		return nil, err
	}

	return studios, nil
}

func (r *repository) GetStudioByID(ctx context.Context, id int) (*Studio, error) {
	query := `
		SELECT id, name, location, created_at
		FROM studios
		WHERE id = $1
	`

	var s Studio
	err := r.db.GetContext(ctx, &s, query, id)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) GetBookedSlots(ctx context.Context, studioID int, date time.Time) ([]BookedSlot, error) {
	query := `
		SELECT start_time, user_id
		FROM bookings
		WHERE studio_id = $1
		  AND slot_date = $2
		  AND status NOT IN ('cancelled', 'cancelled_late')
	`

	var slots []BookedSlot
	err := r.db.SelectContext(ctx, &slots, query, studioID, date.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}

	return slots, nil
}
