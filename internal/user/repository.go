package user

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

const userColumns = `id, name, email, password_hash, role, tier, late_cancellation_strikes, booking_suspended_until, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, name, email, passwordHash, role, tier string) (*User, error) {
	query := `
		INSERT INTO users (name, email, password_hash, role, tier)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns

	var u User
	err := r.db.GetContext(ctx, &u, query, name, email, passwordHash, role, tier)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`

	var u User
	err := r.db.GetContext(ctx, &u, query, email)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`

	var u User
	err := r.db.GetContext(ctx, &u, query, id)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM users WHERE email = $1
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, email)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) RecordLateCancellationStrike(ctx context.Context, userID int) (int, error) {
	query := `
		UPDATE users
		SET late_cancellation_strikes = late_cancellation_strikes + 1
		WHERE id = $1
		RETURNING late_cancellation_strikes
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *repository) SetBookingSuspension(ctx context.Context, userID int, until time.Time) error {
	query := `
		UPDATE users
		SET booking_suspended_until = $2
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, userID, until)
	return err
}
