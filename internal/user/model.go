package user

import (
	"time"

	"studiobook/internal/membership"
)

type User struct {
	ID           int             `db:"id" json:"id"`
	Name         string          `db:"name" json:"name"`
	Email        string          `db:"email" json:"email"`
	PasswordHash string          `db:"password_hash" json:"-"`
	Role         string          `db:"role" json:"role"`
	Tier         membership.Tier `db:"tier" json:"tier"`

	// Strike ledger. The counter only ever goes up; the suspension
	// timestamp is only ever set, expiry is checked against "now" at
	// read time.
	LateCancellationStrikes int        `db:"late_cancellation_strikes" json:"late_cancellation_strikes"`
	BookingSuspendedUntil   *time.Time `db:"booking_suspended_until" json:"booking_suspended_until,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Tier     string `json:"tier" binding:"omitempty,oneof=creator professional executive"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
