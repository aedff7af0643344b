package user

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, name, email, passwordHash, role, tier string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)

	// Strike ledger writes, consumed by the booking policy engine.
	RecordLateCancellationStrike(ctx context.Context, userID int) (int, error)
	SetBookingSuspension(ctx context.Context, userID int, until time.Time) error
}
