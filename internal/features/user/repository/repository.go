package repository

import (
	"context"
	"errors"

	"pixigpt-bot/internal/features/user/models"
)

// ErrUserNotFound is returned when no record exists for the requested user.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the record-store contract the core depends on.
//
// Merge applies only the given fields and leaves others untouched. Increment and
// SetReferrerIfAbsent must be atomic at the store: counters are never mutated via
// read-then-write round trips, and a referrer link is set at most once.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.UserRecord, error)

	// CreateIfAbsent writes the initial record unless one already exists.
	// Returns true when the record was created by this call.
	CreateIfAbsent(ctx context.Context, rec *models.UserRecord) (bool, error)

	Merge(ctx context.Context, id int64, fields map[string]interface{}) error

	// Increment atomically adds delta to a numeric field.
	Increment(ctx context.Context, id int64, field string, delta int64) error

	// SetReferrerIfAbsent sets referred_by_id unless it is already populated
	// (first-referrer-wins). Returns true when this call set it.
	SetReferrerIfAbsent(ctx context.Context, id, referrerID int64) (bool, error)

	FindByReferralCode(ctx context.Context, code string) (*models.UserRecord, error)
}
