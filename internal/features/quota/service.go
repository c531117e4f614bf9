package quota

import (
	"context"
	"time"

	apperrors "pixigpt-bot/internal/common/errors"
	"pixigpt-bot/internal/features/user/models"
	"pixigpt-bot/internal/features/user/repository"
)

// Service evaluates and consumes per-user daily message quota.
//
// All counter mutations go through the repository's atomic increment; the
// service never writes back a count it computed from a read. The date-rollover
// reset is a separate idempotent merge, persisted before the allow outcome is
// acted on, so a handler cancelled mid-flight leaves the record consistent.
type Service struct {
	repo   repository.UserRepository
	limits Limits
	now    func() time.Time
}

func NewService(repo repository.UserRepository, limits Limits) *Service {
	return &Service{repo: repo, limits: limits, now: time.Now}
}

// WithClock overrides the time source. Tests only.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Consume decides whether the user may send a message right now and, when
// allowed, records the send. Denial is a normal outcome, not an error.
func (s *Service) Consume(ctx context.Context, userID int64) (Decision, error) {
	return s.evaluate(ctx, userID, true)
}

// Usage reports the user's effective usage for today without consuming quota.
// A pending date rollover is still persisted, matching Consume.
func (s *Service) Usage(ctx context.Context, userID int64) (Decision, error) {
	d, err := s.evaluate(ctx, userID, false)
	if err != nil {
		return d, err
	}
	// Usage reports the current count, not a prospective send.
	if d.Allowed {
		d.Used--
	}
	return d, nil
}

func (s *Service) evaluate(ctx context.Context, userID int64, consume bool) (Decision, error) {
	rec, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return Decision{}, apperrors.NewUserNotFoundError(userID)
		}
		return Decision{}, apperrors.NewStorageError("get user", err).WithUserID(userID)
	}

	today := Today(s.now())
	d := s.limits.Evaluate(rec, today)

	// The rollover correction is not a reward for sending; it is persisted
	// even when the message ends up denied.
	if d.NeedsReset {
		err := s.repo.Merge(ctx, userID, map[string]interface{}{
			models.FieldDailyMessageCount: int64(0),
			models.FieldLastMessageDate:   today,
		})
		if err != nil {
			return Decision{}, apperrors.NewStorageError("reset daily count", err).WithUserID(userID)
		}
	}

	if consume && d.Allowed {
		if err := s.repo.Increment(ctx, userID, models.FieldDailyMessageCount, 1); err != nil {
			return Decision{}, apperrors.NewStorageError("increment daily count", err).WithUserID(userID)
		}
	}

	return d, nil
}
