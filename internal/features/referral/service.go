package referral

import (
	"context"

	apperrors "pixigpt-bot/internal/common/errors"
	"pixigpt-bot/internal/features/user/models"
	"pixigpt-bot/internal/features/user/repository"
)

// Outcome classifies the result of a referral attribution attempt.
type Outcome int

const (
	Applied Outcome = iota
	SkippedUnknownCode
	SkippedSelfReferral
	SkippedAlreadyReferred
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case SkippedUnknownCode:
		return "skipped_unknown_code"
	case SkippedSelfReferral:
		return "skipped_self_referral"
	case SkippedAlreadyReferred:
		return "skipped_already_referred"
	default:
		return "unknown"
	}
}

// Result carries the attribution outcome and, when applied, the referrer.
type Result struct {
	Outcome    Outcome
	ReferrerID int64
}

// Service performs the one-time linkage of a new user to a referrer code.
type Service struct {
	repo  repository.UserRepository
	award int64
}

func NewService(repo repository.UserRepository, award int64) *Service {
	return &Service{repo: repo, award: award}
}

// Attribute links the new user to the owner of code and awards the referrer.
//
// The operation is idempotent: a user with referred_by_id already set is
// skipped, so a duplicate /start deep-link never double-awards. The point
// award is an atomic field increment, so concurrent attributions against the
// same referrer all land.
func (s *Service) Attribute(ctx context.Context, newUserID int64, code string) (Result, error) {
	referrer, err := s.repo.FindByReferralCode(ctx, code)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return Result{Outcome: SkippedUnknownCode}, nil
		}
		return Result{}, apperrors.NewStorageError("resolve referral code", err)
	}

	if referrer.ID == newUserID {
		return Result{Outcome: SkippedSelfReferral}, nil
	}

	applied, err := s.repo.SetReferrerIfAbsent(ctx, newUserID, referrer.ID)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return Result{}, apperrors.NewUserNotFoundError(newUserID)
		}
		return Result{}, apperrors.NewStorageError("set referrer", err).WithUserID(newUserID)
	}
	if !applied {
		return Result{Outcome: SkippedAlreadyReferred, ReferrerID: referrer.ID}, nil
	}

	if err := s.repo.Increment(ctx, referrer.ID, models.FieldReferralPoints, s.award); err != nil {
		return Result{}, apperrors.NewStorageError("award referral points", err).WithUserID(referrer.ID)
	}

	return Result{Outcome: Applied, ReferrerID: referrer.ID}, nil
}
