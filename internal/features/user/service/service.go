package service

import (
	"context"
	"fmt"
	"time"

	apperrors "pixigpt-bot/internal/common/errors"
	"pixigpt-bot/internal/common/logger"
	"pixigpt-bot/internal/features/quota"
	"pixigpt-bot/internal/features/user/models"
	"pixigpt-bot/internal/features/user/repository"
	"pixigpt-bot/internal/i18n"
)

// AccountView is the assembled account summary shown to the user, with the
// lazy daily reset already applied to the usage numbers.
type AccountView struct {
	DisplayName    string          `json:"display_name"`
	Language       i18n.Language   `json:"language"`
	PlanTier       models.PlanTier `json:"plan_tier"`
	Used           int64           `json:"used"`
	Limit          int64           `json:"limit"`
	Unlimited      bool            `json:"unlimited"`
	ReferralCode   string          `json:"referral_code"`
	ReferralPoints int64           `json:"referral_points"`
}

// UserService manages user records: first-contact creation, language
// preference, and the account view.
type UserService struct {
	repo  repository.UserRepository
	quota *quota.Service
	now   func() time.Time
}

func NewUserService(repo repository.UserRepository, quotaSvc *quota.Service) *UserService {
	return &UserService{repo: repo, quota: quotaSvc, now: time.Now}
}

// EnsureUser creates the record at first contact and returns the current
// record either way. Creation is idempotent.
func (s *UserService) EnsureUser(ctx context.Context, userID int64, displayName string) (*models.UserRecord, error) {
	initial := models.NewUserRecord(userID, displayName, quota.Today(s.now()))

	created, err := s.repo.CreateIfAbsent(ctx, initial)
	if err != nil {
		return nil, apperrors.NewStorageError("create user", err).WithUserID(userID)
	}
	if created {
		logger.Info().Int64("user_id", userID).Msg("User record created")
		return initial, nil
	}

	rec, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperrors.NewStorageError("get user", err).WithUserID(userID)
	}
	return rec, nil
}

// Get returns the user record, or USER_NOT_FOUND.
func (s *UserService) Get(ctx context.Context, userID int64) (*models.UserRecord, error) {
	rec, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return nil, apperrors.NewUserNotFoundError(userID)
		}
		return nil, apperrors.NewStorageError("get user", err).WithUserID(userID)
	}
	return rec, nil
}

// SetLanguage persists the user's language preference. Unrecognized codes are
// normalized to the baseline language before storing.
func (s *UserService) SetLanguage(ctx context.Context, userID int64, code string) (i18n.Language, error) {
	lang := i18n.Resolve(code)
	err := s.repo.Merge(ctx, userID, map[string]interface{}{
		models.FieldLanguage: string(lang),
	})
	if err != nil {
		return lang, apperrors.NewStorageError("set language", err).WithUserID(userID)
	}
	return lang, nil
}

// Account assembles the account view. Reading usage goes through the quota
// service so a pending date rollover is corrected before display.
func (s *UserService) Account(ctx context.Context, userID int64) (*AccountView, error) {
	rec, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	d, err := s.quota.Usage(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &AccountView{
		DisplayName:    rec.DisplayName,
		Language:       i18n.Resolve(rec.Language),
		PlanTier:       rec.PlanTier,
		Used:           d.Used,
		Limit:          d.Limit,
		Unlimited:      d.Unlimited,
		ReferralCode:   rec.ReferralCode,
		ReferralPoints: rec.ReferralPoints,
	}, nil
}

// ReferralLink builds the deep link that attributes new users to code.
func ReferralLink(botUsername, code string) string {
	return fmt.Sprintf("https://t.me/%s?start=%s", botUsername, code)
}
