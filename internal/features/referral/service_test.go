package referral_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "pixigpt-bot/internal/common/errors"
	"pixigpt-bot/internal/features/referral"
	"pixigpt-bot/internal/features/user/models"
	"pixigpt-bot/internal/features/user/repository/memory"
)

const award = 2

func seed(t *testing.T, repo *memory.UserRepository, id int64) *models.UserRecord {
	t.Helper()
	rec := models.NewUserRecord(id, "tester", "2025-06-10")
	created, err := repo.CreateIfAbsent(context.Background(), rec)
	require.NoError(t, err)
	require.True(t, created)
	return rec
}

func TestAttributeAwardsReferrerOnce(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := referral.NewService(repo, award)
	referrer := seed(t, repo, 100)
	seed(t, repo, 200)

	res, err := svc.Attribute(context.Background(), 200, referrer.ReferralCode)
	require.NoError(t, err)
	assert.Equal(t, referral.Applied, res.Outcome)
	assert.Equal(t, int64(100), res.ReferrerID)

	// Duplicate deep-link: no second award.
	res, err = svc.Attribute(context.Background(), 200, referrer.ReferralCode)
	require.NoError(t, err)
	assert.Equal(t, referral.SkippedAlreadyReferred, res.Outcome)

	got, err := repo.GetByID(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, int64(award), got.ReferralPoints)
}

func TestAttributeFirstReferrerWins(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := referral.NewService(repo, award)
	first := seed(t, repo, 100)
	second := seed(t, repo, 101)
	seed(t, repo, 200)

	res, err := svc.Attribute(context.Background(), 200, first.ReferralCode)
	require.NoError(t, err)
	require.Equal(t, referral.Applied, res.Outcome)

	res, err = svc.Attribute(context.Background(), 200, second.ReferralCode)
	require.NoError(t, err)
	assert.Equal(t, referral.SkippedAlreadyReferred, res.Outcome)

	got, err := repo.GetByID(context.Background(), 200)
	require.NoError(t, err)
	require.NotNil(t, got.ReferredByID)
	assert.Equal(t, int64(100), *got.ReferredByID)

	got, err = repo.GetByID(context.Background(), 101)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.ReferralPoints)
}

func TestAttributeSelfReferral(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := referral.NewService(repo, award)
	rec := seed(t, repo, 100)

	res, err := svc.Attribute(context.Background(), 100, rec.ReferralCode)
	require.NoError(t, err)
	assert.Equal(t, referral.SkippedSelfReferral, res.Outcome)

	got, err := repo.GetByID(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.ReferralPoints)
	assert.Nil(t, got.ReferredByID)
}

func TestAttributeUnknownCode(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := referral.NewService(repo, award)
	seed(t, repo, 200)

	res, err := svc.Attribute(context.Background(), 200, "REF999999")
	require.NoError(t, err)
	assert.Equal(t, referral.SkippedUnknownCode, res.Outcome)
}

func TestAttributeMissingNewUser(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := referral.NewService(repo, award)
	referrer := seed(t, repo, 100)

	_, err := svc.Attribute(context.Background(), 999, referrer.ReferralCode)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeUserNotFound, appErr.Code)
}

func TestAttributeConcurrentNewUsers(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := referral.NewService(repo, award)
	referrer := seed(t, repo, 100)

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		id := int64(1000 + i)
		seed(t, repo, id)
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := svc.Attribute(context.Background(), id, referrer.ReferralCode)
			assert.NoError(t, err)
			assert.Equal(t, referral.Applied, res.Outcome)
		}()
	}
	wg.Wait()

	got, err := repo.GetByID(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, int64(n*award), got.ReferralPoints)
}
