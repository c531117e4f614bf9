package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixigpt-bot/internal/features/user/models"
	"pixigpt-bot/internal/features/user/repository"
)

func TestCreateIfAbsent(t *testing.T) {
	repo := NewUserRepository()
	rec := models.NewUserRecord(1, "Alice", "2025-06-10")

	created, err := repo.CreateIfAbsent(context.Background(), rec)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.CreateIfAbsent(context.Background(), models.NewUserRecord(1, "Other", "2025-06-10"))
	require.NoError(t, err)
	assert.False(t, created)

	got, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.DisplayName)
}

func TestGetByIDUnknown(t *testing.T) {
	repo := NewUserRepository()

	_, err := repo.GetByID(context.Background(), 404)
	assert.Equal(t, repository.ErrUserNotFound, err)
}

func TestGetByIDReturnsCopy(t *testing.T) {
	repo := NewUserRepository()
	_, err := repo.CreateIfAbsent(context.Background(), models.NewUserRecord(1, "Alice", "2025-06-10"))
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	got.DisplayName = "mutated"

	again, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Alice", again.DisplayName)
}

func TestConcurrentIncrementsAreNotLost(t *testing.T) {
	repo := NewUserRepository()
	_, err := repo.CreateIfAbsent(context.Background(), models.NewUserRecord(1, "Alice", "2025-06-10"))
	require.NoError(t, err)

	const n = 200
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.Increment(context.Background(), 1, models.FieldDailyMessageCount, 1))
		}()
	}
	wg.Wait()

	got, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(n), got.DailyMessageCount)
}

func TestSetReferrerIfAbsentAppliesOnce(t *testing.T) {
	repo := NewUserRepository()
	_, err := repo.CreateIfAbsent(context.Background(), models.NewUserRecord(1, "Alice", "2025-06-10"))
	require.NoError(t, err)

	applied, err := repo.SetReferrerIfAbsent(context.Background(), 1, 100)
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = repo.SetReferrerIfAbsent(context.Background(), 1, 101)
	require.NoError(t, err)
	assert.False(t, applied)

	got, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, got.ReferredByID)
	assert.Equal(t, int64(100), *got.ReferredByID)
}

func TestFindByReferralCode(t *testing.T) {
	repo := NewUserRepository()
	_, err := repo.CreateIfAbsent(context.Background(), models.NewUserRecord(7, "Alice", "2025-06-10"))
	require.NoError(t, err)

	got, err := repo.FindByReferralCode(context.Background(), models.ReferralCodeFor(7))
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)

	_, err = repo.FindByReferralCode(context.Background(), "REF999")
	assert.Equal(t, repository.ErrUserNotFound, err)
}

func TestMergeCreatesAndUpdates(t *testing.T) {
	repo := NewUserRepository()
	_, err := repo.CreateIfAbsent(context.Background(), models.NewUserRecord(1, "Alice", "2025-06-10"))
	require.NoError(t, err)

	err = repo.Merge(context.Background(), 1, map[string]interface{}{
		models.FieldDailyMessageCount: int64(0),
		models.FieldLastMessageDate:   "2025-06-11",
		models.FieldLanguage:          "es",
	})
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.DailyMessageCount)
	assert.Equal(t, "2025-06-11", got.LastMessageDate)
	assert.Equal(t, "es", got.Language)
}
