package cached_test

import (
	"context"
	"sync"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixigpt-bot/internal/features/user/models"
	"pixigpt-bot/internal/features/user/repository"
	"pixigpt-bot/internal/features/user/repository/cached"
	"pixigpt-bot/internal/features/user/repository/memory"
)

// fakeCache is an in-memory stand-in for the Redis user cache. A miss is
// reported as redis.Nil, matching the real client. The onInvalidate hook runs
// right after the entry is dropped, inside the repopulation window, so tests
// can interleave a reader with the write path.
type fakeCache struct {
	mu           sync.Mutex
	entries      map[int64]models.UserRecord
	onInvalidate func(id int64)
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[int64]models.UserRecord)}
}

func (c *fakeCache) GetByID(ctx context.Context, id int64) (*models.UserRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, ok := c.entries[id]
	if !ok {
		return nil, goredis.Nil
	}
	cp := rec
	return &cp, nil
}

func (c *fakeCache) Set(ctx context.Context, rec *models.UserRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[rec.ID] = *rec
	return nil
}

func (c *fakeCache) Invalidate(ctx context.Context, id int64) error {
	c.mu.Lock()
	delete(c.entries, id)
	c.mu.Unlock()

	if c.onInvalidate != nil {
		c.onInvalidate(id)
	}
	return nil
}

func (c *fakeCache) entry(id int64) (models.UserRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok := c.entries[id]
	return rec, ok
}

func seedUser(t *testing.T, inner *memory.UserRepository, id, count int64) {
	t.Helper()
	rec := models.NewUserRecord(id, "tester", "2025-06-10")
	rec.DailyMessageCount = count
	created, err := inner.CreateIfAbsent(context.Background(), rec)
	require.NoError(t, err)
	require.True(t, created)
}

func TestGetByIDPopulatesCache(t *testing.T) {
	inner := memory.NewUserRepository()
	cache := newFakeCache()
	repo := cached.NewUserRepository(inner, cache)
	seedUser(t, inner, 1, 3)

	rec, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), rec.DailyMessageCount)

	entry, ok := cache.entry(1)
	require.True(t, ok)
	assert.Equal(t, int64(3), entry.DailyMessageCount)
}

func TestGetByIDServesFromCache(t *testing.T) {
	inner := memory.NewUserRepository()
	cache := newFakeCache()
	repo := cached.NewUserRepository(inner, cache)
	seedUser(t, inner, 1, 3)

	_, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)

	// A direct store mutation is invisible until the entry is invalidated.
	require.NoError(t, inner.Increment(context.Background(), 1, models.FieldDailyMessageCount, 1))

	rec, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), rec.DailyMessageCount)
}

func TestInvalidationHappensAfterStoreWrite(t *testing.T) {
	inner := memory.NewUserRepository()
	cache := newFakeCache()
	repo := cached.NewUserRepository(inner, cache)
	seedUser(t, inner, 1, 0)

	var countAtInvalidate int64 = -1
	cache.onInvalidate = func(id int64) {
		rec, err := inner.GetByID(context.Background(), id)
		require.NoError(t, err)
		countAtInvalidate = rec.DailyMessageCount
	}

	require.NoError(t, repo.Increment(context.Background(), 1, models.FieldDailyMessageCount, 1))

	// The store must already hold the new count when the entry is dropped.
	assert.Equal(t, int64(1), countAtInvalidate)
}

func TestConcurrentReadCannotPinStaleCount(t *testing.T) {
	inner := memory.NewUserRepository()
	cache := newFakeCache()
	repo := cached.NewUserRepository(inner, cache)
	seedUser(t, inner, 1, 14)

	// A reader racing the write lands inside the invalidation window. With the
	// store written first, whatever it repopulates already carries the new count.
	cache.onInvalidate = func(id int64) {
		_, err := repo.GetByID(context.Background(), id)
		require.NoError(t, err)
	}

	require.NoError(t, repo.Increment(context.Background(), 1, models.FieldDailyMessageCount, 1))
	cache.onInvalidate = nil

	rec, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(15), rec.DailyMessageCount)
}

func TestFailedWriteKeepsCacheEntry(t *testing.T) {
	inner := memory.NewUserRepository()
	cache := newFakeCache()
	repo := cached.NewUserRepository(inner, cache)
	seedUser(t, inner, 1, 3)

	_, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)

	// Incrementing a missing user fails in the store; the cached entry for the
	// existing user is untouched.
	err = repo.Increment(context.Background(), 404, models.FieldDailyMessageCount, 1)
	assert.Equal(t, repository.ErrUserNotFound, err)

	_, ok := cache.entry(1)
	assert.True(t, ok)
}
