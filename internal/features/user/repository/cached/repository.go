package cached

import (
	"context"

	"pixigpt-bot/internal/cache/redis"
	"pixigpt-bot/internal/common/logger"
	"pixigpt-bot/internal/features/user/models"
	"pixigpt-bot/internal/features/user/repository"
)

// Cache is the slice of the Redis user cache this decorator needs.
type Cache interface {
	GetByID(ctx context.Context, id int64) (*models.UserRecord, error)
	Set(ctx context.Context, rec *models.UserRecord) error
	Invalidate(ctx context.Context, id int64) error
}

// userRepository decorates a UserRepository with a read-through Redis cache.
// The cache is best effort: failures are logged and the call falls through to
// the backing store. Writes go to the backing store first and invalidate the
// cached entry only after the store accepted them; invalidating first would
// open a window where a concurrent read repopulates the cache with the
// pre-write record and pins it for the full TTL.
type userRepository struct {
	inner repository.UserRepository
	cache Cache
}

func NewUserRepository(inner repository.UserRepository, cache Cache) repository.UserRepository {
	return &userRepository{inner: inner, cache: cache}
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.UserRecord, error) {
	rec, err := r.cache.GetByID(ctx, id)
	if err == nil {
		return rec, nil
	}
	if !redis.IsMiss(err) {
		logger.Warn().Err(err).Int64("user_id", id).Msg("User cache read failed")
	}

	rec, err = r.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, rec); err != nil {
		logger.Warn().Err(err).Int64("user_id", id).Msg("User cache write failed")
	}
	return rec, nil
}

func (r *userRepository) CreateIfAbsent(ctx context.Context, rec *models.UserRecord) (bool, error) {
	created, err := r.inner.CreateIfAbsent(ctx, rec)
	if err != nil {
		return false, err
	}
	if created {
		r.invalidate(ctx, rec.ID)
	}
	return created, nil
}

func (r *userRepository) Merge(ctx context.Context, id int64, fields map[string]interface{}) error {
	if err := r.inner.Merge(ctx, id, fields); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *userRepository) Increment(ctx context.Context, id int64, field string, delta int64) error {
	if err := r.inner.Increment(ctx, id, field, delta); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *userRepository) SetReferrerIfAbsent(ctx context.Context, id, referrerID int64) (bool, error) {
	applied, err := r.inner.SetReferrerIfAbsent(ctx, id, referrerID)
	if err != nil {
		return false, err
	}
	if applied {
		r.invalidate(ctx, id)
	}
	return applied, nil
}

func (r *userRepository) FindByReferralCode(ctx context.Context, code string) (*models.UserRecord, error) {
	// Code lookups hit the store's field index directly; the id-keyed cache
	// cannot answer them.
	return r.inner.FindByReferralCode(ctx, code)
}

func (r *userRepository) invalidate(ctx context.Context, id int64) {
	if err := r.cache.Invalidate(ctx, id); err != nil {
		logger.Warn().Err(err).Int64("user_id", id).Msg("User cache invalidation failed")
	}
}
