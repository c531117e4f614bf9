package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"pixigpt-bot/internal/features/user/models"
)

// UserCache provides Redis-based caching for user records.
type UserCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewUserCache(client *redis.Client, ttl time.Duration) *UserCache {
	return &UserCache{client: client, ttl: ttl}
}

func (c *UserCache) key(id int64) string { return fmt.Sprintf("user:id:%d", id) }

// Set stores the record under its id key.
func (c *UserCache) Set(ctx context.Context, rec *models.UserRecord) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(rec.ID), b, c.ttl).Err()
}

// GetByID returns the cached record, or redis.Nil on a miss.
func (c *UserCache) GetByID(ctx context.Context, id int64) (*models.UserRecord, error) {
	v, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		return nil, err
	}
	var rec models.UserRecord
	if err := json.Unmarshal(v, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// IsMiss reports whether err is a cache miss rather than a cache failure.
func IsMiss(err error) bool { return err == redis.Nil }

// Invalidate removes the cached entry for the user.
func (c *UserCache) Invalidate(ctx context.Context, id int64) error {
	return c.client.Del(ctx, c.key(id)).Err()
}
