package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"stingwatch/internal/domain"
)

const directoryCacheKey = "directory:managers"

// DirectoryCache caches the manager roster between dispatches. A miss returns
// (nil, nil) so the caller falls through to Postgres.
type DirectoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDirectoryCache(client *redis.Client, ttl time.Duration) *DirectoryCache {
	return &DirectoryCache{client: client, ttl: ttl}
}

func (c *DirectoryCache) Get(ctx context.Context) ([]domain.ManagerVenue, error) {
	raw, err := c.client.Get(ctx, directoryCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var managers []domain.ManagerVenue
	if err := json.Unmarshal(raw, &managers); err != nil {
		return nil, err
	}
	return managers, nil
}

func (c *DirectoryCache) Set(ctx context.Context, managers []domain.ManagerVenue) error {
	b, err := json.Marshal(managers)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, directoryCacheKey, b, c.ttl).Err()
}
