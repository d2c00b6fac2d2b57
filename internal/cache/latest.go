// Package cache keeps per-user "latest carwashes" in Redis so the map screen
// does not hit the wash backend on every open.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/redis/go-redis/v9"
)

const latestTTL = 24 * time.Hour

type LatestCarwashes struct {
	rdb *redis.Client
}

func New(ctx context.Context, addr, password string, db int) (*LatestCarwashes, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &LatestCarwashes{rdb: rdb}, nil
}

func (c *LatestCarwashes) Set(ctx context.Context, userID uuid.UUID, ids []int64) error {
	b, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal latest carwashes: %w", err)
	}

	err = c.rdb.Set(ctx, key(userID), b, latestTTL).Err()
	if err != nil {
		return fmt.Errorf("set latest carwashes: %w", err)
	}

	return nil
}

// Get returns the cached ids or nil when nothing is cached yet.
func (c *LatestCarwashes) Get(ctx context.Context, userID uuid.UUID) ([]int64, error) {
	b, err := c.rdb.Get(ctx, key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, fmt.Errorf("get latest carwashes: %w", err)
	}

	var ids []int64

	err = json.Unmarshal(b, &ids)
	if err != nil {
		return nil, fmt.Errorf("unmarshal latest carwashes: %w", err)
	}

	return ids, nil
}

func (c *LatestCarwashes) Close() error {
	return c.rdb.Close()
}

func key(userID uuid.UUID) string {
	return "latest_carwashes:" + userID.String()
}
