package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"plantcare-api/internal/model"
)

// ScanCache keeps per-user prediction lists in redis so repeated history
// reads skip the database. Entries are invalidated whenever a new
// prediction lands or the user's records are deleted.
type ScanCache struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewScanCache(client *redisv9.Client, ttl time.Duration) *ScanCache {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &ScanCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *ScanCache) GetUserScans(ctx context.Context, userID string) ([]model.Prediction, bool, error) {
	raw, err := c.client.Get(ctx, c.userKey(userID)).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get user scans failed: %w", err)
	}

	var predictions []model.Prediction
	if err := json.Unmarshal([]byte(raw), &predictions); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached scans failed: %w", err)
	}
	return predictions, true, nil
}

func (c *ScanCache) SetUserScans(ctx context.Context, userID string, predictions []model.Prediction) error {
	payload, err := json.Marshal(predictions)
	if err != nil {
		return fmt.Errorf("marshal scan cache failed: %w", err)
	}
	if err := c.client.Set(ctx, c.userKey(userID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set user scans failed: %w", err)
	}
	return nil
}

func (c *ScanCache) Invalidate(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, c.userKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis invalidate user scans failed: %w", err)
	}
	return nil
}

func (c *ScanCache) userKey(userID string) string {
	return fmt.Sprintf("plantcare:scans:%s", userID)
}
