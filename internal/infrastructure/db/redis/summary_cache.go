package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stayhaven/booking-system/internal/core/domain"
)

const defaultSummaryTTL = 5 * time.Minute

// SummaryCache caches owner rating summaries in Redis.
// Key format: ratings:summary:<owner_id>
type SummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSummaryCache creates a SummaryCache wrapping the given Redis client.
func NewSummaryCache(client *redis.Client, ttl time.Duration) *SummaryCache {
	if ttl <= 0 {
		ttl = defaultSummaryTTL
	}
	return &SummaryCache{client: client, ttl: ttl}
}

// Get returns the cached summary for the owner, with ok=false on a miss.
func (c *SummaryCache) Get(ctx context.Context, ownerID string) (*domain.RatingSummary, bool, error) {
	raw, err := c.client.Get(ctx, c.key(ownerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("summary cache get: %w", err)
	}

	var summary domain.RatingSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		// A corrupt entry is treated as a miss so the caller recomputes.
		return nil, false, fmt.Errorf("summary cache decode: %w", err)
	}
	return &summary, true, nil
}

// Set stores the summary for the owner (expires after the configured TTL).
func (c *SummaryCache) Set(ctx context.Context, ownerID string, summary *domain.RatingSummary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("summary cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(ownerID), raw, c.ttl).Err()
}

// Invalidate drops the cached summary so the next read recomputes.
func (c *SummaryCache) Invalidate(ctx context.Context, ownerID string) error {
	return c.client.Del(ctx, c.key(ownerID)).Err()
}

func (c *SummaryCache) key(ownerID string) string {
	return "ratings:summary:" + ownerID
}
