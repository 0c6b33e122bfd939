package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/stayhaven/booking-system/internal/core/domain"
)

func newTestCache(t *testing.T, ttl time.Duration) (*SummaryCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSummaryCache(client, ttl), mr
}

func sampleSummary() *domain.RatingSummary {
	return &domain.RatingSummary{
		AverageRating: 4.6,
		TotalReviews:  5,
		Distribution:  map[int]int{1: 0, 2: 0, 3: 0, 4: 2, 5: 3},
	}
}

func TestSummaryCache_MissThenHit(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	if _, ok, err := cache.Get(ctx, "owner_1"); err != nil || ok {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	if err := cache.Set(ctx, "owner_1", sampleSummary()); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, ok, err := cache.Get(ctx, "owner_1")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if got.AverageRating != 4.6 || got.TotalReviews != 5 {
		t.Errorf("unexpected summary: %+v", got)
	}
	if got.Distribution[5] != 3 || got.Distribution[4] != 2 {
		t.Errorf("unexpected distribution: %+v", got.Distribution)
	}
}

func TestSummaryCache_Invalidate(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	_ = cache.Set(ctx, "owner_1", sampleSummary())
	if err := cache.Invalidate(ctx, "owner_1"); err != nil {
		t.Fatalf("invalidate failed: %v", err)
	}

	if _, ok, _ := cache.Get(ctx, "owner_1"); ok {
		t.Error("expected miss after invalidation")
	}
}

func TestSummaryCache_Expires(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	_ = cache.Set(ctx, "owner_1", sampleSummary())
	mr.FastForward(2 * time.Minute)

	if _, ok, _ := cache.Get(ctx, "owner_1"); ok {
		t.Error("expected entry to expire after TTL")
	}
}

func TestSummaryCache_KeysAreScopedPerOwner(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	_ = cache.Set(ctx, "owner_1", sampleSummary())

	if _, ok, _ := cache.Get(ctx, "owner_2"); ok {
		t.Error("owner_2 must not see owner_1's summary")
	}
}
