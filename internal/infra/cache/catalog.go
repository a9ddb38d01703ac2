package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"cafe-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	cafesKey       = "catalog:cafes"
	slotsKeyPrefix = "catalog:slots:"
)

// CatalogCache fronts the catalog read store with a TTL cache. The catalog
// changes rarely and never participates in availability decisions, so stale
// reads here are harmless. Cache failures degrade to direct reads.
type CatalogCache struct {
	inner  queries.CatalogReadStore
	client *redis.Client
	ttl    time.Duration
}

func NewCatalogCache(inner queries.CatalogReadStore, client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{
		inner:  inner,
		client: client,
		ttl:    ttl,
	}
}

func (c *CatalogCache) ListCafes(ctx context.Context) ([]*queries.CafeView, error) {
	var cached []*queries.CafeView
	if c.lookup(ctx, cafesKey, &cached) {
		return cached, nil
	}

	cafes, err := c.inner.ListCafes(ctx)
	if err != nil {
		return nil, err
	}

	c.store(ctx, cafesKey, cafes)
	return cafes, nil
}

func (c *CatalogCache) ListSlotsByCafe(ctx context.Context, cafeID uuid.UUID) ([]*queries.SlotView, error) {
	key := slotsKeyPrefix + cafeID.String()

	var cached []*queries.SlotView
	if c.lookup(ctx, key, &cached) {
		return cached, nil
	}

	slots, err := c.inner.ListSlotsByCafe(ctx, cafeID)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, slots)
	return slots, nil
}

func (c *CatalogCache) lookup(ctx context.Context, key string, dest any) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("catalog cache read failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		slog.Warn("catalog cache entry corrupted", "key", key, "error", err)
		return false
	}
	return true
}

func (c *CatalogCache) store(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		slog.Warn("catalog cache marshal failed", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		slog.Warn("catalog cache write failed", "key", key, "error", err)
	}
}
