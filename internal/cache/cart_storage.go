package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Storage is the key-value contract the cart store persists through.
// Read returns found=false for an absent key; both operations may fail and
// callers are expected to degrade gracefully.
type Storage interface {
	Read(ctx context.Context, key string) (value string, found bool, err error)
	Write(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// CartStorage persists serialized carts in Redis under a per-cart key with an
// idle TTL. It is a best-effort convenience cache with last-write-wins
// semantics, not a durability guarantee.
type CartStorage struct {
	redis *RedisClient
	ttl   time.Duration
}

// NewCartStorage creates a CartStorage with the given idle TTL.
func NewCartStorage(redis *RedisClient, ttl time.Duration) *CartStorage {
	return &CartStorage{redis: redis, ttl: ttl}
}

func (s *CartStorage) key(cartID string) string {
	return fmt.Sprintf("cart:%s", cartID)
}

// Read returns the serialized cart for cartID, or found=false when no cart
// has been persisted under that id.
func (s *CartStorage) Read(ctx context.Context, cartID string) (string, bool, error) {
	raw, err := s.redis.Get(ctx, s.key(cartID))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return raw, true, nil
}

// Write stores the serialized cart and refreshes its TTL.
func (s *CartStorage) Write(ctx context.Context, cartID, value string) error {
	return s.redis.Set(ctx, s.key(cartID), value, s.ttl)
}

// Delete removes the persisted cart.
func (s *CartStorage) Delete(ctx context.Context, cartID string) error {
	return s.redis.Delete(ctx, s.key(cartID))
}
