package handler

import (
	"context"
	"time"
)

// Cache is the slice of the response cache handlers depend on.
// *repository.Cache satisfies it; tests use an in-memory fake.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl ...time.Duration) error
	Delete(ctx context.Context, key string) error
	DeletePattern(ctx context.Context, pattern string) (int64, error)
}

// CacheTTLConfig holds cache TTLs for the different response types
type CacheTTLConfig struct {
	Suggest  time.Duration
	Search   time.Duration
	Trending time.Duration
}

// DefaultCacheTTL returns the default cache TTL configuration
func DefaultCacheTTL() *CacheTTLConfig {
	return &CacheTTLConfig{
		Suggest:  15 * time.Minute,
		Search:   30 * time.Minute,
		Trending: 1 * time.Hour,
	}
}
