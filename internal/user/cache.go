package user

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/ferdiebergado/kubodir/internal/platform/cache"
	"github.com/ferdiebergado/kubodir/internal/platform/db"
)

const cacheKeyPrefix = "user:v1:"

var _ Repository = (*CachedRepository)(nil)

// CachedRepository serves lookups by id from a cache and invalidates on writes.
// Reads inside a transaction go to the wrapped repository.
type CachedRepository struct {
	Repository

	cache cache.Cache
	ttl   time.Duration
}

func NewCachedRepository(repo Repository, c cache.Cache, ttl time.Duration) *CachedRepository {
	return &CachedRepository{
		Repository: repo,
		cache:      c,
		ttl:        ttl,
	}
}

func cacheKey(userID string) string {
	return cacheKeyPrefix + userID
}

func (r *CachedRepository) Find(ctx context.Context, userID string) (*User, error) {
	if db.InTx(ctx) {
		return r.Repository.Find(ctx, userID)
	}

	key := cacheKey(userID)
	b, err := r.cache.Get(ctx, key)
	switch {
	case err == nil:
		var u User
		if err := json.Unmarshal(b, &u); err == nil {
			return &u, nil
		}
		slog.Warn("discarding corrupt cache entry", "key", key)
	case !errors.Is(err, cache.ErrMiss):
		slog.Warn("cache get failed", "key", key, "reason", err)
	}

	u, err := r.Repository.Find(ctx, userID)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(u); err == nil {
		if err := r.cache.Set(ctx, key, b, r.ttl); err != nil {
			slog.Warn("cache set failed", "key", key, "reason", err)
		}
	}

	return u, nil
}

func (r *CachedRepository) Save(ctx context.Context, u *User) error {
	if err := r.Repository.Save(ctx, u); err != nil {
		return err
	}
	r.invalidate(ctx, u.ID)
	return nil
}

func (r *CachedRepository) Delete(ctx context.Context, userID string) error {
	if err := r.Repository.Delete(ctx, userID); err != nil {
		return err
	}
	r.invalidate(ctx, userID)
	return nil
}

// Ping checks the wrapped repository; the cache has its own probe.
func (r *CachedRepository) Ping(ctx context.Context) error {
	return r.Repository.Ping(ctx)
}

func (r *CachedRepository) invalidate(ctx context.Context, userID string) {
	if err := r.cache.Delete(context.WithoutCancel(ctx), cacheKey(userID)); err != nil {
		slog.Warn("cache invalidation failed", "user_id", userID, "reason", err)
	}
}
