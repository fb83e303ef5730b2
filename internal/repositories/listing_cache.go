package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-career-opportunities/internal/logger"
	"github.com/sbilibin2017/gw-career-opportunities/internal/models"
)

const (
	// ListingKeyPrefix namespaces every listing cache key.
	ListingKeyPrefix = "opportunities:"

	globalGenerationKey = ListingKeyPrefix + "generation"

	// userGenerationTTL must stay well above the entry TTL so that a counter
	// never resets while entries cached under an older value are still alive.
	userGenerationTTL = 24 * time.Hour
)

func userGenerationKey(userID uuid.UUID) string {
	return fmt.Sprintf("%sgeneration:user:%s", ListingKeyPrefix, userID)
}

// ListingCacheRepository stores serialized listing pages in Redis and keeps
// the generation counters that version their keys.
type ListingCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached pages
}

// NewListingCacheRepository creates a new repository instance with the given entry TTL
func NewListingCacheRepository(client *redis.Client, expiration time.Duration) *ListingCacheRepository {
	return &ListingCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetGeneration reads the global and per-user counters in one round trip.
// Counters that were never incremented read as zero.
func (r *ListingCacheRepository) GetGeneration(ctx context.Context, userID uuid.UUID) (models.CacheGeneration, error) {
	keys := []string{globalGenerationKey, userGenerationKey(userID)}

	vals, err := r.client.MGet(ctx, keys...).Result()

	logger.Log.Infow("cache",
		"key", keys,
		"result", vals,
		"error", err,
	)

	if err != nil {
		return models.CacheGeneration{}, err
	}

	counters := make([]int64, len(keys))
	for i, v := range vals {
		if v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return models.CacheGeneration{}, fmt.Errorf("unexpected generation value %T for %s", v, keys[i])
		}
		if counters[i], err = strconv.ParseInt(s, 10, 64); err != nil {
			return models.CacheGeneration{}, fmt.Errorf("parse generation %s: %w", keys[i], err)
		}
	}

	return models.CacheGeneration{Global: counters[0], User: counters[1]}, nil
}

// Get returns the cached value for key. found is false on a miss.
func (r *ListingCacheRepository) Get(ctx context.Context, key string) (value []byte, found bool, err error) {
	value, err = r.client.Get(ctx, key).Bytes()

	logger.Log.Infow("cache",
		"key", key,
		"result", len(value),
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// Set caches value under key with the repository TTL.
func (r *ListingCacheRepository) Set(ctx context.Context, key string, value []byte) error {
	err := r.client.Set(ctx, key, value, r.exp).Err()

	logger.Log.Infow("cache",
		"key", key,
		"ttl", r.exp,
		"error", err,
	)

	return err
}

// BumpGlobalGeneration orphans every cached listing page.
func (r *ListingCacheRepository) BumpGlobalGeneration(ctx context.Context) error {
	gen, err := r.client.Incr(ctx, globalGenerationKey).Result()

	logger.Log.Infow("cache",
		"key", globalGenerationKey,
		"result", gen,
		"error", err,
	)

	return err
}

// BumpUserGeneration orphans every cached listing page of one requester.
func (r *ListingCacheRepository) BumpUserGeneration(ctx context.Context, userID uuid.UUID) error {
	key := userGenerationKey(userID)

	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, userGenerationTTL)
		return nil
	})

	var gen int64
	if incr != nil {
		gen = incr.Val()
	}
	logger.Log.Infow("cache",
		"key", key,
		"result", gen,
		"error", err,
	)

	return err
}
