package breakdown

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/planner-backend/internal/logging"
	"github.com/GoSim-25-26J-441/planner-backend/internal/metrics"
)

const cachePrefix = "breakdown:"

// Cached serves repeated prompts from redis. Redis failures degrade to a
// direct provider call; provider errors are never cached.
type Cached struct {
	next Generator
	rdb  redis.Cmdable
	ttl  time.Duration
}

func NewCached(next Generator, rdb redis.Cmdable, ttl time.Duration) *Cached {
	return &Cached{next: next, rdb: rdb, ttl: ttl}
}

func CacheKey(req Request) string {
	sum := sha256.Sum256([]byte(string(req.Kind) + "\x00" + Prompt(req)))
	return cachePrefix + hex.EncodeToString(sum[:])
}

func (c *Cached) Generate(ctx context.Context, req Request) ([]Draft, error) {
	log := logging.FromContext(ctx)
	key := CacheKey(req)

	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var drafts []Draft
		if uerr := json.Unmarshal(raw, &drafts); uerr == nil {
			metrics.CacheLookup("hit")
			return drafts, nil
		}
		log.Warn("discarding corrupt breakdown cache entry", zap.String("key", key))
		metrics.CacheLookup("error")
	case errors.Is(err, redis.Nil):
		metrics.CacheLookup("miss")
	default:
		log.Warn("breakdown cache lookup failed", zap.Error(err))
		metrics.CacheLookup("error")
	}

	drafts, err := c.next.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	if payload, merr := json.Marshal(drafts); merr == nil {
		if serr := c.rdb.Set(ctx, key, payload, c.ttl).Err(); serr != nil {
			log.Warn("breakdown cache store failed", zap.Error(serr))
		}
	}
	return drafts, nil
}
