package bootstrap

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/planner-backend/config"
	"github.com/GoSim-25-26J-441/planner-backend/internal/breakdown"
)

func NewGenerator(ctx context.Context, cfg *config.Config, rdb *redis.Client, log *zap.Logger) (breakdown.Generator, error) {
	// a typed nil client must not reach the cache decorator
	var cache redis.Cmdable
	if rdb != nil {
		cache = rdb
	}
	return breakdown.New(ctx, cfg, cache, log)
}
