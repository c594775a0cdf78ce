package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/planner-backend/config"
	"github.com/GoSim-25-26J-441/planner-backend/internal/storage/postgres"
)

func OpenDB(ctx context.Context, cfg *config.DatabaseConfig) (*sql.DB, error) {
	if cfg.DSN == "" && cfg.Host == "" {
		return nil, fmt.Errorf("DB_DSN or DB_HOST must be set")
	}
	return postgres.NewConnection(ctx, cfg)
}

// OpenRedis returns nil when no REDIS_URL is configured; the breakdown cache
// is then skipped.
func OpenRedis(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	rdb := redis.NewClient(opts)

	pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}
