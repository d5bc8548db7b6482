package bootstrap

import (
	"context"
	"log/slog"

	"employee-discount/internal/infra/cache"
	"employee-discount/internal/pkg/config"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewDivisionRuleCache,
	),
)

// NewDivisionRuleCache returns the redis-backed cache when REDIS_ADDR is set
// and a pass-through otherwise.
func NewDivisionRuleCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) cache.DivisionRuleCache {
	if cfg.Redis.Addr == "" {
		logger.Info("Division rule cache disabled")
		return cache.NoopDivisionRuleCache{}
	}

	client := cache.NewRedisClient(cfg.Redis)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("Redis unreachable at startup, rule lookups fall back to the database", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return cache.NewRedisDivisionRuleCache(client, cfg.Redis.RuleTTL, logger)
}
