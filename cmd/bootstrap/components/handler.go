package components

import (
	"employee-discount/internal/handler"
	"employee-discount/internal/handler/api"
	"employee-discount/internal/handler/middleware"
	"employee-discount/internal/infra/cache"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewHealthHandler,
		api.NewCodeHandler,
		api.NewValidationHandler,
		api.NewSpendingHandler,
		middleware.NewAuthMiddleware,
		func(health *api.HealthHandler, code *api.CodeHandler, validation *api.ValidationHandler, spending *api.SpendingHandler) handler.Handlers {
			return handler.Handlers{Health: health, Code: code, Validation: validation, Spending: spending}
		},
	),
	fx.Invoke(handler.NewRouter),
)

// NewHealthHandler pings the pool and, when enabled, the redis rule cache.
func NewHealthHandler(pool *pgxpool.Pool, rules cache.DivisionRuleCache) *api.HealthHandler {
	checks := map[string]api.Pinger{"database": pool}
	if redisCache, ok := rules.(*cache.RedisDivisionRuleCache); ok {
		checks["redis"] = redisCache
	}
	return api.NewHealthHandler(checks)
}
