package middleware

import (
	"log/slog"
	"slices"

	"employee-discount/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     slices.Clone(cfg.AllowHeaders),
		ExposeHeaders:    slices.Clone(cfg.ExposeHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	// cashier terminals read these on every validation
	for _, h := range []string{HeaderRequestID, HeaderIdempotentReplayed} {
		if !slices.Contains(corsCfg.ExposeHeaders, h) {
			corsCfg.ExposeHeaders = append(corsCfg.ExposeHeaders, h)
		}
	}
	if !slices.Contains(corsCfg.AllowHeaders, HeaderIdempotencyKey) {
		corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, HeaderIdempotencyKey)
	}
	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "expose_headers", corsCfg.ExposeHeaders)
	return cors.New(corsCfg)
}
