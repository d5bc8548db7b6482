package bootstrap

import (
	"fmt"
	"log/slog"

	"employee-discount/internal/handler/middleware"
	"employee-discount/internal/pkg/config"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewRequestLogger,
		NewLogger,
	),
)

func NewRequestLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

func NewLogger(l *middleware.Logger) *slog.Logger {
	return l.GetSlogLogger()
}

// NewCommandLogger builds the server's logger for one-shot binaries that do
// not load the full Config. Only the LOG_* variables are read.
func NewCommandLogger() (*slog.Logger, error) {
	var cfg config.LogConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process log config: %w", err)
	}
	return middleware.NewLogger(cfg).GetSlogLogger(), nil
}
