package middleware

import (
	"log/slog"

	"servicehub/config"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

// LoggerMiddleware writes one access log line per request.
// Health and metrics probes are never logged; debug mode adds request and response bodies.
type LoggerMiddleware struct {
	handler echo.MiddlewareFunc
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	ignored := []string{"/health"}
	if cfg.Metrics != nil && cfg.Metrics.Enabled {
		ignored = append(ignored, cfg.Metrics.Path)
	}

	return &LoggerMiddleware{
		handler: slogecho.NewWithConfig(logger, slogecho.Config{
			DefaultLevel:     slog.LevelInfo,
			ClientErrorLevel: slog.LevelWarn,
			ServerErrorLevel: slog.LevelError,
			WithRequestID:    true,
			WithUserAgent:    true,
			WithRequestBody:  cfg.Env.Debug,
			WithResponseBody: cfg.Env.Debug,
			Filters:          []slogecho.Filter{slogecho.IgnorePath(ignored...)},
		}),
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return m.handler(next)
}
