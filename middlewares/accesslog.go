package middlewares

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/webapp/internal"
)

type accessLogConfig struct {
	skip  map[string]struct{}
	level slog.Level
}

// AccessLogOption configures the AccessLog middleware.
type AccessLogOption func(*accessLogConfig)

// WithAccessLogSkipPaths excludes exact paths, e.g. health probes.
func WithAccessLogSkipPaths(paths ...string) AccessLogOption {
	return func(cfg *accessLogConfig) {
		for _, p := range paths {
			cfg.skip[p] = struct{}{}
		}
	}
}

// WithAccessLogLevel sets the level for successful requests. Default: info.
// 5xx responses are always logged at error level.
func WithAccessLogLevel(level slog.Level) AccessLogOption {
	return func(cfg *accessLogConfig) {
		cfg.level = level
	}
}

// AccessLog returns middleware that logs every completed request.
func AccessLog(opts ...AccessLogOption) internal.Middleware {
	cfg := &accessLogConfig{
		skip:  make(map[string]struct{}),
		level: slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			r := c.Request()
			if _, ok := cfg.skip[r.URL.Path]; ok {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			rw := c.ResponseWriter()
			status := rw.Status()
			level := cfg.level
			if status >= 500 || (err != nil && !rw.Written()) {
				level = slog.LevelError
			}

			attrs := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"size", rw.Size(),
				"duration", time.Since(start),
				"htmx", c.IsHTMX(),
			}
			if err != nil {
				attrs = append(attrs, "error", err)
			}
			c.Logger().Log(c.Context(), level, "http request", attrs...)

			return err
		}
	}
}
