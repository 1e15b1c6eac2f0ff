package main

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"os"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/webapp"
	"github.com/dmitrymomot/webapp/handlers"
	"github.com/dmitrymomot/webapp/middlewares"
	"github.com/dmitrymomot/webapp/pkg/content"
	"github.com/dmitrymomot/webapp/pkg/logger"
	"github.com/dmitrymomot/webapp/pkg/outputcache"
	"github.com/dmitrymomot/webapp/pkg/redis"
	"github.com/dmitrymomot/webapp/views"
)

//go:embed content.yaml public
var assets embed.FS

func main() {
	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithExtractors(middlewares.RequestIDExtractor()),
		logger.WithSentry(cfg.Sentry),
	).With("app", cfg.AppName)

	pages, err := content.Load(assets, "content.yaml")
	if err != nil {
		return err
	}

	ctx := context.Background()
	var client goredis.UniversalClient
	if cfg.RedisURL != "" {
		client, err = redis.Open(ctx, cfg.RedisURL, redis.WithLogger(log))
		if err != nil {
			return err
		}
	}

	store, shutdownStore := newOutputCache(client, cfg.OutputCacheMax)

	app := newApp(cfg, log, pages, store, client, assets)

	runOpts := []webapp.RunOption{
		webapp.Logger(log),
		webapp.ShutdownTimeout(cfg.ShutdownTimeout),
		webapp.ShutdownHook(shutdownStore),
	}
	if client != nil {
		runOpts = append(runOpts, webapp.ShutdownHook(redis.Shutdown(client)))
	}
	runOpts = append(runOpts, webapp.ShutdownHook(logger.Flush))

	return app.Run(cfg.Address, runOpts...)
}

// newOutputCache shares rendered pages through Redis when available.
// The in-memory fallback holds at most maxEntries pages.
func newOutputCache(client goredis.UniversalClient, maxEntries int) (outputcache.Store, func(context.Context) error) {
	if client != nil {
		return outputcache.NewRedis(client), func(context.Context) error { return nil }
	}
	store := outputcache.NewMemory(outputcache.WithMaxEntries(maxEntries))
	return store, store.Shutdown
}

func newApp(
	cfg config,
	log *slog.Logger,
	pages *content.Pages,
	store outputcache.Store,
	client goredis.UniversalClient,
	static fs.FS,
) *webapp.App {
	health := []webapp.HealthOption{}
	if client != nil {
		health = append(health, webapp.WithReadinessCheck("redis", redis.Healthcheck(client)))
	}

	return webapp.New(
		webapp.WithCustomLogger(log),
		webapp.WithMiddleware(
			middlewares.RequestID(),
			middlewares.AccessLog(middlewares.WithAccessLogSkipPaths("/health/live", "/health/ready")),
			middlewares.Recover(),
		),
		webapp.WithStaticFiles("/static/", static, "public"),
		webapp.WithViews(views.Registry()),
		webapp.WithOutputCache(store, cfg.OutputCacheTTL, views.IndexView, views.AboutView, views.ContactView),
		webapp.WithErrorHandler(handlers.ErrorHandler(views.Layout)),
		webapp.WithNotFoundHandler(handlers.NotFound),
		webapp.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		webapp.WithHealthChecks(health...),
		webapp.WithHandlers(handlers.NewHomeController(handlers.WithPages(pages))),
	)
}
