// Package redis opens the go-redis client that backs the shared output cache.
//
// [Open] parses a redis:// or rediss:// URL, applies pool settings and pings
// the server, retrying with a linear backoff while the server comes up.
// [Healthcheck] and [Shutdown] plug the client into the readiness probe and
// the server's shutdown hooks:
//
//	client, err := redis.Open(ctx, cfg.RedisURL, redis.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	app := webapp.New(
//		webapp.WithHealthChecks(webapp.WithReadinessCheck("redis", redis.Healthcheck(client))),
//		webapp.WithOutputCache(outputcache.NewRedis(client), ttl, "Index", "About", "Contact"),
//	)
//	return app.Run(cfg.Address, webapp.ShutdownHook(redis.Shutdown(client)))
package redis
