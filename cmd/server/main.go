// Command server runs the contact API.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"

	"github.com/amoxtli/school-contact/pkg/config"
	"github.com/amoxtli/school-contact/pkg/contact"
	"github.com/amoxtli/school-contact/pkg/email"
	"github.com/amoxtli/school-contact/pkg/httpserver"
	"github.com/amoxtli/school-contact/pkg/logger"
	"github.com/amoxtli/school-contact/pkg/ratelimit"
	"github.com/amoxtli/school-contact/pkg/redis"
	"github.com/amoxtli/school-contact/pkg/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var app appConfig
	config.MustLoad(&app)

	log := logger.New(
		logger.WithEnvironment(app.Env, app.Name),
		logger.WithLevelName(app.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	if err := run(ctx, log); err != nil {
		log.Error("server stopped", logger.Error(err))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger) error {
	var (
		contactCfg contact.Config
		emailCfg   email.Config
		limitCfg   ratelimit.Config
		redisCfg   redis.Config
		serverCfg  httpserver.Config
	)
	for _, load := range []func() error{
		func() error { return config.Load(&contactCfg) },
		func() error { return config.Load(&emailCfg) },
		func() error { return config.Load(&limitCfg) },
		func() error { return config.Load(&redisCfg) },
		func() error { return config.Load(&serverCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}

	sender, err := newSender(emailCfg, log)
	if err != nil {
		return err
	}

	svc, err := contact.NewService(contactCfg, sender, contact.WithLogger(log))
	if err != nil {
		return err
	}

	var rdb goredis.UniversalClient
	if redisCfg.Enabled() {
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer client.Close()
		rdb = client
	}

	limiter, closeLimiter, err := newLimiter(limitCfg, rdb, log)
	if err != nil {
		return err
	}
	defer closeLimiter()

	srv := httpserver.NewFromConfig(serverCfg, httpserver.WithLogger(log))
	return srv.Run(ctx, newRouter(routerDeps{
		service: svc,
		limiter: limiter,
		redis:   rdb,
		log:     log,
	}))
}

// newSender picks Postmark when a server token is set and the file-based
// dev sender otherwise.
func newSender(cfg email.Config, log *slog.Logger) (email.Sender, error) {
	if cfg.UsePostmark() {
		return email.NewPostmarkSender(cfg, email.WithPostmarkLogger(log))
	}
	log.Warn("POSTMARK_SERVER_TOKEN not set, writing emails to disk", slog.String("dir", cfg.DevDir))
	return email.NewDevSender(cfg.DevDir), nil
}

// newLimiter returns nil when rate limiting is disabled. Windows live in
// Redis when a client is given and in memory otherwise.
func newLimiter(cfg ratelimit.Config, rdb goredis.UniversalClient, log *slog.Logger) (ratelimit.Limiter, func(), error) {
	noop := func() {}
	if !cfg.Enabled {
		return nil, noop, nil
	}

	var (
		store   ratelimit.Store
		closeFn = noop
	)
	if rdb != nil {
		store = ratelimit.NewRedisStore(rdb, cfg.Prefix)
	} else {
		mem := ratelimit.NewMemoryStore()
		store = mem
		closeFn = func() { _ = mem.Close() }
		log.Info("rate limit windows kept in memory")
	}

	limiter, err := ratelimit.NewSlidingWindow(store, cfg.Requests, cfg.Window)
	if err != nil {
		closeFn()
		return nil, noop, err
	}
	return limiter, closeFn, nil
}
