package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	goredis "github.com/redis/go-redis/v9"

	"github.com/amoxtli/school-contact/pkg/clientip"
	"github.com/amoxtli/school-contact/pkg/contact"
	"github.com/amoxtli/school-contact/pkg/httpserver"
	"github.com/amoxtli/school-contact/pkg/ratelimit"
	"github.com/amoxtli/school-contact/pkg/redis"
	"github.com/amoxtli/school-contact/pkg/requestid"
)

type routerDeps struct {
	service *contact.Service
	limiter ratelimit.Limiter // nil disables limiting
	redis   goredis.UniversalClient
	log     *slog.Logger
}

func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware, clientip.Middleware)

	var ready []func(context.Context) error
	if d.redis != nil {
		ready = append(ready, redis.Healthcheck(d.redis))
	}
	r.Get("/health/live", httpserver.HealthCheckHandler(d.log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(d.log, append(ready, alwaysReady)...))

	var submit []func(http.Handler) http.Handler
	if d.limiter != nil {
		submit = append(submit, ratelimit.Middleware(d.limiter, ratelimit.ByClientIP,
			ratelimit.WithOnLimitReached(contact.TooManyRequests),
			ratelimit.WithLogger(d.log),
		))
	}
	r.Mount("/", contact.Routes(d.service, submit...))

	return r
}

// alwaysReady keeps /health/ready answering READY when nothing else is checked.
func alwaysReady(context.Context) error { return nil }
