// Package redis connects to Redis with retries and exposes a readiness
// check. The contact service uses it for the shared rate limit store when
// REDIS_URL is set.
//
//	cfg := redis.Config{ConnectionURL: "redis://localhost:6379/0", RetryAttempts: 3}
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	ready := httpserver.HealthCheckHandler(log, redis.Healthcheck(client))
package redis
