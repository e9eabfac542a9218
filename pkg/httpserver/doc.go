// Package httpserver wraps net/http with graceful shutdown and probe handlers.
//
// Run blocks until the supplied context is cancelled or SIGINT/SIGTERM
// arrives, then calls http.Server.Shutdown bounded by the configured
// shutdown timeout. HealthCheckHandler backs the /health/live and
// /health/ready routes of the contact service.
package httpserver
