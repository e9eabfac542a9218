// Package logger builds *slog.Logger instances for the contact service.
//
// New takes functional options that select the output format (JSON or text),
// the minimum level, static attributes and context extractors. Extractors run
// on every record, which is how the request ID set by the requestid middleware
// ends up in every log line written while handling a request:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, cfg.Name),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
// The attribute helpers in attr.go (Error, Component, Leg, Category, ...)
// keep key names consistent across packages.
package logger
