// Package config loads typed configuration from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct-tag parsing and
// github.com/joho/godotenv for optional .env files. Every component of the
// contact service owns a small Config struct with `env` and `envDefault`
// tags; cmd/server loads each of them through Load:
//
//	var emailCfg email.Config
//	config.MustLoad(&emailCfg)
//
// Parsed values are cached per type, so repeated loads are cheap and return
// the same values for the lifetime of the process. ResetCache clears the
// cache in tests.
package config
