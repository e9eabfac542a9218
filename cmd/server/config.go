package main

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Name     string `env:"APP_NAME" envDefault:"school-contact"`
	LogLevel string `env:"LOG_LEVEL"`
}
