package main

import (
	"github.com/dmitrymomot/formrules/pkg/httpserver"
)

// Config is the service configuration read from the environment.
type Config struct {
	AppName      string `env:"APP_NAME" envDefault:"formrules"`
	AppEnv       string `env:"APP_ENV" envDefault:"development"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	RulesDir     string `env:"RULES_DIR" envDefault:"./rules"`
	OpenAPIFile  string `env:"OPENAPI_FILE"`
	MaxBodyBytes int64  `env:"MAX_BODY_BYTES" envDefault:"1048576"`

	HTTP httpserver.Config
}
