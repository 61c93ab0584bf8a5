// Package config loads typed configuration from environment variables.
//
// Load parses a struct tagged for github.com/caarlos0/env/v11 and caches the
// result per type, so packages may call it freely. On first use it also reads
// a .env file through github.com/joho/godotenv; LoadEnv reads other files
// explicitly and clears the cache.
//
//	type Config struct {
//		AppName string        `env:"APP_NAME" envDefault:"formrules"`
//		Timeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
package config
