package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/formrules/pkg/clientip"
	"github.com/dmitrymomot/formrules/pkg/environment"
	"github.com/dmitrymomot/formrules/pkg/formhttp"
	"github.com/dmitrymomot/formrules/pkg/httpserver"
	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/requestid"
	"github.com/dmitrymomot/formrules/pkg/ruleset"
)

var errNoSchemas = errors.New("no schemas loaded")

func newLogger(cfg Config, out io.Writer) (*slog.Logger, environment.Environment, error) {
	env, err := environment.Parse(cfg.AppEnv)
	if err != nil {
		return nil, "", err
	}
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, "", err
	}
	log := logger.New(
		logger.WithEnvironment(env, cfg.AppName),
		logger.WithLevel(level),
		logger.WithOutput(out),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	return log, env, nil
}

// loadRegistry reads every rule document under cfg.RulesDir and, when set, the
// OpenAPI document at cfg.OpenAPIFile. A missing rules directory is logged and
// skipped.
func loadRegistry(ctx context.Context, cfg Config, log *slog.Logger) (*ruleset.Registry, error) {
	start := time.Now()
	reg := ruleset.NewRegistry()

	if cfg.RulesDir != "" {
		info, err := os.Stat(cfg.RulesDir)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.WarnContext(ctx, "rules directory not found", logger.Path(cfg.RulesDir))
		case err != nil:
			return nil, fmt.Errorf("stat rules directory: %w", err)
		case !info.IsDir():
			return nil, fmt.Errorf("rules path %s is not a directory", cfg.RulesDir)
		default:
			if err := reg.LoadFS(ctx, os.DirFS(cfg.RulesDir)); err != nil {
				return nil, err
			}
		}
	}

	if cfg.OpenAPIFile != "" {
		if err := reg.LoadFile(ctx, cfg.OpenAPIFile, ruleset.NewOpenAPIParser()); err != nil {
			return nil, err
		}
	}

	log.InfoContext(ctx, "schemas loaded",
		logger.Count(reg.Len()),
		logger.Duration(time.Since(start)),
	)
	return reg, nil
}

func newHandler(cfg Config, env environment.Environment, reg *ruleset.Registry, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware, clientip.Middleware, environment.Middleware(env))

	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, func(context.Context) error {
		if reg.Len() == 0 {
			return errNoSchemas
		}
		return nil
	}))
	r.Mount("/", formhttp.NewRouter(reg,
		formhttp.WithLogger(log),
		formhttp.WithMaxBodySize(cfg.MaxBodyBytes),
	))
	return r
}

func run(ctx context.Context, cfg Config, out io.Writer) error {
	log, env, err := newLogger(cfg, out)
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	reg, err := loadRegistry(ctx, cfg, log)
	if err != nil {
		log.ErrorContext(ctx, "failed to load schemas", logger.Error(err))
		return err
	}

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, newHandler(cfg, env, reg, log)); err != nil {
		log.ErrorContext(ctx, "http server failed", logger.Error(err))
		return err
	}
	return nil
}
