package formhttp

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/ruleset"
)

type router struct {
	reg         *ruleset.Registry
	logger      *slog.Logger
	maxBodySize int64
	middlewares []func(http.Handler) http.Handler
}

// Option configures the router built by NewRouter.
type Option func(*router)

// WithLogger sets the logger used for request outcomes. Defaults to a logger
// that discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(r *router) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMaxBodySize limits request bodies to n bytes. Non-positive values keep
// DefaultMaxBodySize.
func WithMaxBodySize(n int64) Option {
	return func(r *router) {
		if n > 0 {
			r.maxBodySize = n
		}
	}
}

// WithMiddleware appends middlewares applied to every route, outermost first.
func WithMiddleware(mw ...func(http.Handler) http.Handler) Option {
	return func(r *router) {
		r.middlewares = append(r.middlewares, mw...)
	}
}

// NewRouter exposes the schemas of reg over HTTP:
//
//	GET  /schemas                  names of all schemas
//	GET  /schemas/{name}           the schema definition
//	POST /schemas/{name}/validate  validate the request body
func NewRouter(reg *ruleset.Registry, opts ...Option) http.Handler {
	rt := &router{
		reg:         reg,
		logger:      slog.New(slog.DiscardHandler),
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(rt)
	}
	rt.logger = rt.logger.With(logger.Component("formhttp"))

	mux := chi.NewRouter()
	mux.Use(rt.middlewares...)
	mux.Get("/schemas", rt.listSchemas)
	mux.Get("/schemas/{name}", rt.getSchema)
	mux.Post("/schemas/{name}/validate", rt.validate)
	return mux
}

func (rt *router) listSchemas(w http.ResponseWriter, r *http.Request) {
	rt.write(w, r, http.StatusOK, SchemasResponse{Schemas: rt.reg.Names()})
}

func (rt *router) getSchema(w http.ResponseWriter, r *http.Request) {
	schema, err := rt.reg.Lookup(chi.URLParam(r, "name"))
	if err != nil {
		rt.fail(w, r, err)
		return
	}
	rt.write(w, r, http.StatusOK, schema)
}

func (rt *router) validate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	name := chi.URLParam(r, "name")

	schema, err := rt.reg.Lookup(name)
	if err != nil {
		rt.fail(w, r, err)
		return
	}

	input, err := Bind(r, rt.maxBodySize)
	if err != nil {
		rt.fail(w, r, err)
		return
	}

	errs := schema.Validate(input)
	if errs == nil {
		rt.logger.DebugContext(r.Context(), "form valid",
			logger.Schema(name),
			logger.Duration(time.Since(start)),
		)
		rt.write(w, r, http.StatusOK, ValidResponse{Valid: true})
		return
	}

	rt.logger.InfoContext(r.Context(), "form invalid",
		logger.Schema(name),
		logger.ErrorCount(errs.Len()),
		logger.Duration(time.Since(start)),
	)
	rt.write(w, r, http.StatusUnprocessableEntity, ErrorsResponse{Errors: errs})
}

func (rt *router) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	rt.logger.Log(r.Context(), level, "request rejected",
		slog.Int("status", status),
		logger.Error(err),
	)
	rt.write(w, r, status, ErrorResponse{Error: err.Error()})
}

func (rt *router) write(w http.ResponseWriter, r *http.Request, status int, v any) {
	if err := writeJSON(w, status, v); err != nil {
		rt.logger.ErrorContext(r.Context(), "failed to write response", logger.Error(err))
	}
}
