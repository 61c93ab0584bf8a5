// Package httpserver runs an http.Handler with graceful shutdown.
//
// Server.Run opens the listener, serves until the context is cancelled, the
// process receives SIGINT or SIGTERM, or Shutdown is called, then drains
// in-flight requests within the shutdown timeout. Listen failures are returned
// wrapped in ErrStart and drain failures in ErrShutdown.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, handler); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// HealthCheckHandler serves liveness ("ALIVE") and readiness ("READY" or 503
// "NOT_READY") probes.
package httpserver
