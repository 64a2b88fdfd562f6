// Package httpserver runs an http.Handler with graceful shutdown.
//
// Server.Run listens on the configured address and blocks until the context
// is canceled, SIGINT or SIGTERM arrives, or the listener fails. Shutdown
// first cancels the base context shared by every request, so long-lived
// streaming handlers (server-sent events) return promptly, then waits for the
// remaining requests up to the shutdown timeout.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler serves liveness and readiness probes.
package httpserver
