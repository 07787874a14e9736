// Package httpserver runs an http.Handler with configured timeouts and a
// graceful shutdown.
//
// Run binds the listener, fires the start hooks, serves until the context
// is cancelled or the process receives SIGINT/SIGTERM, then calls
// http.Server.Shutdown bounded by the shutdown timeout and fires the stop
// hooks. Start failures are joined with ErrStart, shutdown failures with
// ErrShutdown.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP,
//		httpserver.WithLogger(log),
//		httpserver.WithDrainHook(func() { _ = registry.Close() }),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler serves liveness and readiness probes.
//
// Long-lived SSE streams are cut by WriteTimeout; keep it at zero when the
// handler serves event streams, and end them with WithDrainHook so Shutdown
// doesn't wait for them.
package httpserver
