package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/UnknownOlympus/athena/internal/lib/logger/sl"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

// MonitoringHandler serves Prometheus metrics and the health endpoint.
func MonitoringHandler(log *slog.Logger, reg *prometheus.Registry, db DBPinger, apiURL string) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	mux.Handle("/healthz", NewHealthChecker(db, apiURL, log))
	return mux
}

// StartMonitoringServer serves MonitoringHandler on port until ctx is cancelled.
func StartMonitoringServer(
	ctx context.Context,
	log *slog.Logger,
	reg *prometheus.Registry,
	db DBPinger,
	port int,
	apiURL string,
) {
	addr := ":" + strconv.Itoa(port)
	if err := Serve(ctx, log, addr, MonitoringHandler(log, reg, db, apiURL), shutdownTimeout); err != nil {
		log.ErrorContext(ctx, "Monitoring server failed", sl.Err(err))
	}
}

// Serve runs handler on addr until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, log *slog.Logger, addr string, handler http.Handler, timeout time.Duration) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	return ServeListener(ctx, log, ln, handler, timeout)
}

// ServeListener is Serve on an already bound listener. Connections made
// between binding and serving wait in the accept queue.
func ServeListener(
	ctx context.Context,
	log *slog.Logger,
	ln net.Listener,
	handler http.Handler,
	timeout time.Duration,
) error {
	addr := ln.Addr().String()
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "HTTP server listening", "addr", addr)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.InfoContext(ctx, "HTTP server stopped", "addr", addr)

	return nil
}
