package main

import (
	"context"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	"github.com/UnknownOlympus/athena/internal/client"
	"github.com/UnknownOlympus/athena/internal/config"
	"github.com/UnknownOlympus/athena/internal/directory"
	"github.com/UnknownOlympus/athena/internal/lib/logger/sl"
	"github.com/UnknownOlympus/athena/internal/metrics"
	"github.com/UnknownOlympus/athena/internal/repository"
	"github.com/UnknownOlympus/athena/internal/server"
	"github.com/UnknownOlympus/athena/internal/services/employees"
	"github.com/UnknownOlympus/athena/internal/web"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	var wgr sync.WaitGroup
	delta := 3

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	logger := setupLogger(cfg.Env)

	// Create a separate registry for metrics with exemplar
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	dtb, err := repository.NewDatabase(
		ctx, cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Dbname)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer dtb.Close()

	employeeRepo := repository.NewEmployeeRepository(dtb, appMetrics)
	staff := employees.NewStaff(logger, employeeRepo, appMetrics)
	api := server.NewServer(logger, staff, appMetrics, cfg.HTTP.AllowedOrigins)

	employeeAPI := client.NewEmployeeAPI(client.CreateHTTPClient(logger), cfg.Web.APIURL)
	dir := directory.New(logger, employeeAPI, appMetrics)
	page := server.Chain(web.NewHandler(logger, dir).Routes(),
		server.Recover(logger),
		server.Logging(logger),
		server.SecurityHeaders,
	)

	// The API is bound before the initial load so that a self-hosted
	// directory never races its listener.
	apiListener, err := net.Listen("tcp", ":"+strconv.Itoa(cfg.HTTP.Port))
	if err != nil {
		log.Fatalf("Failed to bind Employee API: %v", err)
	}

	wgr.Add(delta)

	go func() {
		defer wgr.Done()
		server.StartMonitoringServer(ctx, logger, reg, dtb, cfg.Monitoring.Port, cfg.Web.APIURL)
	}()

	go func() {
		defer wgr.Done()
		logger.InfoContext(ctx, "Starting Employee API")
		if err := server.ServeListener(ctx, logger, apiListener, api.Routes(), cfg.HTTP.Timeout); err != nil {
			logger.ErrorContext(ctx, "Employee API failed", sl.Err(err))
		}
		logger.InfoContext(ctx, "Employee API stopped.")
	}()

	go func() {
		defer wgr.Done()

		// The page is served right away and shows the loading state until
		// the initial load completes. A failed load is retried by the next
		// visit or refresh.
		go func() {
			state := dir.Load(ctx)
			logger.InfoContext(ctx, "Initial directory load finished", slog.String("phase", state.Phase.String()))
		}()

		logger.InfoContext(ctx, "Starting Directory page")
		if err := server.Serve(ctx, logger, ":"+strconv.Itoa(cfg.Web.Port), page, cfg.HTTP.Timeout); err != nil {
			logger.ErrorContext(ctx, "Directory page failed", sl.Err(err))
		}
		logger.InfoContext(ctx, "Directory page stopped.")
	}()

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	wgr.Wait()

	logger.InfoContext(ctx, "Application stopped gracefully...")
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelError, ReplaceAttr: dropTime}

	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case envProd:
		opts.Level = slog.LevelWarn
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, opts))
	log.Error(
		"The env parameter was not specified, or was invalid. Logging will be minimal, by default." +
			" Please specify the value of `env`: local, development, production")

	return log
}

// dropTime removes the record timestamp.
func dropTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}
