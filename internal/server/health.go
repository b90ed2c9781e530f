package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/UnknownOlympus/athena/internal/lib/logger/sl"
)

const (
	healthOK          = "ok"
	healthUnavailable = "unavailable"
	healthDegraded    = "degraded"
	healthUnreachable = "unreachable"

	apiProbeTimeout = 5 * time.Second
)

type DBPinger interface {
	Ping(ctx context.Context) error
}

// healthCheck probes one component; a non-nil error marks it unhealthy.
type healthCheck struct {
	name  string
	probe func(ctx context.Context) (string, error)
}

// HealthChecker reports the state of the database and, when configured,
// of the employee API the directory front-end reads from.
type HealthChecker struct {
	log    *slog.Logger
	checks []healthCheck
}

func NewHealthChecker(db DBPinger, apiURL string, log *slog.Logger) *HealthChecker {
	checker := &HealthChecker{log: log}

	checker.checks = append(checker.checks, healthCheck{
		name: "database",
		probe: func(ctx context.Context) (string, error) {
			if err := db.Ping(ctx); err != nil {
				return healthUnavailable, err
			}
			return healthOK, nil
		},
	})

	if apiURL != "" {
		httpClient := &http.Client{Timeout: apiProbeTimeout}
		checker.checks = append(checker.checks, healthCheck{
			name:  "api",
			probe: func(ctx context.Context) (string, error) { return probeAPI(ctx, httpClient, apiURL) },
		})
	}

	return checker
}

func (h *HealthChecker) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	status := make(map[string]string, len(h.checks))
	code := http.StatusOK

	for _, check := range h.checks {
		state, err := check.probe(ctx)
		status[check.name] = state
		if err != nil {
			code = http.StatusServiceUnavailable
			h.log.WarnContext(ctx, "Health check failed", slog.String("component", check.name), sl.Err(err))
		}
	}

	writeJSON(writer, code, status)
	h.log.DebugContext(ctx, "Health checks completed", slog.Int("status", code))
}

func probeAPI(ctx context.Context, httpClient *http.Client, apiURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return healthUnreachable, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return healthUnreachable, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return healthDegraded, fmt.Errorf("api answered with status %d", resp.StatusCode)
	}

	return healthOK, nil
}
