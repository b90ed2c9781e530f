package server_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/UnknownOlympus/athena/internal/server"
	"github.com/stretchr/testify/assert"
)

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(_ context.Context) error {
	return f.err
}

func apiStub(t *testing.T, status int) string {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)

	return srv.URL
}

func TestHealthChecker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		dbErr    error
		apiURL   func(t *testing.T) string
		wantCode int
		wantBody string
	}{
		{
			name:     "all systems ok",
			apiURL:   func(t *testing.T) string { return apiStub(t, http.StatusOK) },
			wantCode: http.StatusOK,
			wantBody: `{"database":"ok","api":"ok"}`,
		},
		{
			name:     "database unavailable",
			dbErr:    assert.AnError,
			apiURL:   func(t *testing.T) string { return apiStub(t, http.StatusOK) },
			wantCode: http.StatusServiceUnavailable,
			wantBody: `{"database":"unavailable","api":"ok"}`,
		},
		{
			name:     "api degraded",
			apiURL:   func(t *testing.T) string { return apiStub(t, http.StatusInternalServerError) },
			wantCode: http.StatusServiceUnavailable,
			wantBody: `{"database":"ok","api":"degraded"}`,
		},
		{
			name:     "api unreachable",
			apiURL:   func(*testing.T) string { return "invalid_url" },
			wantCode: http.StatusServiceUnavailable,
			wantBody: `{"database":"ok","api":"unreachable"}`,
		},
		{
			name:     "api check disabled",
			apiURL:   func(*testing.T) string { return "" },
			wantCode: http.StatusOK,
			wantBody: `{"database":"ok"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			checker := server.NewHealthChecker(fakePinger{err: tt.dbErr}, tt.apiURL(t), slog.New(slog.DiscardHandler))
			rec := httptest.NewRecorder()

			checker.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
