package server

import (
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/UnknownOlympus/athena/internal/metrics"
)

// Chain wraps handler with middleware; the first middleware is the outermost.
func Chain(handler http.Handler, middleware ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middleware) - 1; i >= 0; i-- {
		handler = middleware[i](handler)
	}
	return handler
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

func record(writer http.ResponseWriter) *statusRecorder {
	if rec, ok := writer.(*statusRecorder); ok {
		return rec
	}
	return &statusRecorder{ResponseWriter: writer, status: http.StatusOK}
}

// Recover turns a panicking handler into a 500 response.
func Recover(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, req *http.Request) {
			defer func() {
				if rcv := recover(); rcv != nil {
					log.ErrorContext(req.Context(), "Handler panicked", "path", req.URL.Path, "panic", rcv)
					writeError(writer, http.StatusInternalServerError, "internal server error")
				}
			}()
			next.ServeHTTP(writer, req)
		})
	}
}

// Logging writes one debug line per request.
func Logging(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, req *http.Request) {
			startTime := time.Now()
			rec := record(writer)

			next.ServeHTTP(rec, req)

			log.DebugContext(req.Context(), "Request served",
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
				slog.Int("status", rec.status),
				slog.Duration("duration", time.Since(startTime)),
			)
		})
	}
}

// Instrument records request counts and latencies labelled with the matched route pattern.
func Instrument(appMetrics *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, req *http.Request) {
			startTime := time.Now()
			rec := record(writer)

			next.ServeHTTP(rec, req)

			route := req.Pattern
			if route == "" {
				route = "unmatched"
			}
			appMetrics.HTTPRequests.WithLabelValues(req.Method, route, strconv.Itoa(rec.status)).Inc()
			appMetrics.HTTPRequestDuration.WithLabelValues(req.Method, route).Observe(time.Since(startTime).Seconds())
		})
	}
}

// CORS allows cross-origin calls from the configured origins and answers preflight requests.
// An origin list containing "*" allows every origin.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	allowAll := slices.Contains(allowedOrigins, "*")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, req *http.Request) {
			origin := req.Header.Get("Origin")
			switch {
			case allowAll:
				writer.Header().Set("Access-Control-Allow-Origin", "*")
			case origin != "" && slices.Contains(allowedOrigins, origin):
				writer.Header().Set("Access-Control-Allow-Origin", origin)
				writer.Header().Add("Vary", "Origin")
			}

			if req.Method == http.MethodOptions && req.Header.Get("Access-Control-Request-Method") != "" {
				writer.Header().Set("Access-Control-Allow-Methods",
					strings.Join([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}, ", "))
				writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
				writer.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(writer, req)
		})
	}
}

// SecurityHeaders sets the static hardening headers on every response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, req *http.Request) {
		writer.Header().Set("X-Content-Type-Options", "nosniff")
		writer.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(writer, req)
	})
}
