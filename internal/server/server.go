// Package server exposes the employee access layer over HTTP and hosts the
// monitoring endpoints.
package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/UnknownOlympus/athena/internal/metrics"
	"github.com/UnknownOlympus/athena/internal/models"
	"github.com/UnknownOlympus/athena/internal/services/employees"
)

// LivenessMessage is the body served on the root path.
const LivenessMessage = "API is running..."

// EmployeeService is the access layer the router dispatches to.
type EmployeeService interface {
	Create(ctx context.Context, input *models.EmployeeInput) (models.Employee, error)
	ListAll(ctx context.Context) ([]models.Employee, error)
	GetByID(ctx context.Context, identifier string) (models.Employee, error)
	Update(ctx context.Context, identifier string, patch *models.EmployeePatch) (models.Employee, error)
	Delete(ctx context.Context, identifier string) error
	Import(ctx context.Context, reader io.Reader, filename string) (employees.ImportReport, error)
	Export(ctx context.Context, writer io.Writer) error
}

// Server maps HTTP requests to EmployeeService calls.
type Server struct {
	log            *slog.Logger
	staff          EmployeeService
	metrics        *metrics.Metrics
	allowedOrigins []string
}

func NewServer(log *slog.Logger, staff EmployeeService, metrics *metrics.Metrics, allowedOrigins []string) *Server {
	return &Server{log: log, staff: staff, metrics: metrics, allowedOrigins: allowedOrigins}
}

// Routes returns the API handler with the full middleware chain applied.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleLiveness)

	mux.HandleFunc("POST /employees", s.handleCreate)
	mux.HandleFunc("GET /employees", s.handleList)
	mux.HandleFunc("POST /employees/import", s.handleImport)
	mux.HandleFunc("GET /employees/export", s.handleExport)
	mux.HandleFunc("GET /employees/{id}", s.handleGet)
	mux.HandleFunc("PUT /employees/{id}", s.handleUpdate)
	mux.HandleFunc("DELETE /employees/{id}", s.handleDelete)

	return Chain(mux,
		Recover(s.log),
		Logging(s.log),
		Instrument(s.metrics),
		CORS(s.allowedOrigins),
		SecurityHeaders,
	)
}

func (s *Server) handleLiveness(writer http.ResponseWriter, _ *http.Request) {
	writer.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(writer, LivenessMessage)
}
