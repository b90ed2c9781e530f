package repository

import (
	"context"
	"errors"

	"github.com/UnknownOlympus/athena/internal/metrics"
	"github.com/UnknownOlympus/athena/internal/models"
)

// ErrNotFound is returned when no employee row matches the requested identifier.
var ErrNotFound = errors.New("employee not found")

type Repository struct {
	db      Database
	metrics *metrics.Metrics
}

// EmployeeRepoIface represents the interface for interacting with employee data in the repository.
type EmployeeRepoIface interface {
	CreateEmployee(ctx context.Context, input models.EmployeeInput) (models.Employee, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployeeByID(ctx context.Context, identifier string) (models.Employee, error)
	UpdateEmployee(ctx context.Context, identifier string, patch models.EmployeePatch) (models.Employee, error)
	DeleteEmployee(ctx context.Context, identifier string) error
}

func NewEmployeeRepository(db Database, metrics *metrics.Metrics) EmployeeRepoIface {
	return &Repository{db: db, metrics: metrics}
}
