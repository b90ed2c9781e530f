//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/UnknownOlympus/athena/internal/metrics"
	"github.com/UnknownOlympus/athena/internal/models"
	"github.com/UnknownOlympus/athena/internal/repository"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestEmployeeRepository_Postgres(t *testing.T) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("athena"),
		postgres.WithUsername("athena"),
		postgres.WithPassword("athena"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute)),
	)
	testcontainers.CleanupContainer(t, pgContainer)
	require.NoError(t, err)

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	pool, err := repository.NewDatabase(ctx, host, port.Port(), "athena", "athena", "athena")
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(stdlib.OpenDBFromPool(pool), "../../migrations"))

	repo := repository.NewEmployeeRepository(pool, metrics.NewMetrics(prometheus.NewRegistry()))

	created, err := repo.CreateEmployee(ctx, models.EmployeeInput{
		EmployeeName:  "Alice Smith",
		Department:    "Engineering",
		ContactNumber: "+15550100",
		Designation:   "Backend Engineer",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	other, err := repo.CreateEmployee(ctx, models.EmployeeInput{
		EmployeeName:  "Bob Lee",
		Department:    "Sales",
		ContactNumber: "+15550101",
		Designation:   "Account Executive",
	})
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, other.ID)

	designation := "Staff Engineer"
	updated, err := repo.UpdateEmployee(ctx, created.ID, models.EmployeePatch{Designation: &designation})
	require.NoError(t, err)
	assert.Equal(t, designation, updated.Designation)
	assert.Equal(t, created.EmployeeName, updated.EmployeeName)
	assert.Equal(t, created.ContactNumber, updated.ContactNumber)

	fetched, err := repo.GetEmployeeByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.Designation, fetched.Designation)

	all, err := repo.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, created.ID, all[0].ID)

	require.NoError(t, repo.DeleteEmployee(ctx, created.ID))
	_, err = repo.GetEmployeeByID(ctx, created.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)
	require.ErrorIs(t, repo.DeleteEmployee(ctx, created.ID), repository.ErrNotFound)

	all, err = repo.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, other.ID, all[0].ID)
}
