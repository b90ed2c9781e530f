package repository

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool tuning for a small, read-mostly service.
const (
	connectTimeout    = 5 * time.Second
	minConns          = 2
	maxConnIdleTime   = 30 * time.Second
	healthCheckPeriod = 30 * time.Second
)

// Database is the subset of *pgxpool.Pool the repositories use.
type Database interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DSN builds a PostgreSQL connection URL, escaping the credentials.
func DSN(host, port, username, password, dbName string) string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(username, password),
		Host:     net.JoinHostPort(host, port),
		Path:     "/" + dbName,
		RawQuery: "sslmode=disable",
	}

	return dsn.String()
}

// NewDatabase opens a connection pool and verifies it with a ping.
func NewDatabase(ctx context.Context, host, port, username, password, dbName string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(DSN(host, port, username, password, dbName))
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MinConns = minConns
	poolConfig.MaxConnIdleTime = maxConnIdleTime
	poolConfig.HealthCheckPeriod = healthCheckPeriod

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	dbpool, err := pgxpool.NewWithConfig(connectCtx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection to PostgreSQL: %w", err)
	}

	if err = dbpool.Ping(connectCtx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("failed to ping PostgreSQL DB: %w", err)
	}

	return dbpool, nil
}
