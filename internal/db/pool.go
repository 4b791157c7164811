package db

import (
	"context"
	"fmt"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
)

// defaultMaxConns caps the pool for a single service instance.
const defaultMaxConns = 8

type NewDBPoolParams struct {
	DBHost         string
	DBPort         string
	DBName         string
	MaxConns       int32
	TracingEnabled bool
}

// NewDBPool creates the pgx connection pool for the activities database.
// The pool connects lazily, callers ping it themselves to fail fast.
func NewDBPool(ctx context.Context, params NewDBPoolParams) (*pgxpool.Pool, error) {
	if params.MaxConns <= 0 {
		params.MaxConns = defaultMaxConns
	}

	connString := fmt.Sprintf(
		"postgres://postgres@%s:%s/%s?application_name=activity-service&pool_max_conns=%d",
		params.DBHost, params.DBPort, params.DBName, params.MaxConns,
	)
	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}

	if params.TracingEnabled {
		poolConfig.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	return pool, nil
}
