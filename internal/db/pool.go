// Package db implements the durable side of the allocator on PostgreSQL.
// Subnet and pool-name uniqueness live in the schema as constraints; the
// repositories translate constraint violations into the domain's
// conflict errors so the allocation coordinator can tell a retryable
// subnet race from a fatal name collision.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}
	return pool, nil
}
