package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Queries are written with ? placeholders and rebound to the executor's driver
// ($N for postgres).

func sqlxSelect(ctx context.Context, exec Executor, dest interface{}, query string, args ...interface{}) error {
	return sqlx.SelectContext(ctx, exec, dest, exec.Rebind(query), args...)
}

func sqlxGet(ctx context.Context, exec Executor, dest interface{}, query string, args ...interface{}) error {
	return sqlx.GetContext(ctx, exec, dest, exec.Rebind(query), args...)
}
