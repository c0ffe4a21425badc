package slugstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ConnectPostgres opens a pool for cfg and pings it, backing off linearly
// between attempts.
func ConnectPostgres(ctx context.Context, cfg PostgresConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnectionString)
	if err != nil {
		return nil, errors.Join(ErrInvalidConnectionURL, err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	var lastErr error
	for i := range max(cfg.RetryAttempts, 1) {
		pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				return pool, nil
			}
			pool.Close()
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrNotReady, ctx.Err())
		case <-time.After(time.Duration(i+1) * cfg.RetryInterval):
		}
	}

	return nil, errors.Join(ErrNotReady, lastErr)
}

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresColumn checks slugs against one column of a table.
type PostgresColumn struct {
	db    Querier
	query string
}

// NewPostgresColumn returns a PostgresColumn for table.column. Both names are
// quoted as identifiers; table may be schema-qualified ("public.articles").
func NewPostgresColumn(db Querier, table, column string) (*PostgresColumn, error) {
	if table == "" || column == "" {
		return nil, ErrInvalidIdentifier
	}
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)",
		pgx.Identifier(strings.Split(table, ".")).Sanitize(),
		pgx.Identifier{column}.Sanitize(),
	)
	return &PostgresColumn{db: db, query: query}, nil
}

// Exists reports whether a row already holds slug. It satisfies slug.ExistsFunc.
func (p *PostgresColumn) Exists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	if err := p.db.QueryRow(ctx, p.query, slug).Scan(&exists); err != nil {
		return false, errors.Join(ErrLookupFailed, err)
	}
	return exists, nil
}

// IsDuplicateSlug reports whether err is a unique constraint violation
// (SQLSTATE 23505), the signal that another writer stored the slug first.
func IsDuplicateSlug(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
