// Package postgres persists interview sessions in PostgreSQL via pgx.
package postgres

import (
	"context"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool creates a pgx connection pool from the provided DSN and returns it.
// The pool is configured with sane defaults for this application.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = 10
	cfg.MaxConnIdleTime = 5 * time.Minute
	cfg.ConnConfig.Tracer = otelpgx.NewTracer()
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return pool, nil
}

// InitSchema creates the interviews table when absent. The original system
// did the same at startup; there is no separate migration pipeline.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS interviews (
			id TEXT PRIMARY KEY,
			candidate_name TEXT NOT NULL,
			job_role TEXT NOT NULL DEFAULT 'software_engineer',
			status TEXT NOT NULL DEFAULT 'in_progress',
			overall_score DOUBLE PRECISION NOT NULL DEFAULT 0,
			total_questions INTEGER NOT NULL DEFAULT 0,
			completed_questions INTEGER NOT NULL DEFAULT 0,
			questions JSONB NOT NULL DEFAULT '[]',
			responses JSONB NOT NULL DEFAULT '[]',
			resume_report JSONB,
			questions_source TEXT NOT NULL DEFAULT '',
			started_at TIMESTAMPTZ NOT NULL,
			completed_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	return err
}
