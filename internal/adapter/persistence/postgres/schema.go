// Package postgres stores pipeline stages and reads proposals from PostgreSQL through a
// pgx connection pool. It backs STORE_DRIVER=postgres.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is applied by CreateSchema. Proposal blocks are kept as a JSONB document since
// they are only ever read together with their proposal.
const Schema = `
CREATE TABLE IF NOT EXISTS users (
	id   TEXT PRIMARY KEY,
	name TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS pipeline_stages (
	id          TEXT PRIMARY KEY,
	user_id     TEXT NOT NULL,
	name        TEXT NOT NULL,
	stage_order INTEGER NOT NULL,
	probability INTEGER NOT NULL CHECK (probability BETWEEN 0 AND 100),
	color       TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_pipeline_stages_user ON pipeline_stages (user_id, stage_order);

CREATE TABLE IF NOT EXISTS proposals (
	id                TEXT PRIMARY KEY,
	user_id           TEXT NOT NULL,
	title             TEXT NOT NULL DEFAULT '',
	status            TEXT NOT NULL,
	created_at        TIMESTAMPTZ NOT NULL,
	sent_at           TIMESTAMPTZ,
	first_viewed_at   TIMESTAMPTZ,
	approved_at       TIMESTAMPTZ,
	declined_at       TIMESTAMPTZ,
	estimated_value   DOUBLE PRECISION,
	tax_rate          DOUBLE PRECISION,
	blocks            JSONB NOT NULL DEFAULT '[]',
	pipeline_stage_id TEXT
);

CREATE INDEX IF NOT EXISTS idx_proposals_user_status ON proposals (user_id, status);
`

// CreateSchema creates the tables when they do not exist yet.
func CreateSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
