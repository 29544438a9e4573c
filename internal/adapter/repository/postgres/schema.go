package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS venues (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	map_width  DOUBLE PRECISION NOT NULL DEFAULT 0,
	map_height DOUBLE PRECISION NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS venue_sections (
	venue_id TEXT NOT NULL REFERENCES venues (id) ON DELETE CASCADE,
	id       TEXT NOT NULL,
	label    TEXT NOT NULL,
	position INT  NOT NULL,
	offset_x DOUBLE PRECISION NOT NULL DEFAULT 0,
	offset_y DOUBLE PRECISION NOT NULL DEFAULT 0,
	scale    DOUBLE PRECISION NOT NULL DEFAULT 1,
	PRIMARY KEY (venue_id, id)
);

CREATE TABLE IF NOT EXISTS venue_rows (
	venue_id   TEXT NOT NULL REFERENCES venues (id) ON DELETE CASCADE,
	section_id TEXT NOT NULL,
	row_index  INT  NOT NULL,
	position   INT  NOT NULL,
	PRIMARY KEY (venue_id, section_id, row_index)
);

CREATE TABLE IF NOT EXISTS venue_seats (
	venue_id   TEXT NOT NULL REFERENCES venues (id) ON DELETE CASCADE,
	id         TEXT NOT NULL,
	section_id TEXT NOT NULL,
	row_index  INT  NOT NULL,
	position   INT  NOT NULL,
	col        INT  NOT NULL,
	x          DOUBLE PRECISION NOT NULL DEFAULT 0,
	y          DOUBLE PRECISION NOT NULL DEFAULT 0,
	price_tier INT  NOT NULL,
	status     TEXT NOT NULL,
	PRIMARY KEY (venue_id, id),
	UNIQUE (venue_id, section_id, row_index, col)
);

CREATE TABLE IF NOT EXISTS selection_slots (
	key        TEXT PRIMARY KEY,
	payload    JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// EnsureSchema creates the venue and selection tables when they do not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
