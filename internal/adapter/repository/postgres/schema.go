package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS reservations (
	id               TEXT PRIMARY KEY,
	user_id          TEXT NOT NULL,
	event_id         TEXT NOT NULL DEFAULT '',
	reservation_date TEXT NOT NULL DEFAULT '',
	status           TEXT NOT NULL,
	title            TEXT NOT NULL DEFAULT '',
	event_date       TIMESTAMPTZ,
	localisation     TEXT NOT NULL DEFAULT '',
	updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_reservations_user_status ON reservations (user_id, status);
`

// Migrate creates the local reservation table when it does not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply reservations schema: %w", err)
	}
	return nil
}
