package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema.
const schema = `
CREATE TABLE IF NOT EXISTS employees (
    id            INTEGER PRIMARY KEY,
    first_name    TEXT NOT NULL,
    last_name     TEXT NOT NULL,
    position      TEXT NOT NULL,
    items_managed INTEGER NOT NULL DEFAULT 0 CHECK (items_managed >= 0)
);

CREATE TABLE IF NOT EXISTS items (
    id           INTEGER PRIMARY KEY,
    name         TEXT NOT NULL,
    category     TEXT NOT NULL,
    description  TEXT,
    color        TEXT,
    date_found   DATE NOT NULL DEFAULT CURRENT_DATE,
    found_at     TEXT NOT NULL,
    claim_state  TEXT NOT NULL DEFAULT 'unclaimed' CHECK (claim_state IN ('unclaimed', 'claimed')),
    photo        BLOB,
    photo_mime   TEXT,
    date_updated DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS claims (
    id                  INTEGER PRIMARY KEY,
    item_id             INTEGER NOT NULL REFERENCES items(id) ON DELETE CASCADE,
    claim_date          DATE NOT NULL DEFAULT CURRENT_DATE,
    verification_code   TEXT NOT NULL,
    owner_first_name    TEXT NOT NULL,
    owner_last_name     TEXT NOT NULL,
    verification_status TEXT NOT NULL DEFAULT 'pending' CHECK (verification_status IN ('pending', 'approved', 'rejected')),
    handled_by          INTEGER REFERENCES employees(id) ON DELETE SET NULL
);

CREATE INDEX IF NOT EXISTS idx_claims_item_status
    ON claims(item_id, verification_status);

CREATE TABLE IF NOT EXISTS item_status (
    id          INTEGER PRIMARY KEY,
    item_id     INTEGER NOT NULL REFERENCES items(id) ON DELETE CASCADE,
    status      TEXT NOT NULL,
    status_date DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_item_status_item
    ON item_status(item_id, status_date);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// migrations is a list of SQL statements applied in order after schema
// creation. Each migration must be idempotent. Append new migrations at
// the end.
var migrations = []string{}

// EnsureSchema creates all tables and indexes if they don't already
// exist and applies pending migrations.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}
