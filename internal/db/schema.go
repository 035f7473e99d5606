package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. Uniqueness of garment and label names,
// usernames, and the (garment_id, label_id) association pair is enforced
// here; handler-level pre-checks are only a fast path.
const schema = `
CREATE TABLE IF NOT EXISTS garments (
    id         INTEGER PRIMARY KEY,
    name       TEXT NOT NULL UNIQUE,
    type       TEXT NOT NULL CHECK (type IN ('image', 'audio', 'video', 'pdf')),
    content    BLOB NOT NULL,
    damaged    INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS users (
    id            INTEGER PRIMARY KEY,
    username      TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    role          TEXT NOT NULL CHECK (role IN ('wardrobe_keeper', 'dancer', 'musician')),
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS comments (
    id         INTEGER PRIMARY KEY,
    garment_id INTEGER NOT NULL REFERENCES garments(id) ON DELETE CASCADE,
    author_id  INTEGER REFERENCES users(id),
    text       TEXT NOT NULL,
    damaged    INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS labels (
    id       INTEGER PRIMARY KEY,
    name     TEXT NOT NULL UNIQUE,
    category TEXT NOT NULL CHECK (category IN ('region', 'garment_type', 'gender', 'size', 'other'))
);

CREATE TABLE IF NOT EXISTS garment_labels (
    garment_id INTEGER NOT NULL REFERENCES garments(id) ON DELETE CASCADE,
    label_id   INTEGER NOT NULL REFERENCES labels(id) ON DELETE CASCADE,
    PRIMARY KEY (garment_id, label_id)
);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
