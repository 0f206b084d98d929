// Package storage persists all calculator state in a single-table SQLite
// key/value store, the local-profile equivalent of the browser's
// localStorage. The whole account collection lives as one JSON document
// under a fixed key; the active session pointer and the settings record
// live under their own keys.
package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Fixed keys of the local store documents.
const (
	keyUsers    = "calculatorUsers"
	keySession  = "calculatorCurrentUser"
	keySettings = "calculatorSettings"
)

const schema = `CREATE TABLE IF NOT EXISTS localstore (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL
)`

// Open opens (creating if needed) the local store at the given DSN and
// applies the schema. The caller owns the returned handle.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}
	// A single connection keeps writers serialized and makes an in-memory
	// DSN behave as one database.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to init local store schema: %w", err)
	}
	return db, nil
}
