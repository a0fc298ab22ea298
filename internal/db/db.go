package db

import (
	"database/sql"
	"fmt"
	"sync/atomic"

	_ "modernc.org/sqlite"
)

const schema = `
	CREATE TABLE IF NOT EXISTS kv (
		key        TEXT PRIMARY KEY,
		value      BLOB NOT NULL,
		updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
	)
`

// Open opens (creating if needed) the sqlite database backing the key-value
// store variant and bootstraps its single table.
func Open(dbPath string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_journal_mode=WAL", dbPath)
	return open(dsn)
}

var testDBSeq atomic.Int64

// OpenForTesting returns a fresh in-memory database with the same schema.
// Each call gets its own namespace so tests stay isolated.
func OpenForTesting() (*sql.DB, error) {
	n := testDBSeq.Add(1)
	return open(fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n))
}

func open(dsn string) (*sql.DB, error) {
	database, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := database.Ping(); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := database.Exec(schema); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to create kv table: %w", err)
	}

	return database, nil
}
