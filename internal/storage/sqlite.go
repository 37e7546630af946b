// Package storage implements durable expense persistence on SQLite.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/expense-tracker/internal/logging"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// ErrNotFound is returned when a point lookup misses.
var ErrNotFound = errors.New("expense not found")

// SQLiteStorage implements expense persistence using SQLite.
type SQLiteStorage struct {
	db     *sql.DB
	dbPath string
	logger logging.Logger
}

// NewSQLiteStorage opens (or creates) the database at dbPath and applies
// the schema. Use ":memory:" for an ephemeral database in tests.
func NewSQLiteStorage(dbPath string, logger logging.Logger) (*SQLiteStorage, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath must not be empty")
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	if dbPath != ":memory:" {
		if dir := filepath.Dir(dbPath); dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite does not benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLiteStorage{db: db, dbPath: dbPath, logger: logger}
	if err := s.migrate(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

func (s *SQLiteStorage) migrate(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS expenses (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	description    TEXT NOT NULL,
	amount         TEXT NOT NULL,
	category       TEXT NOT NULL,
	subcategory    TEXT NOT NULL DEFAULT '',
	date           TIMESTAMP NOT NULL,
	raw_text       TEXT NOT NULL DEFAULT '',
	tags           TEXT NOT NULL DEFAULT '[]',
	notes          TEXT NOT NULL DEFAULT '',
	location       TEXT NOT NULL DEFAULT '',
	payment_method TEXT NOT NULL DEFAULT '',
	is_recurring   INTEGER NOT NULL DEFAULT 0,
	created_at     TIMESTAMP NOT NULL,
	updated_at     TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_expenses_category ON expenses(category);
CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date);
`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	s.logger.WithField(logging.FieldFile, s.dbPath).Debug("Database schema ready")
	return nil
}
