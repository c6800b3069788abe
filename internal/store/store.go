// Package store persists word records and the review log in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/sirupsen/logrus"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store owns the database handle and the ent SQL driver wrapped around it.
type Store struct {
	db     *sql.DB
	drv    *entsql.Driver
	logger logrus.FieldLogger
}

// Open connects to the SQLite database at dsn, applies pragmas and creates
// missing tables. A nil logger discards output.
func Open(ctx context.Context, dsn string, logger logrus.FieldLogger) (*Store, error) {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Pragmas are per connection and SQLite has a single writer anyway.
	db.SetMaxOpenConns(1)
	if err := applyPragmas(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	s := &Store{
		db:     db,
		drv:    entsql.OpenDB(dialect.SQLite, db),
		logger: logger.WithField("component", "store"),
	}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.drv.Close()
}

func applyPragmas(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (s *Store) migrate(ctx context.Context) error {
	tables := []*entsql.TableBuilder{wordsTable(), reviewsTable()}
	for _, t := range tables {
		query, args := t.Query()
		if err := s.drv.Exec(ctx, query, args, nil); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	s.logger.WithField("tables", len(tables)).Debug("schema ready")
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. LEXIS_DB environment variable
// 2. $XDG_DATA_HOME/lexis/lexis.db
// 3. ~/.local/share/lexis/lexis.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("LEXIS_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "lexis", "lexis.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
