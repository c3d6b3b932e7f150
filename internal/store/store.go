package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/fourword/internal/logging"
)

//go:embed schema.sql
var schemaSQL string

// Store is the lookup store for valid words.
type Store struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// Option configures Open.
type Option func(*options)

type options struct {
	logger      *slog.Logger
	openTimeout time.Duration
}

// WithLogger sets the logger used for store events.
// Without it, store events are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithOpenTimeout bounds the initial connection check.
// Zero means no timeout beyond ctx.
func WithOpenTimeout(d time.Duration) Option {
	return func(o *options) {
		o.openTimeout = d
	}
}

// Open creates or opens a SQLite database at the given path.
// The parent directory is created when missing.
//
// The database is configured with:
//   - a single pooled connection (one statement at a time)
//   - 5-second busy timeout for lock contention
//
// Open does not create, drop or modify any table. It is safe to call
// repeatedly against the same file; call ResetSchema to prepare the tables.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	o := options{logger: logging.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	s, err := open(ctx, path, o)
	if err != nil {
		o.logger.Error("error opening database", "path", path, "error", err)
		return nil, err
	}

	o.logger.Info("database ready", "path", path)
	return s, nil
}

func open(ctx context.Context, path string, o options) (*Store, error) {
	connErr := func(err error) error {
		return &Error{Code: ErrCodeConnection, Path: path, Err: err}
	}

	if err := ensureParentDir(path); err != nil {
		return nil, connErr(err)
	}

	// Open database (creates file if doesn't exist)
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, connErr(err)
	}

	// SQLite only supports one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pingCtx := ctx
	if o.openTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, o.openTimeout)
		defer cancel()
	}
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, connErr(fmt.Errorf("failed to connect to database: %w", err))
	}

	if err := applyPragmas(pingCtx, db); err != nil {
		db.Close()
		return nil, connErr(fmt.Errorf("failed to apply pragmas: %w", err))
	}

	return &Store{db: db, path: path, logger: o.logger}, nil
}

// ensureParentDir creates the directory holding path. In-memory and URI
// paths are left alone.
func ensureParentDir(path string) error {
	if path == "" || path == ":memory:" || strings.HasPrefix(path, "file:") {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create database directory: %w", err)
	}
	return nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database path given to Open.
func (s *Store) Path() string {
	return s.path
}

// ResetSchema drops and recreates the wordlist and validWords tables.
// Every call erases their contents. The statements run in one transaction,
// so a failure leaves the previous tables in place.
func (s *Store) ResetSchema(ctx context.Context) error {
	if err := s.resetSchema(ctx); err != nil {
		err = &Error{Code: ErrCodeSchema, Path: s.path, Err: err}
		s.logger.Error("error creating word tables", "path", s.path, "error", err)
		return err
	}
	s.logger.Info("word tables created", "path", s.path)
	return nil
}

func (s *Store) resetSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range schemaStatements() {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("execute %q: %w", firstLine(stmt), err)
		}
		s.logger.Debug("schema statement applied", "statement", firstLine(stmt))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// schemaStatements splits the embedded schema into individual statements.
func schemaStatements() []string {
	var stmts []string
	for _, s := range strings.Split(schemaSQL, ";") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		stmts = append(stmts, s)
	}
	return stmts
}

func firstLine(stmt string) string {
	line, _, _ := strings.Cut(stmt, "\n")
	return strings.TrimSuffix(strings.TrimSpace(line), " (")
}
