package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"
	_ "github.com/jackc/pgx/v5/stdlib" // postgresql driver
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // sqlite driver

	"github.com/umputun/toggler/app/enum"
)

// Store keeps sessions in SQLite or PostgreSQL.
type Store struct {
	db     *sqlx.DB
	dbType enum.Storage
	mu     RWLocker
}

// New creates a new Store with the given database URL.
// Automatically detects database type from URL:
// - postgres:// or postgresql:// -> PostgreSQL
// - everything else -> SQLite
func New(dbURL string) (*Store, error) {
	dbType := DetectStorage(dbURL)
	if dbType == enum.StorageMemory {
		return nil, errors.New("database URL is empty")
	}

	var db *sqlx.DB
	var err error
	var locker RWLocker

	switch dbType {
	case enum.StoragePostgres:
		db, err = connectPostgres(dbURL)
		locker = noopLocker{}
	default:
		db, err = connectSQLite(dbURL)
		locker = &sync.RWMutex{}
	}
	if err != nil {
		return nil, err
	}

	s := &Store{db: db, dbType: dbType, mu: locker}
	if err := s.createSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	log.Printf("[DEBUG] initialized %s session store", s.dbType)
	return s, nil
}

// DetectStorage determines storage type from database URL. Empty URL means in-memory sessions.
func DetectStorage(url string) enum.Storage {
	lower := strings.ToLower(strings.TrimSpace(url))
	switch {
	case lower == "" || lower == "memory":
		return enum.StorageMemory
	case strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://"):
		return enum.StoragePostgres
	default:
		return enum.StorageSQLite
	}
}

// connectSQLite establishes SQLite connection with pragmas.
func connectSQLite(dbPath string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite: %w", err)
	}

	// set pragmas for performance and reliability
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA cache_size=1000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil { //nolint:noctx // init-time, no context available
			_ = db.Close()
			return nil, fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}

	// limit connections for SQLite (single writer)
	db.SetMaxOpenConns(1)
	return db, nil
}

// connectPostgres establishes PostgreSQL connection.
func connectPostgres(dbURL string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	return db, nil
}

// createSchema creates the sessions table and its expiration index if they don't exist.
func (s *Store) createSchema() error {
	tsType := "DATETIME"
	if s.dbType == enum.StoragePostgres {
		tsType = "TIMESTAMP"
	}
	statements := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			mode TEXT NOT NULL,
			status TEXT NOT NULL,
			expires_at ` + tsType + ` NOT NULL,
			updated_at ` + tsType + ` NOT NULL
		)`,
		"CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at)",
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil { //nolint:noctx // init-time, no context available
			return fmt.Errorf("failed to execute schema: %w", err)
		}
	}
	return nil
}

// Get returns the session with the given id.
// Returns ErrNotFound if the session does not exist or is expired.
func (s *Store) Get(ctx context.Context, id string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sess Session
	query := s.adoptQuery("SELECT id, mode, status, expires_at, updated_at FROM sessions WHERE id = ? AND expires_at > ?")
	err := s.db.GetContext(ctx, &sess, query, id, dbTime(time.Now()))
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, ErrNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("failed to get session: %w", err)
	}
	return sess, nil
}

// Set creates or replaces the session.
func (s *Store) Set(ctx context.Context, sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := s.adoptQuery(`
		INSERT INTO sessions (id, mode, status, expires_at, updated_at) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET mode = excluded.mode, status = excluded.status,
			expires_at = excluded.expires_at, updated_at = excluded.updated_at`)
	if _, err := s.db.ExecContext(ctx, query, sess.ID, sess.Mode, sess.Status, dbTime(sess.ExpiresAt), dbTime(time.Now())); err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}
	return nil
}

// Delete removes the session.
// Returns ErrNotFound if the session does not exist.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, s.adoptQuery("DELETE FROM sessions WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteExpired removes all expired sessions and returns the number removed.
func (s *Store) DeleteExpired(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, s.adoptQuery("DELETE FROM sessions WHERE expires_at <= ?"), dbTime(time.Now()))
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check affected rows: %w", err)
	}
	return rows, nil
}

// Count returns the number of live sessions.
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	query := s.adoptQuery("SELECT COUNT(*) FROM sessions WHERE expires_at > ?")
	if err := s.db.GetContext(ctx, &count, query, dbTime(time.Now())); err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return count, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

// dbTime normalizes time for storage: UTC, second precision, so text comparison in sqlite is ordered.
func dbTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

// adoptQuery converts SQLite query syntax to PostgreSQL:
// - placeholders: ? → $1, $2, ...
// - case: excluded. → EXCLUDED.
func (s *Store) adoptQuery(query string) string {
	if s.dbType != enum.StoragePostgres {
		return query
	}

	query = strings.ReplaceAll(query, "excluded.", "EXCLUDED.")

	result := make([]byte, 0, len(query)+10)
	paramNum := 1
	for i := range len(query) {
		if query[i] != '?' {
			result = append(result, query[i])
			continue
		}
		result = append(result, '$')
		result = append(result, strconv.Itoa(paramNum)...)
		paramNum++
	}
	return string(result)
}
