// Package store persists the bearer tokens of web sessions in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and returns a Store.
// Use ":memory:" for an in-memory database (useful in tests).
func NewSQLiteStore(dbPath string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}

	// Every connection to :memory: is a separate database.
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma wal: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma busy_timeout: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		logger: logger.With("component", "store"),
	}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Migrate creates all required tables and indexes.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	s.logger.Debug("sql", "op", "migrate")
	return migrate(ctx, s.db)
}

// --- Credential operations ---

func (s *SQLiteStore) CreateCredential(ctx context.Context, c *Credential) error {
	s.logger.Debug("sql", "op", "insert", "table", "credentials", "id", c.ID)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO credentials (id, token, created_at, expires_at) VALUES (?, ?, ?, ?)`,
		c.ID, c.Token, c.CreatedAt.Unix(), c.ExpiresAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert credential: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetCredential(ctx context.Context, id string) (*Credential, error) {
	s.logger.Debug("sql", "op", "select", "table", "credentials", "id", id)

	var c Credential
	var createdAt, expiresAt int64

	err := s.db.QueryRowContext(ctx,
		`SELECT id, token, created_at, expires_at FROM credentials WHERE id = ?`, id,
	).Scan(&c.ID, &c.Token, &createdAt, &expiresAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select credential: %w", err)
	}

	c.CreatedAt = time.Unix(createdAt, 0)
	c.ExpiresAt = time.Unix(expiresAt, 0)
	return &c, nil
}

func (s *SQLiteStore) DeleteCredential(ctx context.Context, id string) error {
	s.logger.Debug("sql", "op", "delete", "table", "credentials", "id", id)

	if _, err := s.db.ExecContext(ctx, `DELETE FROM credentials WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	return nil
}

func (s *SQLiteStore) DeleteExpiredCredentials(ctx context.Context) (int64, error) {
	s.logger.Debug("sql", "op", "delete_expired", "table", "credentials")

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM credentials WHERE expires_at < ?`, time.Now().Unix())
	if err != nil {
		return 0, fmt.Errorf("delete expired credentials: %w", err)
	}
	return result.RowsAffected()
}

// Sweep deletes expired credentials every interval until ctx is done.
func Sweep(ctx context.Context, st Store, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := st.DeleteExpiredCredentials(ctx)
			if err != nil {
				logger.Error("credential sweep failed", "error", err)
				continue
			}
			if n > 0 {
				logger.Info("expired credentials removed", "count", n)
			}
		}
	}
}
