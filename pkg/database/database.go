// Package database opens the relational store behind the service and provides
// the scoped-transaction helper every repository write goes through.
package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	sqlite "modernc.org/sqlite"
)

type Config struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

func init() {
	// modernc's driver is not known to sqlx; it understands $N placeholders,
	// so named queries rebind the same way as on postgres.
	sqlx.BindDriver("sqlite", sqlx.DOLLAR)
}

// New opens a database handle for the configured URL. The scheme picks the
// driver: postgres:// (or postgresql://) uses lib/pq, sqlite:// uses the
// embedded sqlite backend.
func New(cfg *Config) (*sqlx.DB, error) {
	driver, dsn, err := splitURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}

	if driver == "sqlite" {
		// A single connection serializes writes and keeps :memory:
		// databases from silently forking per connection.
		db.SetMaxOpenConns(1)
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
	} else {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
		db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}

	return db, nil
}

func splitURL(url string) (driver, dsn string, err error) {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return "postgres", url, nil
	case strings.HasPrefix(url, "sqlite://"):
		return "sqlite", strings.TrimPrefix(url, "sqlite://"), nil
	case url == ":memory:", strings.HasPrefix(url, "file:"):
		return "sqlite", url, nil
	default:
		return "", "", fmt.Errorf("unsupported database url %q", url)
	}
}

// WithTx runs fn inside a transaction. The transaction is rolled back on
// error, panic, or context cancellation; it commits only when fn returns nil.
func WithTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// IsConstraintViolation reports whether err is a unique or foreign-key
// violation surfaced by either driver.
func IsConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// Class 23 = integrity constraint violation.
		return pqErr.Code.Class() == "23"
	}
	var sqErr *sqlite.Error
	if errors.As(err, &sqErr) {
		// SQLITE_CONSTRAINT and its extended codes share the low byte 19.
		return sqErr.Code()&0xff == 19
	}
	return false
}
