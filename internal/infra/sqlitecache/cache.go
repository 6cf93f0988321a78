// Package sqlitecache keeps the fallback assignment times in a local SQLite
// file so the response window survives restarts.
package sqlitecache

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/usecase/shared"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

const schema = `CREATE TABLE IF NOT EXISTS assigned_at_fallback (
	booking_id  TEXT PRIMARY KEY,
	assigned_at TEXT NOT NULL
)`

type Cache struct {
	db *sql.DB
}

var _ shared.AssignmentTimeCache = (*Cache)(nil)

// Open creates the file and schema if needed. ":memory:" gives a throwaway cache.
func Open(path string) (*Cache, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, errs.Wrap(err, "create cache directory")
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errs.Wrap(err, "open sqlite cache")
	}
	// A single connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`PRAGMA journal_mode=WAL`); err != nil && path != ":memory:" {
		_ = db.Close()
		return nil, errs.Wrap(err, "enable WAL")
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errs.Wrap(err, "migrate sqlite cache")
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) Get(ctx context.Context, bookingID uuid.UUID) (time.Time, bool, error) {
	var raw string
	err := c.db.QueryRowContext(ctx,
		`SELECT assigned_at FROM assigned_at_fallback WHERE booking_id = ?`, bookingID.String(),
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, errs.Wrap(err, "read fallback assignment time")
	}
	at, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, false, errs.Wrapf(err, "corrupt fallback time for %s", bookingID)
	}
	return at, true, nil
}

func (c *Cache) PutIfAbsent(ctx context.Context, bookingID uuid.UUID, at time.Time) (time.Time, bool, error) {
	res, err := c.db.ExecContext(ctx,
		`INSERT INTO assigned_at_fallback (booking_id, assigned_at) VALUES (?, ?)
		 ON CONFLICT(booking_id) DO NOTHING`,
		bookingID.String(), at.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return time.Time{}, false, errs.Wrap(err, "store fallback assignment time")
	}
	if n, _ := res.RowsAffected(); n == 1 {
		return at, true, nil
	}
	stored, ok, err := c.Get(ctx, bookingID)
	if err != nil {
		return time.Time{}, false, err
	}
	if !ok {
		return time.Time{}, false, errs.Newf("fallback time for %s vanished", bookingID)
	}
	return stored, false, nil
}

func (c *Cache) Delete(ctx context.Context, bookingID uuid.UUID) error {
	_, err := c.db.ExecContext(ctx, `DELETE FROM assigned_at_fallback WHERE booking_id = ?`, bookingID.String())
	return errs.Wrap(err, "delete fallback assignment time")
}
