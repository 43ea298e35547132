package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/engajamento/engaja/internal/dbx"
)

// Records is the durable key/value store backing the persisted session
// record. Multi-key writes and deletes are atomic so the session's token
// and user always land (or vanish) together.
type Records interface {
	// Get returns the value for key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// SetAll writes every pair in one transaction.
	SetAll(ctx context.Context, kv map[string][]byte) error

	// DeleteAll removes the given keys in one transaction. Missing keys are
	// not an error.
	DeleteAll(ctx context.Context, keys ...string) error
}

// SQLiteRecords implements Records on the client sqlite database.
type SQLiteRecords struct {
	db *sql.DB
}

func NewSQLiteRecords(db *sql.DB) *SQLiteRecords {
	return &SQLiteRecords{db: db}
}

func (r *SQLiteRecords) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM records WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get record[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRecords) SetAll(ctx context.Context, kv map[string][]byte) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for key, value := range kv {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO records (key, value) VALUES (?, ?)
				ON CONFLICT(key) DO UPDATE SET value = excluded.value
			`, key, value)
			if err != nil {
				return fmt.Errorf("set record[%s]: %w", key, err)
			}
		}
		return nil
	})
}

func (r *SQLiteRecords) DeleteAll(ctx context.Context, keys ...string) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, key := range keys {
			if _, err := tx.ExecContext(ctx, `DELETE FROM records WHERE key = ?`, key); err != nil {
				return fmt.Errorf("delete record[%s]: %w", key, err)
			}
		}
		return nil
	})
}
