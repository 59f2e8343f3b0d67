// Package postgres stores records as JSONB documents in PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"grubdash/pkg/store"
)

const uniqueViolation = "23505"

// Repository persists records of one resource type in its own table.
type Repository[T store.Record] struct {
	db    *sql.DB
	table string
}

// New creates a PostgreSQL repository over table. Call Migrate before use
// unless the table already exists.
func New[T store.Record](db *sql.DB, table string) *Repository[T] {
	return &Repository[T]{db: db, table: pq.QuoteIdentifier(table)}
}

// Migrate creates the backing table. The position column keeps list order
// stable across updates.
func (r *Repository[T]) Migrate(ctx context.Context) error {
	q := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		position BIGSERIAL,
		id TEXT PRIMARY KEY,
		data JSONB NOT NULL
	)`, r.table)
	if _, err := r.db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("migrate %s: %w", r.table, err)
	}
	return nil
}

// Seed inserts records only when the table is empty, so records deleted
// through the API stay deleted across restarts.
func (r *Repository[T]) Seed(ctx context.Context, records ...T) error {
	var populated bool
	q := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s)", r.table)
	if err := r.db.QueryRowContext(ctx, q).Scan(&populated); err != nil {
		return fmt.Errorf("check %s: %w", r.table, err)
	}
	if populated {
		return nil
	}
	for _, v := range records {
		err := r.Create(ctx, v)
		if err != nil && !errors.Is(err, store.ErrConflict) {
			return err
		}
	}
	return nil
}

// Create inserts a new record.
func (r *Repository[T]) Create(ctx context.Context, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", v.RecordID(), err)
	}
	q := fmt.Sprintf("INSERT INTO %s (id, data) VALUES ($1, $2)", r.table)
	_, err = r.db.ExecContext(ctx, q, v.RecordID(), data)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return store.ErrConflict
	}
	return err
}

// Get retrieves a record by ID.
func (r *Repository[T]) Get(ctx context.Context, id string) (T, error) {
	var (
		v    T
		data []byte
	)
	q := fmt.Sprintf("SELECT data FROM %s WHERE id=$1", r.table)
	err := r.db.QueryRowContext(ctx, q, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return v, store.ErrNotFound
	}
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("decode %s: %w", id, err)
	}
	return v, nil
}

// List fetches all records in insertion order.
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	q := fmt.Sprintf("SELECT data FROM %s ORDER BY position", r.table)
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []T{}
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decode row: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Update replaces an existing record.
func (r *Repository[T]) Update(ctx context.Context, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", v.RecordID(), err)
	}
	q := fmt.Sprintf("UPDATE %s SET data=$2 WHERE id=$1", r.table)
	res, err := r.db.ExecContext(ctx, q, v.RecordID(), data)
	if err != nil {
		return err
	}
	return affected(res)
}

// Delete removes a record by ID.
func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	q := fmt.Sprintf("DELETE FROM %s WHERE id=$1", r.table)
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	return affected(res)
}

func affected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
