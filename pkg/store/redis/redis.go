// Package redis stores records in Redis: a list keeps insertion order and a
// hash maps each id to its JSON document.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"grubdash/pkg/store"
)

// Repository persists records of one resource type under a key prefix.
type Repository[T store.Record] struct {
	client  *redis.Client
	order   string
	records string
}

// New creates a Redis repository using keys "<prefix>:ids" and "<prefix>:records".
func New[T store.Record](client *redis.Client, prefix string) *Repository[T] {
	return &Repository[T]{
		client:  client,
		order:   prefix + ":ids",
		records: prefix + ":records",
	}
}

// Seed inserts records only when the store is empty, so records deleted
// through the API stay deleted across restarts.
func (r *Repository[T]) Seed(ctx context.Context, records ...T) error {
	n, err := r.client.LLen(ctx, r.order).Result()
	if err != nil {
		return err
	}
	if n > 0 {
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

// Create stores the record and appends its id in one transaction.
func (r *Repository[T]) Create(ctx context.Context, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", v.RecordID(), err)
	}
	return r.client.Watch(ctx, func(tx *redis.Tx) error {
		exists, err := tx.HExists(ctx, r.records, v.RecordID()).Result()
		if err != nil {
			return err
		}
		if exists {
			return store.ErrConflict
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, r.records, v.RecordID(), data)
			pipe.RPush(ctx, r.order, v.RecordID())
			return nil
		})
		return err
	}, r.records)
}

// Get retrieves a record by ID.
func (r *Repository[T]) Get(ctx context.Context, id string) (T, error) {
	var v T
	data, err := r.client.HGet(ctx, r.records, id).Bytes()
	if errors.Is(err, redis.Nil) {
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

// List returns all records in insertion order.
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	ids, err := r.client.LRange(ctx, r.order, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	docs, err := r.client.HMGet(ctx, r.records, ids...).Result()
	if err != nil {
		return nil, err
	}
	for i, doc := range docs {
		s, ok := doc.(string)
		if !ok {
			continue
		}
		var v T
		if err := json.Unmarshal([]byte(s), &v); err != nil {
			return nil, fmt.Errorf("decode %s: %w", ids[i], err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Update replaces an existing record.
func (r *Repository[T]) Update(ctx context.Context, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", v.RecordID(), err)
	}
	return r.client.Watch(ctx, func(tx *redis.Tx) error {
		exists, err := tx.HExists(ctx, r.records, v.RecordID()).Result()
		if err != nil {
			return err
		}
		if !exists {
			return store.ErrNotFound
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, r.records, v.RecordID(), data)
			return nil
		})
		return err
	}, r.records)
}

// Delete removes a record by ID.
func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	return r.client.Watch(ctx, func(tx *redis.Tx) error {
		exists, err := tx.HExists(ctx, r.records, id).Result()
		if err != nil {
			return err
		}
		if !exists {
			return store.ErrNotFound
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HDel(ctx, r.records, id)
			pipe.LRem(ctx, r.order, 1, id)
			return nil
		})
		return err
	}, r.records)
}
