// Package memory implements an in-memory, insertion-ordered repository.
package memory

import (
	"context"
	"slices"
	"sync"

	"grubdash/pkg/store"
)

// Repository provides an in-memory implementation of store.Repository.
type Repository[T store.Record] struct {
	mu      sync.RWMutex
	records []T
}

// New creates a repository seeded with the given records.
func New[T store.Record](seed ...T) *Repository[T] {
	return &Repository[T]{records: slices.Clone(seed)}
}

func (r *Repository[T]) index(id string) int {
	return slices.IndexFunc(r.records, func(v T) bool { return v.RecordID() == id })
}

// Create appends the record.
func (r *Repository[T]) Create(_ context.Context, v T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.index(v.RecordID()) >= 0 {
		return store.ErrConflict
	}
	r.records = append(r.records, v)
	return nil
}

// Get retrieves a record by ID.
func (r *Repository[T]) Get(_ context.Context, id string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.index(id)
	if i < 0 {
		var zero T
		return zero, store.ErrNotFound
	}
	return r.records[i], nil
}

// List returns a snapshot of all records.
func (r *Repository[T]) List(_ context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.records), nil
}

// Update replaces an existing record in place.
func (r *Repository[T]) Update(_ context.Context, v T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(v.RecordID())
	if i < 0 {
		return store.ErrNotFound
	}
	r.records[i] = v
	return nil
}

// Delete removes a record by ID.
func (r *Repository[T]) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return store.ErrNotFound
	}
	r.records = slices.Delete(r.records, i, i+1)
	return nil
}
