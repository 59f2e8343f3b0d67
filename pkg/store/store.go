// Package store defines the repository abstraction the resource handlers
// persist records through.
package store

import (
	"context"
	"errors"
)

// Record is anything addressable by a string identifier.
type Record interface {
	RecordID() string
}

// Repository defines behavior for persisting records of one resource type.
// List returns records in insertion order; Update replaces a record at its
// existing position.
type Repository[T Record] interface {
	Create(ctx context.Context, v T) error
	Get(ctx context.Context, id string) (T, error)
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, v T) error
	Delete(ctx context.Context, id string) error
}

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict indicates a record with the same id is already stored.
	ErrConflict = errors.New("record already exists")
)
