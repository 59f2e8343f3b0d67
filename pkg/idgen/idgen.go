// Package idgen assigns identifiers to newly created records.
package idgen

import "github.com/google/uuid"

// Generator produces a fresh, unique identifier on every call.
type Generator interface {
	NewID() string
}

// UUID generates random (version 4) UUID strings.
type UUID struct{}

// NewID returns a new random UUID.
func (UUID) NewID() string {
	return uuid.NewString()
}

// Func adapts an ordinary function to a Generator.
type Func func() string

func (f Func) NewID() string {
	return f()
}
