// Package validate runs request pipelines: an ordered list of steps over a
// shared request value, stopping at the first step that fails.
package validate

import "context"

// Step inspects or enriches the request. A non-nil error ends the pipeline.
type Step[T any] func(ctx context.Context, req *T) error

// Chain is an ordered pipeline of steps.
type Chain[T any] []Step[T]

// Then returns a new chain with steps appended. The receiver is not modified.
func (c Chain[T]) Then(steps ...Step[T]) Chain[T] {
	out := make(Chain[T], 0, len(c)+len(steps))
	out = append(out, c...)
	return append(out, steps...)
}

// Run executes the steps in order and returns the first failure.
func (c Chain[T]) Run(ctx context.Context, req *T) error {
	for _, step := range c {
		if err := step(ctx, req); err != nil {
			return err
		}
	}
	return nil
}
