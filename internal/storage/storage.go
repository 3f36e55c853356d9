// Package storage persists the task list between runs.
package storage

import (
	"context"
	"fmt"

	"hachi/internal/domain"
)

// Storage loads and saves the whole task list.
type Storage interface {
	// Load reads every stored task. Records that cannot be decoded are
	// skipped and reported in LoadResult.Skipped; the rest still load.
	Load(ctx context.Context) (*LoadResult, error)
	// Save replaces the stored list with tasks, in order.
	Save(ctx context.Context, tasks []domain.Task) error
	Close() error
}

// LoadResult is the outcome of a Load.
type LoadResult struct {
	Tasks   []domain.Task
	Skipped []LineError
}

// LineError describes a stored record that could not be decoded.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e LineError) Unwrap() error {
	return e.Err
}
