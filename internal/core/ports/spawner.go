package ports

import (
	"context"

	"go.trai.ch/seek/internal/core/domain"
)

// Task is a handle to a dispatched search task.
//
//go:generate go run go.uber.org/mock/mockgen -source=spawner.go -destination=mocks/mock_spawner.go -package=mocks
type Task interface {
	// ID returns the identity the task uses in its result line.
	ID() domain.TaskID
	// Target returns the file name the task searches for.
	Target() string
	// Done is closed once the task has finished.
	Done() <-chan struct{}
	// Wait blocks until the task has finished and returns its failure, if any.
	// A search that found nothing is not a failure.
	Wait() error
}

// Spawner starts independent search tasks.
type Spawner interface {
	// Spawn starts a task that searches for req.Target and reports its result.
	// It returns without waiting for the task to finish.
	Spawn(ctx context.Context, req domain.SearchRequest) (Task, error)
}
