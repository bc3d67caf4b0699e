package dispatcher

import (
	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
)

var _ ports.Task = (*handle)(nil)

// handle tracks a task running in a goroutine of this process.
type handle struct {
	id     domain.TaskID
	target string
	done   chan struct{}
	err    error
}

func newHandle(id domain.TaskID, target string) *handle {
	return &handle{
		id:     id,
		target: target,
		done:   make(chan struct{}),
	}
}

// finish records the task's failure, if any, and releases every waiter.
// It must be called exactly once.
func (h *handle) finish(err error) {
	h.err = err
	close(h.done)
}

func (h *handle) ID() domain.TaskID     { return h.id }
func (h *handle) Target() string        { return h.target }
func (h *handle) Done() <-chan struct{} { return h.done }

func (h *handle) Wait() error {
	<-h.done
	return h.err
}
