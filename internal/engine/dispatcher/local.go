package dispatcher

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
	"go.trai.ch/seek/internal/engine/task"
	"go.trai.ch/zerr"
)

var _ ports.Spawner = (*LocalSpawner)(nil)

// LocalSpawner runs every task as a goroutine of the current process.
// Task identities are assigned sequentially starting at 1.
type LocalSpawner struct {
	searcher ports.Searcher
	reporter ports.Reporter
	next     atomic.Int64
}

// NewLocalSpawner creates a new LocalSpawner.
func NewLocalSpawner(searcher ports.Searcher, reporter ports.Reporter) *LocalSpawner {
	return &LocalSpawner{
		searcher: searcher,
		reporter: reporter,
	}
}

// Spawn starts the task and returns immediately.
func (s *LocalSpawner) Spawn(ctx context.Context, req domain.SearchRequest) (ports.Task, error) {
	h := newHandle(domain.TaskID(s.next.Add(1)), req.Target)

	go func() {
		var err error
		defer func() {
			// task.Run reports panicking searches itself; a reporter that panics
			// cannot be trusted with a second attempt at the line.
			if r := recover(); r != nil {
				err = zerr.With(zerr.New(fmt.Sprintf("search task panicked: %v", r)), "target", req.Target)
			}
			h.finish(err)
		}()
		err = task.Run(ctx, s.searcher, s.reporter, h.id, req)
	}()

	return h, nil
}
