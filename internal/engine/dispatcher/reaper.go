package dispatcher

import (
	"errors"

	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Reaper is the barrier between dispatch and exit.
type Reaper struct {
	logger ports.Logger
}

// NewReaper creates a new Reaper.
func NewReaper(logger ports.Logger) *Reaper {
	return &Reaper{logger: logger}
}

// AwaitAll blocks until every task has finished, whatever its outcome, and joins
// the failures of all tasks. Tasks that finished before the call count as done
// immediately. Nothing is retried.
func (r *Reaper) AwaitAll(tasks []ports.Task) error {
	errs := make([]error, len(tasks))

	// The waiters never return an error: g.Wait would surface only the first
	// failure, so every failure is collected in errs and joined instead.
	var g errgroup.Group
	for i, t := range tasks {
		g.Go(func() error {
			if err := t.Wait(); err != nil {
				errs[i] = errors.Join(
					domain.ErrTaskFailed,
					zerr.With(zerr.With(err, "task", t.ID().String()), "target", t.Target()),
				)
			}
			r.logger.Debug("reaped search task", "task", t.ID().String(), "target", t.Target())
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}
