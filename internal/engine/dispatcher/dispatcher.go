// Package dispatcher fans a search out to one task per requested name and reaps every task.
package dispatcher

import (
	"context"
	"errors"

	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
	"go.trai.ch/zerr"
)

// Dispatcher starts one independent task per requested file name.
type Dispatcher struct {
	spawners map[domain.SpawnMode]ports.Spawner
	logger   ports.Logger
}

// NewDispatcher creates a Dispatcher that picks a spawner by the run's mode.
func NewDispatcher(logger ports.Logger, spawners map[domain.SpawnMode]ports.Spawner) *Dispatcher {
	return &Dispatcher{
		spawners: spawners,
		logger:   logger,
	}
}

// Dispatch starts the tasks in the order of cfg.Names without limiting how many run at once.
//
// On a spawn failure it stops and returns the tasks started so far together with
// domain.ErrDispatchFailed. Callers must reap the returned tasks in either case.
func (d *Dispatcher) Dispatch(ctx context.Context, cfg domain.SearchConfig) ([]ports.Task, error) {
	spawner, ok := d.spawners[cfg.Mode]
	if !ok {
		return nil, zerr.With(domain.ErrInvalidSpawnMode, "mode", string(cfg.Mode))
	}

	tasks := make([]ports.Task, 0, len(cfg.Names))
	for _, req := range cfg.Requests() {
		t, err := spawner.Spawn(ctx, req)
		if err != nil {
			return tasks, errors.Join(
				domain.ErrDispatchFailed,
				zerr.With(zerr.Wrap(err, "spawn search task"), "target", req.Target),
			)
		}
		d.logger.Debug("dispatched search task", "task", t.ID().String(), "target", req.Target, "mode", string(cfg.Mode))
		tasks = append(tasks, t)
	}

	return tasks, nil
}
