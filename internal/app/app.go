// Package app implements the application layer for seek.
package app

import (
	"context"
	"errors"
	"io"
	"os"

	"go.trai.ch/seek/internal/adapters/process" //nolint:depguard // Wired in app layer
	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
	"go.trai.ch/seek/internal/engine/dispatcher"
	"go.trai.ch/seek/internal/engine/task"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	dispatcher   *dispatcher.Dispatcher
	reaper       *dispatcher.Reaper
	searcher     ports.Searcher
	reporter     ports.Reporter
	workers      *process.Spawner
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	disp *dispatcher.Dispatcher,
	reaper *dispatcher.Reaper,
	searcher ports.Searcher,
	reporter ports.Reporter,
	workers *process.Spawner,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		dispatcher:   disp,
		reaper:       reaper,
		searcher:     searcher,
		reporter:     reporter,
		workers:      workers,
		logger:       logger,
	}
}

// SetOutput redirects result lines, including those printed by worker processes.
func (a *App) SetOutput(w io.Writer) {
	if o, ok := a.reporter.(interface{ SetOutput(io.Writer) }); ok {
		o.SetOutput(w)
	}
	if a.workers != nil {
		a.workers.Stdout = w
	}
}

// SetVerbose enables debug logging here and in worker processes.
func (a *App) SetVerbose(enable bool) {
	if v, ok := a.logger.(interface{ SetVerbose(bool) }); ok {
		v.SetVerbose(enable)
	}
	if a.workers != nil {
		a.workers.SetVerbose(enable)
	}
}

// LoadOptions reads the option defaults from the config file at path.
// A missing file is only an error when required is set.
func (a *App) LoadOptions(path string, required bool) (domain.Options, error) {
	return a.configLoader.Load(path, required)
}

// Run starts one search task per name in cfg and waits for all of them.
//
// Tasks that were started are always reaped, even when dispatch stopped early.
func (a *App) Run(ctx context.Context, cfg domain.SearchConfig) error {
	if len(cfg.Names) == 0 {
		a.logger.Debug("no file names given, nothing to search")
		return nil
	}

	a.reporter.SetColor(cfg.Color)
	if a.workers != nil {
		a.workers.SetColor(cfg.Color)
	}

	tasks, dispatchErr := a.dispatcher.Dispatch(ctx, cfg)
	reapErr := a.reaper.AwaitAll(tasks)

	var closeErr error
	if a.workers != nil {
		closeErr = a.workers.Close()
	}

	return errors.Join(dispatchErr, reapErr, closeErr)
}

// RunWorker performs a single search as a worker process started by the process spawner.
// The result line carries the worker's PID and is written while holding lockPath, if set.
func (a *App) RunWorker(ctx context.Context, req domain.SearchRequest, color domain.ColorMode, lockPath string) error {
	a.reporter.SetColor(color)
	if lockPath != "" {
		a.reporter.ShareOutput(lockPath)
	}
	return task.Run(ctx, a.searcher, a.reporter, domain.TaskID(os.Getpid()), req)
}
