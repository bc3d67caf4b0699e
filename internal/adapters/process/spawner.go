// Package process provides the spawner that runs every search task in its own worker process.
package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"sync"

	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Spawner = (*Spawner)(nil)

// Worker flags understood by the seek command. They are hidden from its help output.
const (
	WorkerFlag     = "worker"
	OutputLockFlag = "output-lock"
)

// Spawner implements ports.Spawner by re-executing the seek binary in worker mode,
// once per task. Workers inherit stdout and stderr and print their own result line;
// the task identity is the worker's PID. A worker that exits without success gets
// its line from the parent's reporter, so every name still yields one line.
type Spawner struct {
	executable string
	logger     ports.Logger
	reporter   ports.Reporter

	// Stdout and Stderr default to the parent's streams.
	Stdout io.Writer
	Stderr io.Writer

	mu       sync.Mutex
	color    domain.ColorMode
	verbose  bool
	lockPath string
}

// NewSpawner creates a Spawner for the currently running executable.
func NewSpawner(logger ports.Logger, reporter ports.Reporter) (*Spawner, error) {
	executable, err := os.Executable()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve own executable")
	}
	return NewSpawnerFor(executable, logger, reporter), nil
}

// NewSpawnerFor creates a Spawner that starts the given executable as worker.
func NewSpawnerFor(executable string, logger ports.Logger, reporter ports.Reporter) *Spawner {
	return &Spawner{
		executable: executable,
		logger:     logger,
		reporter:   reporter,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		color:      domain.ColorAuto,
	}
}

// SetColor selects the color mode forwarded to workers.
func (s *Spawner) SetColor(mode domain.ColorMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.color = mode
}

// SetVerbose forwards debug logging to workers.
func (s *Spawner) SetVerbose(enable bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verbose = enable
}

// Spawn starts a worker process for req and returns without waiting for it.
// Workers are not tied to ctx: once started a task always runs to completion.
func (s *Spawner) Spawn(_ context.Context, req domain.SearchRequest) (ports.Task, error) {
	args, err := s.workerArgs(req)
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(s.executable, args...) //nolint:gosec // re-executes our own binary
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr
	cmd.Env = os.Environ()

	if err := cmd.Start(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to start worker process"), "executable", s.executable)
	}

	w := &worker{
		cmd:      cmd,
		target:   req.Target,
		reporter: s.reporter,
		done:     make(chan struct{}),
	}
	go w.wait()

	s.logger.Debug("started worker process", "pid", cmd.Process.Pid, "target", req.Target)
	return w, nil
}

// Close removes the shared output lock file. Call it after all workers have been reaped.
func (s *Spawner) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lockPath == "" {
		return nil
	}
	s.reporter.ShareOutput("")
	err := os.Remove(s.lockPath)
	s.lockPath = ""
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return zerr.Wrap(err, "failed to remove output lock")
	}
	return nil
}

func (s *Spawner) workerArgs(req domain.SearchRequest) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lockPath == "" {
		f, err := os.CreateTemp("", "seek-output-*.lock")
		if err != nil {
			return nil, errors.Join(domain.ErrLockFileFailed, zerr.Wrap(err, "failed to create output lock"))
		}
		_ = f.Close()
		s.lockPath = f.Name()
		// Lines the parent reports for failed workers take the same lock.
		s.reporter.ShareOutput(s.lockPath)
	}

	args := []string{
		"--" + WorkerFlag,
		"--" + OutputLockFlag, s.lockPath,
		"--color", string(s.color),
	}
	if req.Recursive {
		args = append(args, "--recursive")
	}
	if req.CaseInsensitive {
		args = append(args, "--ignore-case")
	}
	if s.verbose {
		args = append(args, "--verbose")
	}
	// Everything after "--" is positional, so names starting with "-" survive.
	return append(args, "--", req.Root, req.Target), nil
}

var _ ports.Task = (*worker)(nil)

// worker tracks one running worker process.
type worker struct {
	cmd      *exec.Cmd
	target   string
	reporter ports.Reporter
	done     chan struct{}
	err      error
}

// wait reaps the process. A worker only exits unsuccessfully before printing its
// line, so the line is reported here in its place.
func (w *worker) wait() {
	if err := w.cmd.Wait(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		w.err = zerr.With(
			zerr.With(zerr.Wrap(err, "worker process failed"), "exit_code", exitCode),
			"pid", strconv.Itoa(w.cmd.Process.Pid),
		)

		reportErr := w.reporter.Report(domain.SearchResult{
			Task:   w.ID(),
			Target: w.target,
			Err:    zerr.New(fmt.Sprintf("worker process failed: %v", err)),
		})
		w.err = errors.Join(w.err, reportErr)
	}
	close(w.done)
}

func (w *worker) ID() domain.TaskID     { return domain.TaskID(w.cmd.Process.Pid) }
func (w *worker) Target() string        { return w.target }
func (w *worker) Done() <-chan struct{} { return w.done }

func (w *worker) Wait() error {
	<-w.done
	return w.err
}
