package process_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/seek/internal/adapters/console"
	"go.trai.ch/seek/internal/adapters/logger"
	"go.trai.ch/seek/internal/adapters/process"
	"go.trai.ch/seek/internal/core/domain"
)

const helperEnv = "SEEK_PROCESS_HELPER"

// TestMain lets the test binary stand in for a seek worker: it prints its PID and
// the arguments it received, or fails when the target is "crash".
func TestMain(m *testing.M) {
	if os.Getenv(helperEnv) == "1" {
		args := os.Args[1:]
		if args[len(args)-1] == "crash" {
			os.Exit(3)
		}
		fmt.Printf("%d: %s\n", os.Getpid(), strings.Join(args, " "))
		os.Exit(0)
	}
	os.Exit(m.Run())
}

// syncBuffer is a bytes.Buffer safe for the copy goroutines of several workers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newSpawner(t *testing.T, out io.Writer) *process.Spawner {
	t.Helper()
	t.Setenv(helperEnv, "1")

	executable, err := os.Executable()
	require.NoError(t, err)

	s := process.NewSpawnerFor(executable, logger.NewWithWriter(io.Discard), console.NewReporter(out))
	s.Stdout = out
	s.Stderr = io.Discard
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSpawner_Spawn(t *testing.T) {
	var out syncBuffer
	s := newSpawner(t, &out)
	s.SetColor(domain.ColorNever)

	task, err := s.Spawn(context.Background(), domain.SearchRequest{
		Root:            "/srv/data",
		Target:          "-odd-name.txt",
		Recursive:       true,
		CaseInsensitive: true,
	})
	require.NoError(t, err)
	require.NoError(t, task.Wait())

	select {
	case <-task.Done():
	default:
		t.Fatal("Done must be closed after Wait returns")
	}

	line := strings.TrimSpace(out.String())
	assert.True(t, strings.HasPrefix(line, task.ID().String()+": "), line)
	assert.Contains(t, line, "--worker")
	assert.Contains(t, line, "--output-lock")
	assert.Contains(t, line, "--color never")
	assert.Contains(t, line, "--recursive")
	assert.Contains(t, line, "--ignore-case")
	assert.True(t, strings.HasSuffix(line, "-- /srv/data -odd-name.txt"), line)
	assert.Equal(t, "-odd-name.txt", task.Target())
}

func TestSpawner_OmitsUnsetFlags(t *testing.T) {
	var out syncBuffer
	s := newSpawner(t, &out)

	task, err := s.Spawn(context.Background(), domain.SearchRequest{Root: "r", Target: "t"})
	require.NoError(t, err)
	require.NoError(t, task.Wait())

	line := out.String()
	assert.NotContains(t, line, "--recursive")
	assert.NotContains(t, line, "--ignore-case")
	assert.NotContains(t, line, "--verbose")
	assert.Contains(t, line, "--color auto")
}

func TestSpawner_ManyWorkersShareOneLock(t *testing.T) {
	var out syncBuffer
	s := newSpawner(t, &out)

	var tasks []interface{ Wait() error }
	for i := range 5 {
		task, err := s.Spawn(context.Background(), domain.SearchRequest{Root: "r", Target: fmt.Sprintf("f%d", i)})
		require.NoError(t, err)
		tasks = append(tasks, task)
	}
	for _, task := range tasks {
		require.NoError(t, task.Wait())
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)

	lockPaths := make(map[string]bool)
	for _, line := range lines {
		fields := strings.Fields(line)
		for i, f := range fields {
			if f == "--output-lock" {
				lockPaths[fields[i+1]] = true
			}
		}
	}
	assert.Len(t, lockPaths, 1)

	for path := range lockPaths {
		assert.FileExists(t, path)
		require.NoError(t, s.Close())
		assert.NoFileExists(t, path)
	}
}

func TestSpawner_WorkerFailure(t *testing.T) {
	var out syncBuffer
	s := newSpawner(t, &out)

	task, err := s.Spawn(context.Background(), domain.SearchRequest{Root: "r", Target: "crash"})
	require.NoError(t, err)

	err = task.Wait()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "worker process failed")

	// The worker died without printing, so its line comes from the parent.
	line := out.String()
	assert.True(t, strings.HasPrefix(line, task.ID().String()+": crash: Not found ("), line)
	assert.Contains(t, line, "exit status 3")
	assert.Equal(t, 1, strings.Count(line, "\n"))
}

func TestSpawner_StartFailure(t *testing.T) {
	s := process.NewSpawnerFor("/nonexistent/seek-binary", logger.NewWithWriter(io.Discard), console.NewReporter(io.Discard))
	t.Cleanup(func() { _ = s.Close() })

	_, err := s.Spawn(context.Background(), domain.SearchRequest{Root: "r", Target: "t"})
	require.Error(t, err)
}
