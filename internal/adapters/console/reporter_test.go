package console_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/seek/internal/adapters/console"
	"go.trai.ch/seek/internal/core/domain"
)

func TestReporter_Report(t *testing.T) {
	tests := []struct {
		name string
		res  domain.SearchResult
		want string
	}{
		{
			name: "found",
			res:  domain.SearchResult{Task: 7, Target: "target.txt", Path: "root/a/b/target.txt"},
			want: "7: target.txt: root/a/b/target.txt\n",
		},
		{
			name: "not found",
			res:  domain.SearchResult{Task: 3, Target: "target.txt"},
			want: "3: target.txt: Not found\n",
		},
		{
			name: "traversal error shows the path error",
			res: domain.SearchResult{
				Task:   1,
				Target: "x",
				Err:    errors.Join(domain.ErrRootUnreadable, &os.PathError{Op: "stat", Path: "/nope", Err: os.ErrNotExist}),
			},
			want: "1: x: Not found (stat /nope: file does not exist)\n",
		},
		{
			name: "traversal error without path error",
			res:  domain.SearchResult{Task: 2, Target: "x", Err: errors.New("context canceled")},
			want: "2: x: Not found (context canceled)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := console.NewReporter(&buf)
			r.SetColor(domain.ColorNever)

			require.NoError(t, r.Report(tt.res))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestReporter_AutoColorIsPlainForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	r := console.NewReporter(&buf)
	r.SetColor(domain.ColorAuto)

	require.NoError(t, r.Report(domain.SearchResult{Task: 1, Target: "a", Path: "dir/a"}))
	assert.Equal(t, "1: a: dir/a\n", buf.String())
}

func TestReporter_ColorAlways(t *testing.T) {
	var buf bytes.Buffer
	r := console.NewReporter(&buf)
	r.SetColor(domain.ColorAlways)

	require.NoError(t, r.Report(domain.SearchResult{Task: 1, Target: "a", Path: "dir/a"}))
	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "dir/a")
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestReporter_ConcurrentLinesStayWhole(t *testing.T) {
	var buf bytes.Buffer
	r := console.NewReporter(&buf)
	r.SetColor(domain.ColorNever)

	const tasks = 64
	var wg sync.WaitGroup
	for i := range tasks {
		wg.Go(func() {
			name := "file-" + strconv.Itoa(i) + ".txt"
			_ = r.Report(domain.SearchResult{
				Task:   domain.TaskID(i),
				Target: name,
				Path:   strings.Repeat("deep/", 50) + name,
			})
		})
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, tasks)
	seen := make(map[string]bool, tasks)
	for _, line := range lines {
		parts := strings.SplitN(line, ": ", 3)
		require.Len(t, parts, 3, line)
		assert.True(t, strings.HasSuffix(parts[2], parts[1]), line)
		seen[parts[1]] = true
	}
	assert.Len(t, seen, tasks)
}

func TestReporter_ShareOutput(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "output.lock")

	var buf bytes.Buffer
	r := console.NewReporter(&buf)
	r.SetColor(domain.ColorNever)
	r.ShareOutput(lockPath)

	require.NoError(t, r.Report(domain.SearchResult{Task: 9, Target: "a"}))
	assert.Equal(t, "9: a: Not found\n", buf.String())
	assert.FileExists(t, lockPath)
}

func TestReporter_ShareOutputEmptyPathStopsSharing(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "output.lock")

	var buf bytes.Buffer
	r := console.NewReporter(&buf)
	r.ShareOutput(lockPath)
	r.ShareOutput("")

	require.NoError(t, r.Report(domain.SearchResult{Task: 2, Target: "b"}))
	assert.Equal(t, "2: b: Not found\n", buf.String())
	assert.NoFileExists(t, lockPath)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, os.ErrClosed }

func TestReporter_WriteFailure(t *testing.T) {
	r := console.NewReporter(failingWriter{})
	r.SetColor(domain.ColorNever)

	err := r.Report(domain.SearchResult{Task: 1, Target: "a"})
	require.ErrorIs(t, err, domain.ErrReportFailed)
}

func TestCause(t *testing.T) {
	assert.Empty(t, console.Cause(nil))
	assert.Equal(t, "boom", console.Cause(errors.New("boom")))
}

func TestReporter_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	r := console.NewReporter(&first)

	require.NoError(t, r.Report(domain.SearchResult{Task: 1, Target: "a"}))
	r.SetOutput(&second)
	require.NoError(t, r.Report(domain.SearchResult{Task: 2, Target: "b"}))

	assert.Equal(t, "1: a: Not found\n", first.String())
	assert.Equal(t, "2: b: Not found\n", second.String())
}
