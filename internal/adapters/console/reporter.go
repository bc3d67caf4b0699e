// Package console implements the result reporter that writes one line per search to stdout.
package console

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/gofrs/flock"
	"github.com/mattn/go-isatty"
	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Reporter = (*Reporter)(nil)

// NotFound is the marker printed when a search has no match.
const NotFound = "Not found"

// Reporter implements ports.Reporter.
//
// Every line is rendered in full and handed to the writer in a single Write call
// while holding mu, so lines from concurrent tasks never interleave. With a shared
// lock file the write additionally holds an exclusive flock, which extends the
// guarantee to sibling worker processes writing to the same stream.
type Reporter struct {
	mu   sync.Mutex
	out  io.Writer
	lock *flock.Flock

	styled bool
	id     *color.Color
	found  *color.Color
	miss   *color.Color
}

// NewReporter creates a Reporter writing to out. Styling starts disabled.
func NewReporter(out io.Writer) *Reporter {
	r := &Reporter{
		out:   out,
		id:    color.New(color.Faint),
		found: color.New(color.FgGreen),
		miss:  color.New(color.FgYellow),
	}
	r.SetColor(domain.ColorNever)
	return r
}

// SetColor selects whether lines are styled. ColorAuto styles only terminals.
func (r *Reporter) SetColor(mode domain.ColorMode) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch mode {
	case domain.ColorAlways:
		r.styled = true
	case domain.ColorNever:
		r.styled = false
	default:
		r.styled = isTerminal(r.out)
	}

	for _, c := range []*color.Color{r.id, r.found, r.miss} {
		if r.styled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

// SetOutput redirects result lines to w.
func (r *Reporter) SetOutput(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.out = w
}

// ShareOutput makes every Report hold an exclusive lock on the file at path.
// An empty path stops sharing.
func (r *Reporter) ShareOutput(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if path == "" {
		r.lock = nil
		return
	}
	r.lock = flock.New(path)
}

// Report writes the line for res.
func (r *Reporter) Report(res domain.SearchResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	line := r.format(res)

	if r.lock != nil {
		if err := r.lock.Lock(); err != nil {
			return errors.Join(domain.ErrLockFileFailed, zerr.With(zerr.Wrap(err, "lock output"), "path", r.lock.Path()))
		}
		defer r.lock.Unlock() //nolint:errcheck // released on process exit at the latest
	}

	if _, err := io.WriteString(r.out, line); err != nil {
		return errors.Join(domain.ErrReportFailed, zerr.With(zerr.Wrap(err, "write result line"), "target", res.Target))
	}
	return nil
}

// format renders "<id>: <name>: <path>" or "<id>: <name>: Not found[ (<cause>)]".
func (r *Reporter) format(res domain.SearchResult) string {
	var b strings.Builder
	b.WriteString(r.id.Sprint(res.Task.String()))
	b.WriteString(": ")
	b.WriteString(res.Target)
	b.WriteString(": ")

	switch res.Outcome() {
	case domain.OutcomeFound:
		b.WriteString(r.found.Sprint(res.Path))
	case domain.OutcomeTraversalError:
		b.WriteString(r.miss.Sprint(NotFound))
		b.WriteString(" (")
		b.WriteString(Cause(res.Err))
		b.WriteString(")")
	default:
		b.WriteString(r.miss.Sprint(NotFound))
	}

	b.WriteByte('\n')
	return b.String()
}

// Cause returns the most specific description of a traversal error: the path error
// from the file system when there is one.
func Cause(err error) string {
	var pathErr *iofs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Error()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
