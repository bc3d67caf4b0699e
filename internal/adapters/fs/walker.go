// Package fs provides the file system adapters that enumerate and search directory trees.
package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"iter"
	"os"
	"path/filepath"
	"syscall"

	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
)

// Walker enumerates candidate paths below a root directory.
type Walker struct {
	logger ports.Logger
}

// NewWalker creates a new Walker.
func NewWalker(logger ports.Logger) *Walker {
	return &Walker{logger: logger}
}

// Entries yields the full path of every entry below root, files and directories alike,
// in lexical depth-first order. The root itself is not yielded. Without recursive only
// the direct entries of root are yielded.
//
// Symbolic links are yielded but never followed, except when root itself is one.
// Subdirectories that cannot be read are logged and skipped. When root cannot be
// traversed, or ctx is cancelled, a single non-nil error is yielded and iteration ends.
func (w *Walker) Entries(ctx context.Context, root string, recursive bool) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		entries, err := readRoot(root)
		if err != nil {
			yield("", err)
			return
		}

		for _, entry := range entries {
			if err := ctx.Err(); err != nil {
				yield("", err)
				return
			}

			path := filepath.Join(root, entry.Name())
			if !yield(path, nil) {
				return
			}

			if recursive && entry.IsDir() {
				if !w.walkSubtree(ctx, path, yield) {
					return
				}
			}
		}
	}
}

// readRoot resolves root, following a symlinked root, and lists its entries.
func readRoot(root string) ([]os.DirEntry, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Join(domain.ErrRootUnreadable, err)
	}
	if !info.IsDir() {
		return nil, errors.Join(
			domain.ErrRootNotDirectory,
			&iofs.PathError{Op: "search", Path: root, Err: syscall.ENOTDIR},
		)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Join(domain.ErrRootUnreadable, err)
	}
	return entries, nil
}

// walkSubtree yields every descendant of dir. It reports false when iteration must stop,
// either because the consumer is done or because an error has been yielded.
func (w *Walker) walkSubtree(ctx context.Context, dir string, yield func(string, error) bool) bool {
	stopped := false

	err := filepath.WalkDir(dir, func(path string, _ iofs.DirEntry, err error) error {
		if err != nil {
			// Called a second time for a directory whose listing failed.
			w.logger.Warn("skipping unreadable directory", "path", path, "error", err)
			return nil
		}
		if path == dir {
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if !yield(path, nil) {
			stopped = true
			return filepath.SkipAll
		}
		return nil
	})

	if stopped {
		return false
	}
	if err != nil {
		yield("", err)
		return false
	}
	return true
}
