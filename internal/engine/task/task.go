// Package task implements the body every search task runs: search, then report once.
package task

import (
	"context"
	"fmt"

	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
	"go.trai.ch/zerr"
)

// Run searches for req.Target and reports exactly one result line under the given identity.
//
// A search that fails to traverse the root, or panics, is still reported, as a
// traversal-error outcome; only a failure to write the line is returned.
func Run(
	ctx context.Context,
	searcher ports.Searcher,
	reporter ports.Reporter,
	id domain.TaskID,
	req domain.SearchRequest,
) error {
	path, err := search(ctx, searcher, req)

	return reporter.Report(domain.SearchResult{
		Task:   id,
		Target: req.Target,
		Path:   path,
		Err:    err,
	})
}

func search(ctx context.Context, searcher ports.Searcher, req domain.SearchRequest) (path string, err error) {
	defer func() {
		if r := recover(); r != nil {
			path = ""
			err = zerr.New(fmt.Sprintf("search panicked: %v", r))
		}
	}()
	return searcher.Search(ctx, req)
}
