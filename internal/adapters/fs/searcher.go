package fs

import (
	"context"

	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
)

var _ ports.Searcher = (*Searcher)(nil)

// Searcher implements ports.Searcher on top of a Walker.
type Searcher struct {
	walker *Walker
}

// NewSearcher creates a new Searcher.
func NewSearcher(walker *Walker) *Searcher {
	return &Searcher{walker: walker}
}

// Search returns the first entry below req.Root whose name matches req.Target.
// The walk stops at the first match.
func (s *Searcher) Search(ctx context.Context, req domain.SearchRequest) (string, error) {
	for path, err := range s.walker.Entries(ctx, req.Root, req.Recursive) {
		if err != nil {
			return "", err
		}
		if domain.MatchName(path, req.Target, req.CaseInsensitive) {
			return path, nil
		}
	}
	return "", nil
}
