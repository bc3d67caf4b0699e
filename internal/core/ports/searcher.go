// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/seek/internal/core/domain"
)

// Searcher looks up one file name below a root directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=searcher.go -destination=mocks/mock_searcher.go -package=mocks
type Searcher interface {
	// Search returns the first path whose final component matches req.Target,
	// or "" when the tree is exhausted without a match.
	//
	// It returns an error only when the search root itself cannot be traversed.
	Search(ctx context.Context, req domain.SearchRequest) (string, error)
}
