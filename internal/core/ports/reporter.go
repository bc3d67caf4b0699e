package ports

import "go.trai.ch/seek/internal/core/domain"

// Reporter writes result lines to the shared output stream.
//
// Implementations must be safe for concurrent use and must write each
// result as one whole line.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Report writes the line for a finished search.
	Report(res domain.SearchResult) error
	// SetColor selects whether lines are styled.
	SetColor(mode domain.ColorMode)
	// ShareOutput serializes lines with other processes through the lock file at path.
	// An empty path stops sharing.
	ShareOutput(path string)
}
