package ports

import "go.trai.ch/seek/internal/core/domain"

// ConfigLoader defines the interface for loading default search options.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the options stored at path.
	// When required is false a missing file yields domain.DefaultOptions.
	Load(path string, required bool) (domain.Options, error)
}
