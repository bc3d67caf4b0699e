// Package config provides the configuration loader for seek.
package config

import (
	"bytes"
	"errors"
	"io"
	iofs "io/fs"
	"os"

	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the config file looked up in the working directory.
const DefaultFilename = ".seek.yaml"

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct{}

// NewLoader creates a new FileConfigLoader.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{}
}

// Load reads the options stored at path on top of domain.DefaultOptions.
// A missing file is only an error when required is set.
func (l *FileConfigLoader) Load(path string, required bool) (domain.Options, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) && !required {
			return domain.DefaultOptions(), nil
		}
		return domain.Options{}, errors.Join(
			domain.ErrConfigReadFailed,
			zerr.With(zerr.Wrap(err, "read config"), "path", path),
		)
	}

	opts, err := Parse(data)
	if err != nil {
		return domain.Options{}, zerr.With(err, "path", path)
	}
	return opts, nil
}

// Parse decodes a Seekfile and applies it to domain.DefaultOptions.
// Unknown keys are rejected so that typos do not silently change a search.
func Parse(data []byte) (domain.Options, error) {
	var file Seekfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return domain.Options{}, errors.Join(domain.ErrConfigParseFailed, zerr.Wrap(err, "decode config"))
	}

	opts := domain.DefaultOptions()
	if file.Recursive != nil {
		opts.Recursive = *file.Recursive
	}
	if file.IgnoreCase != nil {
		opts.CaseInsensitive = *file.IgnoreCase
	}

	mode, err := domain.ParseSpawnMode(file.Mode)
	if err != nil {
		return domain.Options{}, err
	}
	opts.Mode = mode

	color, err := domain.ParseColorMode(file.Color)
	if err != nil {
		return domain.Options{}, err
	}
	opts.Color = color

	return opts, nil
}
