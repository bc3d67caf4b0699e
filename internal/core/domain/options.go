package domain

import "go.trai.ch/zerr"

// SpawnMode selects how search tasks are executed.
type SpawnMode string

const (
	// ModeGoroutine runs every task as a goroutine inside the seek process.
	ModeGoroutine SpawnMode = "goroutine"
	// ModeProcess runs every task in its own worker process.
	ModeProcess SpawnMode = "process"
)

// ColorMode selects whether result lines are styled.
type ColorMode string

const (
	// ColorAuto styles output only when stdout is a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways always styles output.
	ColorAlways ColorMode = "always"
	// ColorNever never styles output.
	ColorNever ColorMode = "never"
)

// Options holds the settings shared by all tasks of a run.
type Options struct {
	Recursive       bool
	CaseInsensitive bool
	Mode            SpawnMode
	Color           ColorMode
}

// DefaultOptions returns the options used when neither config file nor flags say otherwise.
func DefaultOptions() Options {
	return Options{
		Mode:  ModeGoroutine,
		Color: ColorAuto,
	}
}

// ParseSpawnMode validates a mode name. An empty string selects the default.
func ParseSpawnMode(s string) (SpawnMode, error) {
	switch SpawnMode(s) {
	case "", ModeGoroutine:
		return ModeGoroutine, nil
	case ModeProcess:
		return ModeProcess, nil
	default:
		return "", zerr.With(ErrInvalidSpawnMode, "mode", s)
	}
}

// ParseColorMode validates a color mode name. An empty string selects the default.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways, ColorNever:
		return ColorMode(s), nil
	default:
		return "", zerr.With(ErrInvalidColorMode, "color", s)
	}
}
