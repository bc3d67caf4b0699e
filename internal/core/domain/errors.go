package domain

import "go.trai.ch/zerr"

var (
	// ErrArgument is returned when the command line cannot be turned into a search.
	ErrArgument = zerr.New("invalid arguments")

	// ErrMissingRoot is returned when no search root is given.
	ErrMissingRoot = zerr.New("missing search root")

	// ErrDispatchFailed is returned when a search task cannot be started.
	ErrDispatchFailed = zerr.New("failed to dispatch search task")

	// ErrTaskFailed is returned when a dispatched task did not complete cleanly.
	ErrTaskFailed = zerr.New("search task failed")

	// ErrRootUnreadable is returned when the search root cannot be read.
	ErrRootUnreadable = zerr.New("search root is not readable")

	// ErrRootNotDirectory is returned when the search root is not a directory.
	ErrRootNotDirectory = zerr.New("search root is not a directory")

	// ErrReportFailed is returned when a result line cannot be written.
	ErrReportFailed = zerr.New("failed to report search result")

	// ErrLockFileFailed is returned when the shared output lock cannot be created or taken.
	ErrLockFileFailed = zerr.New("failed to acquire output lock")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidSpawnMode is returned for a mode other than "goroutine" or "process".
	ErrInvalidSpawnMode = zerr.New("invalid mode, expected 'goroutine' or 'process'")

	// ErrInvalidColorMode is returned for a color mode other than "auto", "always" or "never".
	ErrInvalidColorMode = zerr.New("invalid color mode, expected 'auto', 'always' or 'never'")
)
