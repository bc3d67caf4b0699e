// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/seek/internal/adapters/config"
	_ "go.trai.ch/seek/internal/adapters/console"
	_ "go.trai.ch/seek/internal/adapters/fs"
	_ "go.trai.ch/seek/internal/adapters/logger"
	_ "go.trai.ch/seek/internal/adapters/process"
	// Register app and engine nodes.
	_ "go.trai.ch/seek/internal/app"
	_ "go.trai.ch/seek/internal/engine/dispatcher"
)
