package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/seek/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/seek/internal/adapters/console" //nolint:depguard // Wired in app layer
	"go.trai.ch/seek/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"go.trai.ch/seek/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/seek/internal/adapters/process" //nolint:depguard // Wired in app layer
	"go.trai.ch/seek/internal/core/ports"
	"go.trai.ch/seek/internal/engine/dispatcher"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds everything main needs to run the CLI.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			dispatcher.NodeID,
			dispatcher.ReaperNodeID,
			fs.SearcherNodeID,
			console.NodeID,
			process.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	disp, err := graft.Dep[*dispatcher.Dispatcher](ctx)
	if err != nil {
		return nil, err
	}

	reaper, err := graft.Dep[*dispatcher.Reaper](ctx)
	if err != nil {
		return nil, err
	}

	searcher, err := graft.Dep[ports.Searcher](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	workers, err := graft.Dep[*process.Spawner](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, disp, reaper, searcher, reporter, workers, log), nil
}
