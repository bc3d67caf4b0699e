package dispatcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/seek/internal/adapters/console" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/seek/internal/adapters/fs"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/seek/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/seek/internal/adapters/process" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the dispatcher Graft node.
	NodeID graft.ID = "engine.dispatcher"
	// LocalSpawnerNodeID is the unique identifier for the in-process spawner Graft node.
	LocalSpawnerNodeID graft.ID = "engine.dispatcher.local"
	// ReaperNodeID is the unique identifier for the reaper Graft node.
	ReaperNodeID graft.ID = "engine.reaper"
)

func init() {
	graft.Register(graft.Node[*LocalSpawner]{
		ID:        LocalSpawnerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.SearcherNodeID,
			console.NodeID,
		},
		Run: func(ctx context.Context) (*LocalSpawner, error) {
			searcher, err := graft.Dep[ports.Searcher](ctx)
			if err != nil {
				return nil, err
			}

			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}

			return NewLocalSpawner(searcher, reporter), nil
		},
	})

	graft.Register(graft.Node[*Dispatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			LocalSpawnerNodeID,
			process.NodeID,
		},
		Run: func(ctx context.Context) (*Dispatcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			local, err := graft.Dep[*LocalSpawner](ctx)
			if err != nil {
				return nil, err
			}

			proc, err := graft.Dep[*process.Spawner](ctx)
			if err != nil {
				return nil, err
			}

			return NewDispatcher(log, map[domain.SpawnMode]ports.Spawner{
				domain.ModeGoroutine: local,
				domain.ModeProcess:   proc,
			}), nil
		},
	})

	graft.Register(graft.Node[*Reaper]{
		ID:        ReaperNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Reaper, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewReaper(log), nil
		},
	})
}
