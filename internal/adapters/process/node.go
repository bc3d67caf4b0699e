package process

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/seek/internal/adapters/console"
	"go.trai.ch/seek/internal/adapters/logger"
	"go.trai.ch/seek/internal/core/ports"
)

// NodeID is the unique identifier for the process spawner Graft node.
const NodeID graft.ID = "adapter.process"

func init() {
	graft.Register(graft.Node[*Spawner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, console.NodeID},
		Run: func(ctx context.Context) (*Spawner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}

			return NewSpawner(log, reporter)
		},
	})
}
