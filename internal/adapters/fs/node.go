package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/seek/internal/adapters/logger"
	"go.trai.ch/seek/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the Walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// SearcherNodeID is the unique identifier for the Searcher Graft node.
	SearcherNodeID graft.ID = "adapter.fs.searcher"
)

func init() {
	// Walker Node (concrete implementation needed by Searcher)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Walker, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWalker(log), nil
		},
	})

	// Searcher Node
	graft.Register(graft.Node[ports.Searcher]{
		ID:        SearcherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.Searcher, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewSearcher(walker), nil
		},
	})
}
