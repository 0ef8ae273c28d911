package quant

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/spritekit/internal/adapters/cache"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/spritekit/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/spritekit/internal/adapters/linear" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/spritekit/internal/adapters/shell"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/spritekit/internal/core/ports"
)

// NodeID is the unique identifier for the quantization pipeline Graft node.
const NodeID graft.ID = "engine.quant"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cache.NodeID,
			fs.WalkerNodeID,
			shell.NodeID,
			linear.NodeID,
		},
		Run: func(ctx context.Context) (*Pipeline, error) {
			store, err := graft.Dep[ports.MtimeCacheStore](ctx)
			if err != nil {
				return nil, err
			}

			finder, err := graft.Dep[ports.AssetFinder](ctx)
			if err != nil {
				return nil, err
			}

			runner, err := graft.Dep[ports.ToolRunner](ctx)
			if err != nil {
				return nil, err
			}

			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}

			return NewPipeline(store, finder, runner, reporter), nil
		},
	})
}
