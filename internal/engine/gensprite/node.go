package gensprite

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/spritekit/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/spritekit/internal/adapters/linear" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/spritekit/internal/adapters/shell"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/spritekit/internal/core/ports"
)

// NodeID is the unique identifier for the sprite generator Graft node.
const NodeID graft.ID = "engine.gensprite"

func init() {
	graft.Register(graft.Node[*Generator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.WalkerNodeID,
			shell.NodeID,
			fs.ArtifactWriterNodeID,
			linear.NodeID,
		},
		Run: func(ctx context.Context) (*Generator, error) {
			finder, err := graft.Dep[ports.AssetFinder](ctx)
			if err != nil {
				return nil, err
			}

			runner, err := graft.Dep[ports.ToolRunner](ctx)
			if err != nil {
				return nil, err
			}

			writer, err := graft.Dep[ports.ArtifactWriter](ctx)
			if err != nil {
				return nil, err
			}

			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}

			return NewGenerator(finder, runner, writer, reporter), nil
		},
	})
}
