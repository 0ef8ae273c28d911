package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/spritekit/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the asset finder Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// ArtifactWriterNodeID is the unique identifier for the artifact writer Graft node.
	ArtifactWriterNodeID graft.ID = "adapter.fs.artifact_writer"
)

func init() {
	graft.Register(graft.Node[ports.AssetFinder]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.AssetFinder, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.ArtifactWriter]{
		ID:        ArtifactWriterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactWriter, error) {
			return NewArtifactWriter(), nil
		},
	})
}
