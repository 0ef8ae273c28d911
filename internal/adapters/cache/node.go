package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/spritekit/internal/core/ports"
)

// NodeID is the unique identifier for the mtime cache store Graft node.
const NodeID graft.ID = "adapter.mtime_cache_store"

func init() {
	graft.Register(graft.Node[ports.MtimeCacheStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.MtimeCacheStore, error) {
			return NewStore(), nil
		},
	})
}
