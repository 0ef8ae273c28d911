package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/spritekit/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/spritekit/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/spritekit/internal/core/ports"
	"go.trai.ch/spritekit/internal/engine/gensprite"
	"go.trai.ch/spritekit/internal/engine/quant"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			quant.NodeID,
			gensprite.NodeID,
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
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	pipeline, err := graft.Dep[*quant.Pipeline](ctx)
	if err != nil {
		return nil, err
	}

	generator, err := graft.Dep[*gensprite.Generator](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, pipeline, generator, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
