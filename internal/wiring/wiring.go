// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/spritekit/internal/adapters/cache"
	_ "go.trai.ch/spritekit/internal/adapters/config"
	_ "go.trai.ch/spritekit/internal/adapters/fs"
	_ "go.trai.ch/spritekit/internal/adapters/linear"
	_ "go.trai.ch/spritekit/internal/adapters/logger"
	_ "go.trai.ch/spritekit/internal/adapters/shell"
	// Register app and engine nodes.
	_ "go.trai.ch/spritekit/internal/app"
	_ "go.trai.ch/spritekit/internal/engine/gensprite"
	_ "go.trai.ch/spritekit/internal/engine/quant"
)
