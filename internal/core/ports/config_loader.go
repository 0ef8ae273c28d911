package ports

import "go.trai.ch/spritekit/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads spritekit.yaml from the given directory.
	// A missing file yields the default configuration rooted at dir.
	Load(dir string) (*domain.Config, error)
}
