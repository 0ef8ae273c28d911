// Package domain holds the core types shared by the spritekit tools.
package domain

import "path/filepath"

// Config is the resolved project configuration.
// All paths are either absolute or relative to Root.
type Config struct {
	// Root is the project directory every relative path is resolved against.
	Root    string
	Quant   QuantConfig
	Sprites SpriteConfig
}

// QuantConfig configures the transform pipeline.
type QuantConfig struct {
	CacheFile string
	Roots     []string
	Command   []string
}

// SpriteConfig configures the metadata generator.
type SpriteConfig struct {
	Command        []string
	EnumOutput     string
	ArrayOutput    string
	CountConstants bool
	Groups         []SpriteGroup
}

// SpriteGroup is one directory of sprites emitted as one enumeration.
type SpriteGroup struct {
	Enum string
	Dir  string
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig(root string) *Config {
	return &Config{
		Root: root,
		Quant: QuantConfig{
			CacheFile: DefaultCacheFile,
			Roots:     DefaultRoots(),
			Command:   DefaultQuantizerCommand(),
		},
		Sprites: SpriteConfig{
			Command:     DefaultIdentifierCommand(),
			EnumOutput:  DefaultEnumOutput,
			ArrayOutput: DefaultArrayOutput,
			Groups: []SpriteGroup{
				{Enum: DefaultSpriteEnum, Dir: DefaultSpriteDir},
			},
		},
	}
}

// Resolve joins a config-relative path with Root.
func (c *Config) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Root, path)
}

// CachePath returns the location of the mtime cache snapshot.
func (c *Config) CachePath() string {
	return c.Resolve(c.Quant.CacheFile)
}

// ArtifactPaths returns the generated artifact locations.
func (c *Config) ArtifactPaths() []string {
	return []string{c.Resolve(c.Sprites.EnumOutput), c.Resolve(c.Sprites.ArrayOutput)}
}
