// Package config provides the configuration loader for spritekit.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/spritekit/internal/core/domain"
	"go.trai.ch/spritekit/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only configuration schema version understood by the loader.
const SupportedVersion = "1"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads spritekit.yaml from dir. A missing file yields the defaults rooted at dir.
func (l *Loader) Load(dir string) (*domain.Config, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "dir", dir)
	}

	configPath := filepath.Join(absDir, domain.ConfigFileName)

	var file Spritefile
	found, err := readAndUnmarshalYAML(configPath, &file)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	if !found {
		return domain.DefaultConfig(absDir), nil
	}

	if file.Version == "" {
		l.Logger.Warn(fmt.Sprintf("%s has no version, assuming %q", domain.ConfigFileName, SupportedVersion))
	} else if file.Version != SupportedVersion {
		return nil, zerr.With(zerr.With(domain.ErrInvalidConfig, "version", file.Version), "path", configPath)
	}

	cfg := buildConfig(resolveRoot(configPath, file.Root), &file)
	if err := validate(cfg); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	return cfg, nil
}

func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	return filepath.Clean(filepath.Join(configDir, configuredRoot))
}

// buildConfig overlays the file onto the defaults. Absent keys keep their default.
func buildConfig(root string, file *Spritefile) *domain.Config {
	cfg := domain.DefaultConfig(root)

	if q := file.Quant; q != nil {
		if q.Cache != "" {
			cfg.Quant.CacheFile = q.Cache
		}
		if q.Roots != nil {
			cfg.Quant.Roots = q.Roots
		}
		if q.Command != nil {
			cfg.Quant.Command = q.Command
		}
	}

	if s := file.Sprites; s != nil {
		if s.Command != nil {
			cfg.Sprites.Command = s.Command
		}
		if s.EnumOutput != "" {
			cfg.Sprites.EnumOutput = s.EnumOutput
		}
		if s.ArrayOutput != "" {
			cfg.Sprites.ArrayOutput = s.ArrayOutput
		}
		cfg.Sprites.CountConstants = s.CountConstants
		if s.Groups != nil {
			groups := make([]domain.SpriteGroup, 0, len(s.Groups))
			for _, g := range s.Groups {
				groups = append(groups, domain.SpriteGroup{Enum: g.Enum, Dir: g.Dir})
			}
			cfg.Sprites.Groups = groups
		}
	}

	return cfg
}

func validate(cfg *domain.Config) error {
	if len(cfg.Quant.Command) == 0 || cfg.Quant.Command[0] == "" {
		return zerr.With(domain.ErrInvalidConfig, "field", "quant.command")
	}
	if len(cfg.Quant.Roots) == 0 {
		return zerr.With(domain.ErrInvalidConfig, "field", "quant.roots")
	}
	if len(cfg.Sprites.Command) == 0 || cfg.Sprites.Command[0] == "" {
		return zerr.With(domain.ErrInvalidConfig, "field", "sprites.command")
	}
	if len(cfg.Sprites.Groups) == 0 {
		return zerr.With(domain.ErrInvalidConfig, "field", "sprites.groups")
	}

	seen := make(map[string]bool, len(cfg.Sprites.Groups))
	for i, g := range cfg.Sprites.Groups {
		field := fmt.Sprintf("sprites.groups[%d]", i)
		if g.Dir == "" {
			return zerr.With(zerr.With(domain.ErrInvalidConfig, "field", field+".dir"), "enum", g.Enum)
		}
		if _, err := domain.EnumSymbol(g.Enum); err != nil {
			return zerr.With(zerr.With(domain.ErrInvalidConfig, "field", field+".enum"), "enum", g.Enum)
		}
		if seen[g.Enum] {
			return zerr.With(zerr.With(domain.ErrInvalidConfig, "field", field+".enum"), "duplicate", g.Enum)
		}
		seen[g.Enum] = true
	}

	return nil
}

// readAndUnmarshalYAML reads a YAML file and decodes it strictly into target.
// It reports false when the file does not exist.
func readAndUnmarshalYAML[T any](configPath string, target *T) (bool, error) {
	// #nosec G304 -- configPath is built from the project directory
	data, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil {
		// An empty document decodes to io.EOF and means "all defaults".
		if errors.Is(err, io.EOF) {
			return true, nil
		}
		return false, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	return true, nil
}
