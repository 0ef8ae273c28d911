// Package app implements the application layer for spritekit.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/spritekit/internal/core/domain"
	"go.trai.ch/spritekit/internal/core/ports"
	"go.trai.ch/spritekit/internal/engine/gensprite"
	"go.trai.ch/spritekit/internal/engine/quant"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	pipeline     *quant.Pipeline
	generator    *gensprite.Generator
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	pipeline *quant.Pipeline,
	generator *gensprite.Generator,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		pipeline:     pipeline,
		generator:    generator,
		logger:       log,
	}
}

// Quant quantizes every changed image below the configured roots of the project in dir.
func (a *App) Quant(ctx context.Context, dir string) error {
	cfg, err := a.configLoader.Load(dir)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	_, err = a.pipeline.Run(ctx, cfg)
	return err
}

// GenSprite regenerates the sprite enumeration and metadata table of the project in dir.
func (a *App) GenSprite(ctx context.Context, dir string) error {
	cfg, err := a.configLoader.Load(dir)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	return a.generator.Run(ctx, cfg)
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	Artifacts bool
}

// Clean removes the mtime cache and, optionally, the generated artifacts.
// Files that do not exist are skipped.
func (a *App) Clean(_ context.Context, dir string, options CleanOptions) error {
	cfg, err := a.configLoader.Load(dir)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	var errs error

	remove := func(path string) {
		name := displayName(cfg.Root, path)
		if err := os.Remove(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return
			}
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, domain.ErrCleanFailed.Error()), "path", name))
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}

	remove(cfg.CachePath())

	if options.Artifacts {
		for _, path := range cfg.ArtifactPaths() {
			remove(path)
		}
	}

	return errs
}

func displayName(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil && filepath.IsLocal(rel) {
		return filepath.ToSlash(rel)
	}
	return path
}
