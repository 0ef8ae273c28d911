// Package gensprite generates the sprite enumeration and metadata table
// consumed by the game's sprite module.
package gensprite

import (
	"bytes"
	"context"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/spritekit/internal/core/domain"
	"go.trai.ch/spritekit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Group is a scanned sprite group ready to be rendered.
type Group struct {
	Enum    string
	Sprites []domain.Sprite
}

// Generator scans sprite directories and writes the generated sources.
type Generator struct {
	finder   ports.AssetFinder
	runner   ports.ToolRunner
	writer   ports.ArtifactWriter
	reporter ports.Reporter
}

// NewGenerator creates a new Generator with the given dependencies.
func NewGenerator(
	finder ports.AssetFinder,
	runner ports.ToolRunner,
	writer ports.ArtifactWriter,
	reporter ports.Reporter,
) *Generator {
	return &Generator{
		finder:   finder,
		runner:   runner,
		writer:   writer,
		reporter: reporter,
	}
}

// Run scans every configured group and writes both artifacts.
// Any failure aborts generation before the artifacts are touched.
func (g *Generator) Run(ctx context.Context, cfg *domain.Config) error {
	groups := make([]Group, 0, len(cfg.Sprites.Groups))
	for _, group := range cfg.Sprites.Groups {
		sprites, err := g.scan(ctx, cfg, group)
		if err != nil {
			return err
		}
		groups = append(groups, Group{Enum: group.Enum, Sprites: sprites})
	}

	enum, err := RenderEnum(groups, cfg.Sprites.CountConstants)
	if err != nil {
		return err
	}
	array := RenderArray(groups)

	paths := cfg.ArtifactPaths()
	for i, data := range [][]byte{enum, array} {
		changed, err := g.writer.Write(paths[i], data)
		if err != nil {
			return err
		}
		g.reporter.OnArtifact(displayPath(cfg.Root, paths[i]), changed)
	}

	return nil
}

func (g *Generator) scan(ctx context.Context, cfg *domain.Config, group domain.SpriteGroup) ([]domain.Sprite, error) {
	images, err := g.finder.ListImages(cfg.Resolve(group.Dir))
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, zerr.With(zerr.With(domain.ErrNoSprites, "enum", group.Enum), "dir", group.Dir)
	}

	sprites := make([]domain.Sprite, 0, len(images))
	for _, path := range images {
		name := domain.BaseName(path)
		if _, err := domain.EnumSymbol(name); err != nil {
			return nil, zerr.With(err, "dir", group.Dir)
		}

		width, height, err := g.identify(ctx, cfg.Sprites.Command, path)
		if err != nil {
			return nil, err
		}
		sprites = append(sprites, domain.Sprite{
			Name:   name,
			Width:  width,
			Height: height,
		})
	}

	domain.SortSprites(sprites)
	return sprites, nil
}

// identify runs the identification tool and parses "<width> <height>" from its output.
func (g *Generator) identify(ctx context.Context, command []string, path string) (int, int, error) {
	var out bytes.Buffer
	argv := append(slices.Clone(command), path)
	if err := g.runner.Run(ctx, argv, &out); err != nil {
		return 0, 0, zerr.With(zerr.Wrap(err, domain.ErrIdentifyFailed.Error()), "path", path)
	}

	width, height, ok := parseDimensions(out.String())
	if !ok {
		err := zerr.With(domain.ErrIdentifyParse, "path", path)
		return 0, 0, zerr.With(err, "output", strings.TrimSpace(out.String()))
	}
	return width, height, nil
}

func parseDimensions(s string) (int, int, bool) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, 0, false
	}
	width, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, false
	}
	height, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, false
	}
	return width, height, true
}

func displayPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}
