// Package quant implements the mtime-cached PNG quantization pipeline.
package quant

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/spritekit/internal/core/domain"
	"go.trai.ch/spritekit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Pipeline walks the asset roots and quantizes every image whose mtime changed
// since it was last recorded.
type Pipeline struct {
	store    ports.MtimeCacheStore
	finder   ports.AssetFinder
	runner   ports.ToolRunner
	reporter ports.Reporter
}

// NewPipeline creates a new Pipeline with the given dependencies.
func NewPipeline(
	store ports.MtimeCacheStore,
	finder ports.AssetFinder,
	runner ports.ToolRunner,
	reporter ports.Reporter,
) *Pipeline {
	return &Pipeline{
		store:    store,
		finder:   finder,
		runner:   runner,
		reporter: reporter,
	}
}

// Run processes every root of cfg in order. The cache is saved exactly once
// after it was loaded, whether or not the walk succeeded; a save failure is
// joined with the walk error.
func (p *Pipeline) Run(ctx context.Context, cfg *domain.Config) (stats domain.QuantStats, err error) {
	start := time.Now()

	cache, err := p.store.Load(cfg.CachePath())
	if err != nil {
		return stats, err
	}

	defer func() {
		if saveErr := cache.Save(); saveErr != nil {
			err = errors.Join(err, saveErr)
		}
		stats.Duration = time.Since(start)
		p.reporter.OnQuantComplete(stats)
	}()

	for _, root := range cfg.Quant.Roots {
		for path, walkErr := range p.finder.WalkCandidates(cfg.Resolve(root)) {
			if walkErr != nil {
				return stats, walkErr
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return stats, ctxErr
			}
			if err := p.process(ctx, cfg, cache, path, &stats); err != nil {
				return stats, err
			}
		}
	}

	return stats, nil
}

func (p *Pipeline) process(
	ctx context.Context,
	cfg *domain.Config,
	cache ports.MtimeCache,
	path string,
	stats *domain.QuantStats,
) error {
	key := cacheKey(cfg.Root, path)

	before, err := os.Stat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", key)
	}

	if !cache.IsStale(key, domain.Mtime(before.ModTime())) {
		stats.Skipped++
		return nil
	}

	out := domain.ProcessedPath(path)
	if err := removeIfExists(out); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrQuantizeFailed.Error()), "path", key)
	}

	argv := append(slices.Clone(cfg.Quant.Command), "-o", out, path)
	if err := p.runner.Run(ctx, argv, nil); err != nil {
		_ = removeIfExists(out)
		return zerr.With(zerr.Wrap(err, domain.ErrQuantizeFailed.Error()), "path", key)
	}

	if err := os.Rename(out, path); err != nil {
		_ = removeIfExists(out)
		return zerr.With(zerr.Wrap(err, domain.ErrReplaceFailed.Error()), "path", key)
	}

	after, err := os.Stat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", key)
	}

	cache.Record(key, domain.Mtime(after.ModTime()))

	stats.Processed++
	stats.BytesBefore += before.Size()
	stats.BytesAfter += after.Size()
	p.reporter.OnQuantized(key, before.Size(), after.Size())

	return nil
}

// cacheKey returns path relative to root with forward slashes, falling back to
// path itself when it lies outside root.
func cacheKey(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
