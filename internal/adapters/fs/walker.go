// Package fs provides file system adapters for finding images and writing artifacts.
package fs

import (
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"go.trai.ch/spritekit/internal/core/domain"
	"go.trai.ch/zerr"
)

// Walker implements ports.AssetFinder on the local file system.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkCandidates yields every quantization candidate below root in the order
// filepath.WalkDir visits them. Hidden directories are pruned, but root itself
// is always entered even when its name starts with a dot (e.g. ".").
func (w *Walker) WalkCandidates(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if _, err := os.Stat(root); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				yield("", zerr.With(domain.ErrRootNotFound, "root", root))
				return
			}
			yield("", zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", root))
			return
		}

		stopped := false
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && domain.IsHidden(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			if !domain.IsQuantCandidate(d.Name()) {
				return nil
			}

			if !yield(path, nil) {
				stopped = true
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil && !stopped {
			yield("", zerr.With(zerr.Wrap(err, domain.ErrWalkFailed.Error()), "root", root))
		}
	}
}

// ListImages returns the visible images directly inside dir, sorted by file name.
func (w *Walker) ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrListFailed.Error()), "dir", dir)
	}

	images := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !domain.IsImage(entry.Name()) {
			continue
		}
		images = append(images, filepath.Join(dir, entry.Name()))
	}
	return images, nil
}
