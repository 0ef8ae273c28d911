package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/spritekit/internal/core/domain"
	"go.trai.ch/zerr"
)

// ArtifactWriter implements ports.ArtifactWriter.
// Files whose content already matches are not rewritten, which keeps their
// modification time stable for downstream builds.
type ArtifactWriter struct{}

// NewArtifactWriter creates a new ArtifactWriter.
func NewArtifactWriter() *ArtifactWriter {
	return &ArtifactWriter{}
}

// Write stores data at path and reports whether the content changed.
func (w *ArtifactWriter) Write(path string, data []byte) (bool, error) {
	//nolint:gosec // Path comes from the project configuration
	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if len(existing) == len(data) && xxhash.Sum64(existing) == xxhash.Sum64(data) {
			return false, nil
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return false, zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "path", path)
	}

	//nolint:gosec // Generated sources are meant to be world readable
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "path", path)
	}
	return true, nil
}
