package domain

import (
	"path/filepath"
	"strings"
)

// IsHidden reports whether a file or directory name is hidden.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, HiddenPrefix)
}

// IsImage reports whether name is a visible image file name.
func IsImage(name string) bool {
	return !IsHidden(name) && strings.HasSuffix(name, ImageExtension)
}

// IsQuantCandidate reports whether name should be considered by the quantizer.
// Names that already carry ProcessedSuffix are excluded so that quantizer output
// is never fed back into the quantizer.
func IsQuantCandidate(name string) bool {
	if !IsImage(name) {
		return false
	}
	return !strings.HasSuffix(BaseName(name), ProcessedSuffix)
}

// BaseName returns the file name without directory and extension.
func BaseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// ProcessedPath returns the sibling path the quantizer writes to for the image at path.
func ProcessedPath(path string) string {
	return filepath.Join(filepath.Dir(path), BaseName(path)+ProcessedSuffix+ImageExtension)
}
