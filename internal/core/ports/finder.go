package ports

import "iter"

// AssetFinder locates image files on disk.
//
//go:generate mockgen -source=finder.go -destination=mocks/mock_finder.go -package=mocks
type AssetFinder interface {
	// WalkCandidates yields quantization candidates below root, recursing into
	// every directory that is not hidden. A traversal error is yielded once and
	// ends the sequence.
	WalkCandidates(root string) iter.Seq2[string, error]

	// ListImages returns the visible images directly inside dir.
	ListImages(dir string) ([]string, error)
}
