package ports

import "go.trai.ch/spritekit/internal/core/domain"

// Reporter is the abstraction for user-facing progress output.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// OnQuantized is called after path was replaced by its quantized version.
	OnQuantized(path string, before, after int64)

	// OnQuantComplete is called once the pipeline has finished, successfully or not.
	OnQuantComplete(stats domain.QuantStats)

	// OnArtifact is called for every generated artifact.
	OnArtifact(path string, changed bool)
}
