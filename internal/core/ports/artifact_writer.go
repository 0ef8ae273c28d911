package ports

// ArtifactWriter writes generated source fragments.
//
//go:generate mockgen -source=artifact_writer.go -destination=mocks/mock_artifact_writer.go -package=mocks
type ArtifactWriter interface {
	// Write stores data at path. It reports whether the file content changed;
	// an unchanged file is left untouched.
	Write(path string, data []byte) (bool, error)
}
