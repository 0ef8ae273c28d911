package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when the config file parses but describes an unusable setup.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrCacheReadFailed is returned when the mtime cache exists but cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read mtime cache")

	// ErrCacheDecodeFailed is returned when the mtime cache snapshot is corrupt.
	ErrCacheDecodeFailed = zerr.New("failed to decode mtime cache")

	// ErrCacheEncodeFailed is returned when the mtime cache cannot be serialized.
	ErrCacheEncodeFailed = zerr.New("failed to encode mtime cache")

	// ErrCacheWriteFailed is returned when the mtime cache cannot be written or renamed into place.
	ErrCacheWriteFailed = zerr.New("failed to write mtime cache")

	// ErrRootNotFound is returned when a configured asset root does not exist.
	ErrRootNotFound = zerr.New("asset root not found")

	// ErrWalkFailed is returned when a directory cannot be traversed.
	ErrWalkFailed = zerr.New("failed to walk directory")

	// ErrPathStatFailed is returned when stating a path fails.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrQuantizeFailed is returned when the quantization tool exits with an error.
	ErrQuantizeFailed = zerr.New("quantization failed")

	// ErrReplaceFailed is returned when the quantized output cannot replace the original file.
	ErrReplaceFailed = zerr.New("failed to replace original with quantized output")

	// ErrToolNotConfigured is returned when an external tool command is empty.
	ErrToolNotConfigured = zerr.New("external tool command is empty")

	// ErrToolFailed is returned when an external tool exits with a non-zero status.
	ErrToolFailed = zerr.New("command failed")

	// ErrIdentifyFailed is returned when the image identification tool fails.
	ErrIdentifyFailed = zerr.New("failed to identify image")

	// ErrIdentifyParse is returned when the identification tool output is not "<width> <height>".
	ErrIdentifyParse = zerr.New("unexpected image identification output")

	// ErrListFailed is returned when a sprite directory cannot be listed.
	ErrListFailed = zerr.New("failed to list sprite directory")

	// ErrNoSprites is returned when a sprite group contains no images.
	ErrNoSprites = zerr.New("no sprites found")

	// ErrInvalidSpriteName is returned when a sprite name does not produce a valid enum symbol.
	ErrInvalidSpriteName = zerr.New("sprite name is not a valid identifier")

	// ErrArtifactWriteFailed is returned when a generated artifact cannot be written.
	ErrArtifactWriteFailed = zerr.New("failed to write generated artifact")

	// ErrCleanFailed is returned when a cache or artifact file cannot be removed.
	ErrCleanFailed = zerr.New("failed to remove file")
)
