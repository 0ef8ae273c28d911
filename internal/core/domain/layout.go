package domain

const (
	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = "spritekit.yaml"

	// DefaultCacheFile is the name of the mtime cache snapshot, relative to the project root.
	DefaultCacheFile = ".quant.dat"

	// DefaultEnumOutput is the default path of the generated sprite enumeration.
	DefaultEnumOutput = "sprite_enum.hpp"

	// DefaultArrayOutput is the default path of the generated sprite metadata table.
	DefaultArrayOutput = "sprite_array.hpp"

	// DefaultSpriteDir is the default sprite directory scanned by the generator.
	DefaultSpriteDir = "sprite"

	// DefaultSpriteEnum is the default enumeration name for the sprite group.
	DefaultSpriteEnum = "sprite"

	// ImageExtension is the extension of images handled by both tools.
	ImageExtension = ".png"

	// ProcessedSuffix marks quantizer output; files carrying it are never quantized again.
	ProcessedSuffix = "-fs8"

	// HiddenPrefix marks files and directories that are ignored.
	HiddenPrefix = "."

	// AutogenMarker is the first line of every generated artifact.
	AutogenMarker = "// This file is automatically generated."

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultRoots returns the asset roots quantized when no configuration overrides them.
func DefaultRoots() []string {
	return []string{"sprite", "ui", "level"}
}

// DefaultQuantizerCommand returns the quantizer invocation prefix.
// The pipeline appends "-o <output> <input>".
func DefaultQuantizerCommand() []string {
	return []string{"pngquant"}
}

// DefaultIdentifierCommand returns the image identification invocation prefix.
// The generator appends the image path.
func DefaultIdentifierCommand() []string {
	return []string{"gm", "identify", "-format", "%w %h"}
}
