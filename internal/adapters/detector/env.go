// Package detector provides environment detection for colour selection.
package detector

import (
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/spritekit/internal/ui/output"
	"golang.org/x/term"
)

// ColorEnv is the environment variable that overrides colour detection.
// Accepted values are "auto", "always" and "never".
const ColorEnv = "SPRITEKIT_COLOR"

// ColorMode represents whether progress output is coloured.
type ColorMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto ColorMode = iota
	// ModeColor forces coloured output.
	ModeColor
	// ModePlain forces plain output.
	ModePlain
)

// DetectEnvironment returns the recommended colour mode for f.
// Output that is not a terminal, CI runs and NO_COLOR all get plain text.
func DetectEnvironment(f *os.File) ColorMode {
	isTTY := f != nil && term.IsTerminal(int(f.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI || os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}
	return ModeColor
}

// ResolveMode applies the user override to auto-detection.
// userFlag should be one of: "auto", "always", "never", or empty.
func ResolveMode(autoDetected ColorMode, userFlag string) ColorMode {
	switch userFlag {
	case "always":
		return ModeColor
	case "never":
		return ModePlain
	default:
		return autoDetected
	}
}

// Profile maps a colour mode to a termenv profile.
func Profile(mode ColorMode) termenv.Profile {
	if mode == ModeColor {
		if p := output.ColorProfile(); p != termenv.Ascii {
			return p
		}
		return termenv.ANSI
	}
	return termenv.Ascii
}

// StdoutProfile resolves the profile for progress output on stdout.
func StdoutProfile() termenv.Profile {
	return Profile(ResolveMode(DetectEnvironment(os.Stdout), os.Getenv(ColorEnv)))
}
