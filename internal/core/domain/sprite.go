package domain

import (
	"regexp"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

var symbolRegex = regexp.MustCompile(`^[A-Z_][A-Z0-9_]*$`)

// Sprite describes one image discovered by the generator.
type Sprite struct {
	Name   string
	Width  int
	Height int
}

// Symbol returns the enumeration constant for the sprite.
// The name is upper-cased and otherwise left untouched; names that would not
// form a valid identifier are rejected instead of producing code that does not compile.
func (s Sprite) Symbol() (string, error) {
	return EnumSymbol(s.Name)
}

// EnumSymbol upper-cases name and validates it as an identifier.
func EnumSymbol(name string) (string, error) {
	symbol := strings.ToUpper(name)
	if !symbolRegex.MatchString(symbol) {
		return "", zerr.With(ErrInvalidSpriteName, "name", name)
	}
	return symbol, nil
}

// SortSprites orders sprites by name.
func SortSprites(sprites []Sprite) {
	slices.SortFunc(sprites, func(a, b Sprite) int {
		return strings.Compare(a.Name, b.Name)
	})
}
