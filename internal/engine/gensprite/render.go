package gensprite

import (
	"fmt"
	"strings"

	"go.trai.ch/spritekit/internal/core/domain"
	"go.trai.ch/zerr"
)

// RenderEnum renders one enum class per group. The last enumerator carries no
// trailing comma. With counts set, each enum is followed by a
// "const int <ENUM>_COUNT = n;" line.
func RenderEnum(groups []Group, counts bool) ([]byte, error) {
	var b strings.Builder
	b.WriteString(domain.AutogenMarker + "\n")

	for _, group := range groups {
		if len(group.Sprites) == 0 {
			return nil, zerr.With(domain.ErrNoSprites, "enum", group.Enum)
		}

		fmt.Fprintf(&b, "enum class %s {\n", group.Enum)
		for i, sprite := range group.Sprites {
			symbol, err := sprite.Symbol()
			if err != nil {
				return nil, zerr.With(err, "enum", group.Enum)
			}
			if i < len(group.Sprites)-1 {
				fmt.Fprintf(&b, "    %s,\n", symbol)
			} else {
				fmt.Fprintf(&b, "    %s\n", symbol)
			}
		}
		b.WriteString("};\n")

		if counts {
			symbol, err := domain.EnumSymbol(group.Enum)
			if err != nil {
				return nil, err
			}
			fmt.Fprintf(&b, "const int %s_COUNT = %d;\n", symbol, len(group.Sprites))
		}
	}

	return []byte(b.String()), nil
}

// RenderArray renders one initializer per sprite, groups concatenated in order.
func RenderArray(groups []Group) []byte {
	var b strings.Builder
	b.WriteString(domain.AutogenMarker + "\n")

	for _, group := range groups {
		for _, sprite := range group.Sprites {
			fmt.Fprintf(&b, "{ %q, 0, 0, %d, %d },\n", sprite.Name, sprite.Width, sprite.Height)
		}
	}

	return []byte(b.String())
}
