package figure

import (
	"fmt"
	"strings"
)

// Kind identifies one of the supported figure variants.
type Kind uint8

const (
	KindRhombus Kind = iota + 1
	KindPentagon
	KindHexagon
)

// Kinds lists all supported figure kinds.
var Kinds = []Kind{KindRhombus, KindPentagon, KindHexagon}

func (k Kind) String() string {
	switch k {
	case KindRhombus:
		return "Rhombus"
	case KindPentagon:
		return "Pentagon"
	case KindHexagon:
		return "Hexagon"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// VertexCount returns the fixed count of vertices of the kind, or 0 for unknown kinds.
func (k Kind) VertexCount() int {
	switch k {
	case KindRhombus:
		return rhombusVertices
	case KindPentagon:
		return pentagonVertices
	case KindHexagon:
		return hexagonVertices
	default:
		return 0
	}
}

// ParseKind resolves a kind by its case-insensitive name.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(k.String(), strings.TrimSpace(name)) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", UnknownKindError, name)
}
