// Package figure provides regular polygon figures with a fixed count of vertices.
//
// Figures are used through the Figure interface, which is sealed, so the set of
// variants is closed and consists of *Rhombus, *Pentagon and *Hexagon.
// Figures are referenced by pointers, copying a Figure value doesn't copy vertices,
// so multiple holders can share the same figure. Use Clone for an independent copy.
package figure

import (
	"bytes"
	"fmt"
	"io"
	"math"
)

// Figure is the set of operations supported by all figure variants.
type Figure[T Scalar] interface {
	fmt.Stringer

	// Kind returns the variant tag of the figure.
	Kind() Kind
	// Area returns the non-negative area of the figure.
	Area() float64
	// Float64 returns the numeric value of the figure, which is its area.
	Float64() float64
	// Center returns the arithmetic mean of all vertices.
	Center() Point[T]
	// Equal reports whether other is the same variant with equal vertices in the same order.
	Equal(other Figure[T]) bool
	// Vertices returns a copy of figure vertices.
	Vertices() []Point[T]
	// Print writes "<Kind>: (x1, y1) ... (xN, yN) " to w.
	Print(w io.Writer) error
	// Parse reads N coordinate pairs from r and replaces figure vertices.
	// If the input is malformed the figure is left unchanged.
	//
	// Parse consumes one extra rune after the last coordinate if r isn't an io.RuneScanner,
	// so use bufio.Reader or strings.Reader to parse consecutive figures from one stream.
	Parse(r io.Reader) error

	sealed()
}

// New creates a figure of kind with all vertices at the origin.
func New[T Scalar](kind Kind) (Figure[T], error) {
	switch kind {
	case KindRhombus:
		return &Rhombus[T]{}, nil
	case KindPentagon:
		return &Pentagon[T]{}, nil
	case KindHexagon:
		return &Hexagon[T]{}, nil
	default:
		return nil, fmt.Errorf("%w: %v", UnknownKindError, kind)
	}
}

// FromVertices creates a figure of kind from the exact count of vertices.
func FromVertices[T Scalar](kind Kind, vertices []Point[T]) (Figure[T], error) {
	if kind.VertexCount() == 0 {
		return nil, fmt.Errorf("%w: %v", UnknownKindError, kind)
	}
	if len(vertices) != kind.VertexCount() {
		return nil, fmt.Errorf(
			"%w: %v requires %d vertices; actual: %d",
			VertexCountError, kind, kind.VertexCount(), len(vertices),
		)
	}
	switch kind {
	case KindRhombus:
		result := &Rhombus[T]{}
		copy(result.vertices[:], vertices)
		return result, nil
	case KindPentagon:
		result := &Pentagon[T]{}
		copy(result.vertices[:], vertices)
		return result, nil
	default:
		result := &Hexagon[T]{}
		copy(result.vertices[:], vertices)
		return result, nil
	}
}

// NewRegular creates a regular figure of kind inscribed in the circle with center and radius.
func NewRegular[T Scalar](kind Kind, center Point[T], radius T) (Figure[T], error) {
	switch kind {
	case KindRhombus:
		return NewRegularRhombus(center, radius), nil
	case KindPentagon:
		return NewRegularPentagon(center, radius), nil
	case KindHexagon:
		return NewRegularHexagon(center, radius), nil
	default:
		return nil, fmt.Errorf("%w: %v", UnknownKindError, kind)
	}
}

func placeRegularVertices[T Scalar](dst []Point[T], center Point[T], radius T) {
	for i := range dst {
		angle := 2 * math.Pi * float64(i) / float64(len(dst))
		dst[i] = Point[T]{
			X: T(float64(center.X) + float64(radius)*math.Cos(angle)),
			Y: T(float64(center.Y) + float64(radius)*math.Sin(angle)),
		}
	}
}

func centerOf[T Scalar](vertices []Point[T]) Point[T] {
	var x, y T
	for _, v := range vertices {
		x += v.X
		y += v.Y
	}
	n := T(len(vertices))
	return Point[T]{X: x / n, Y: y / n}
}

func equalVertices[T Scalar](a []Point[T], b []Point[T]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func printVertices[T Scalar](w io.Writer, kind Kind, vertices []Point[T]) error {
	var buf bytes.Buffer
	buf.WriteString(kind.String())
	buf.WriteString(": ")
	for _, v := range vertices {
		buf.WriteString(v.String())
		buf.WriteByte(' ')
	}
	_, writeErr := w.Write(buf.Bytes())
	return writeErr
}

func parseVertices[T Scalar](r io.Reader, dst []Point[T]) error {
	parsed := make([]Point[T], len(dst))
	targets := make([]interface{}, 0, 2*len(parsed))
	for i := range parsed {
		targets = append(targets, &parsed[i].X, &parsed[i].Y)
	}
	n, scanErr := fmt.Fscan(r, targets...)
	if scanErr != nil {
		return fmt.Errorf("%w: vertex %d: %w", MalformedInputError, n/2, scanErr)
	}
	copy(dst, parsed)
	return nil
}

func stringOf[T Scalar](f Figure[T]) string {
	var buf bytes.Buffer
	_ = f.Print(&buf)
	return buf.String()
}

var (
	_ Figure[float64] = (*Rhombus[float64])(nil)
	_ Figure[float64] = (*Pentagon[float64])(nil)
	_ Figure[float64] = (*Hexagon[float64])(nil)
)
