package figure

import (
	"io"
	"math"
)

const pentagonVertices = 5

// pentagonAreaFactor is the area of the regular pentagon with a unit side.
var pentagonAreaFactor = 0.25 * math.Sqrt(5*(5+2*math.Sqrt(5)))

// Pentagon is a regular pentagon. Its area is calculated from the side between vertices 0 and 1.
type Pentagon[T Scalar] struct {
	vertices [pentagonVertices]Point[T]
}

func NewPentagon[T Scalar](p1, p2, p3, p4, p5 Point[T]) *Pentagon[T] {
	return &Pentagon[T]{vertices: [pentagonVertices]Point[T]{p1, p2, p3, p4, p5}}
}

// NewRegularPentagon creates a pentagon inscribed in the circle with center and radius.
// The first vertex lies on the horizontal line through the center.
func NewRegularPentagon[T Scalar](center Point[T], radius T) *Pentagon[T] {
	result := &Pentagon[T]{}
	placeRegularVertices(result.vertices[:], center, radius)
	return result
}

func (p *Pentagon[T]) Clone() *Pentagon[T] {
	c := *p
	return &c
}

func (p *Pentagon[T]) Kind() Kind {
	return KindPentagon
}

func (p *Pentagon[T]) Area() float64 {
	side := distance(p.vertices[0], p.vertices[1])
	return pentagonAreaFactor * side * side
}

func (p *Pentagon[T]) Float64() float64 {
	return p.Area()
}

func (p *Pentagon[T]) Center() Point[T] {
	return centerOf(p.vertices[:])
}

func (p *Pentagon[T]) Equal(other Figure[T]) bool {
	o, ok := other.(*Pentagon[T])
	return ok && o != nil && equalVertices(p.vertices[:], o.vertices[:])
}

// Vertex returns the vertex at idx and panics if idx is out of [0, 5).
func (p *Pentagon[T]) Vertex(idx int) Point[T] {
	return p.vertices[idx]
}

func (p *Pentagon[T]) Vertices() []Point[T] {
	return append([]Point[T](nil), p.vertices[:]...)
}

func (p *Pentagon[T]) Print(w io.Writer) error {
	return printVertices(w, KindPentagon, p.vertices[:])
}

func (p *Pentagon[T]) Parse(in io.Reader) error {
	return parseVertices(in, p.vertices[:])
}

func (p *Pentagon[T]) String() string {
	return stringOf[T](p)
}

func (p *Pentagon[T]) sealed() {}
