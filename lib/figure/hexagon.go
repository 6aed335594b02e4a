package figure

import (
	"io"
	"math"
)

const hexagonVertices = 6

var hexagonAreaFactor = 3 * math.Sqrt(3) / 2

// Hexagon is a regular hexagon. Its area is calculated from the side between vertices 0 and 1,
// which is equal to the circumradius.
type Hexagon[T Scalar] struct {
	vertices [hexagonVertices]Point[T]
}

func NewHexagon[T Scalar](p1, p2, p3, p4, p5, p6 Point[T]) *Hexagon[T] {
	return &Hexagon[T]{vertices: [hexagonVertices]Point[T]{p1, p2, p3, p4, p5, p6}}
}

// NewRegularHexagon creates a hexagon inscribed in the circle with center and radius.
func NewRegularHexagon[T Scalar](center Point[T], radius T) *Hexagon[T] {
	result := &Hexagon[T]{}
	placeRegularVertices(result.vertices[:], center, radius)
	return result
}

func (h *Hexagon[T]) Clone() *Hexagon[T] {
	c := *h
	return &c
}

func (h *Hexagon[T]) Kind() Kind {
	return KindHexagon
}

func (h *Hexagon[T]) Area() float64 {
	side := distance(h.vertices[0], h.vertices[1])
	return hexagonAreaFactor * side * side
}

func (h *Hexagon[T]) Float64() float64 {
	return h.Area()
}

func (h *Hexagon[T]) Center() Point[T] {
	return centerOf(h.vertices[:])
}

func (h *Hexagon[T]) Equal(other Figure[T]) bool {
	o, ok := other.(*Hexagon[T])
	return ok && o != nil && equalVertices(h.vertices[:], o.vertices[:])
}

// Vertex returns the vertex at idx and panics if idx is out of [0, 6).
func (h *Hexagon[T]) Vertex(idx int) Point[T] {
	return h.vertices[idx]
}

func (h *Hexagon[T]) Vertices() []Point[T] {
	return append([]Point[T](nil), h.vertices[:]...)
}

func (h *Hexagon[T]) Print(w io.Writer) error {
	return printVertices(w, KindHexagon, h.vertices[:])
}

func (h *Hexagon[T]) Parse(in io.Reader) error {
	return parseVertices(in, h.vertices[:])
}

func (h *Hexagon[T]) String() string {
	return stringOf[T](h)
}

func (h *Hexagon[T]) sealed() {}
