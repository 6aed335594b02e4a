package figure

import (
	"io"
)

const rhombusVertices = 4

// Rhombus is a quadrilateral figure. Its area is calculated from the
// diagonals between vertices 0-2 and 1-3.
type Rhombus[T Scalar] struct {
	vertices [rhombusVertices]Point[T]
}

func NewRhombus[T Scalar](p1, p2, p3, p4 Point[T]) *Rhombus[T] {
	return &Rhombus[T]{vertices: [rhombusVertices]Point[T]{p1, p2, p3, p4}}
}

// NewRegularRhombus creates a square inscribed in the circle with center and radius.
func NewRegularRhombus[T Scalar](center Point[T], radius T) *Rhombus[T] {
	result := &Rhombus[T]{}
	placeRegularVertices(result.vertices[:], center, radius)
	return result
}

func (r *Rhombus[T]) Clone() *Rhombus[T] {
	c := *r
	return &c
}

func (r *Rhombus[T]) Kind() Kind {
	return KindRhombus
}

func (r *Rhombus[T]) Area() float64 {
	d1 := distance(r.vertices[0], r.vertices[2])
	d2 := distance(r.vertices[1], r.vertices[3])
	return d1 * d2 / 2
}

func (r *Rhombus[T]) Float64() float64 {
	return r.Area()
}

func (r *Rhombus[T]) Center() Point[T] {
	return centerOf(r.vertices[:])
}

func (r *Rhombus[T]) Equal(other Figure[T]) bool {
	o, ok := other.(*Rhombus[T])
	return ok && o != nil && equalVertices(r.vertices[:], o.vertices[:])
}

// Vertex returns the vertex at idx and panics if idx is out of [0, 4).
func (r *Rhombus[T]) Vertex(idx int) Point[T] {
	return r.vertices[idx]
}

func (r *Rhombus[T]) Vertices() []Point[T] {
	return append([]Point[T](nil), r.vertices[:]...)
}

func (r *Rhombus[T]) Print(w io.Writer) error {
	return printVertices(w, KindRhombus, r.vertices[:])
}

func (r *Rhombus[T]) Parse(in io.Reader) error {
	return parseVertices(in, r.vertices[:])
}

func (r *Rhombus[T]) String() string {
	return stringOf[T](r)
}

func (r *Rhombus[T]) sealed() {}
