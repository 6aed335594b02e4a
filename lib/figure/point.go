package figure

import (
	"fmt"
	"io"
)

// Point is a pair of coordinates.
type Point[T Scalar] struct {
	X T
	Y T
}

// Pt is a shorthand for Point{X: x, Y: y}.
func Pt[T Scalar](x T, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Equal compares coordinates exactly for integer types
// and with figure.Tolerance for floating point types.
func (p Point[T]) Equal(other Point[T]) bool {
	return scalarEqual(p.X, other.X) && scalarEqual(p.Y, other.Y)
}

// String renders the point as (x, y).
func (p Point[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// Parse reads two whitespace separated coordinates from r.
// p is left unchanged if the input is malformed.
func (p *Point[T]) Parse(r io.Reader) error {
	var x, y T
	n, scanErr := fmt.Fscan(r, &x, &y)
	if scanErr != nil {
		return fmt.Errorf("%w: coordinate %d: %w", MalformedInputError, n, scanErr)
	}
	p.X, p.Y = x, y
	return nil
}
