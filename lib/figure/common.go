package figure

import (
	"math"
	"reflect"
)

// Error type used by the library to declare error constants.
type Error string

// Error method that implements error interface.
func (e Error) Error() string {
	return string(e)
}

// MalformedInputError is returned if textual input can't be parsed into figure vertices.
const MalformedInputError = Error("malformed figure input")

// UnknownKindError is returned if the figure kind isn't one of the supported kinds.
const UnknownKindError = Error("unknown figure kind")

// VertexCountError is returned if the count of vertices doesn't match the figure kind.
const VertexCountError = Error("wrong count of vertices")

// Scalar is a set of types that can be used as figure coordinates.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Tolerance used to compare floating point coordinates.
const Tolerance = 1e-6

func isFloat[T Scalar]() bool {
	kind := reflect.TypeFor[T]().Kind()
	return kind == reflect.Float32 || kind == reflect.Float64
}

func scalarEqual[T Scalar](a T, b T) bool {
	if isFloat[T]() {
		return math.Abs(float64(a)-float64(b)) < Tolerance
	}
	return a == b
}

func distance[T Scalar](a Point[T], b Point[T]) float64 {
	return math.Hypot(float64(a.X)-float64(b.X), float64(a.Y)-float64(b.Y))
}
