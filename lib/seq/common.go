package seq

import (
	"fmt"
)

// Error type used by the library to declare error constants.
type Error string

// Error method that implements error interface.
func (e Error) Error() string {
	return string(e)
}

// OutOfRangeError is returned by index based operations
// if the index doesn't point to a live element.
const OutOfRangeError = Error("index out of range")

// Stats is a struct that represents a snapshot of the container state,
// that can be used by end-users for introspection.
type Stats struct {
	Len       int // count of live elements
	Cap       int // count of allocated slots
	Grows     int // count of backing storage reallocations
	Relocated int // count of elements copied from old storage to the new one during growth
}

// String provides a string snapshot of the Stats state.
func (s Stats) String() string {
	return fmt.Sprintf(
		"{Len: %v Cap: %v Grows: %v Relocated: %v}",
		s.Len, s.Cap, s.Grows, s.Relocated,
	)
}

func outOfRange(idx int, size int) error {
	return fmt.Errorf("%w [%d] with length %d", OutOfRangeError, idx, size)
}

func nextCapacity(capacity int) int {
	if capacity == 0 {
		return 1
	}
	return capacity * 2
}
