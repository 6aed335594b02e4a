package seq

import (
	"fmt"
	"iter"
)

// Seq is a growable, contiguous, randomly indexable sequence of elements.
//
// Seq owns its backing storage. Slots in [0, Len()) hold live elements,
// slots in [Len(), Cap()) are zeroed and never observable through the API.
// When a Push doesn't fit into the current storage, Seq reallocates it
// to max(1, 2*Cap()) slots and copies live elements into the new storage in order.
// Capacity never shrinks implicitly: neither Erase nor Clear release the storage,
// only MoveFrom/CopyFrom on the receiver or moving the storage out with Move do.
//
// The zero value is an empty Seq ready to use.
//
// Seq isn't safe for concurrent use.
// Seq should be passed by pointer, copying the struct itself aliases the backing storage,
// so to get an independent copy use seq.Seq.Clone or seq.Seq.CopyFrom.
type Seq[T any] struct {
	data []T
	size int

	grows     int
	relocated int
}

// New creates an empty seq.Seq without any allocation.
func New[T any]() *Seq[T] {
	return &Seq[T]{}
}

// Of creates a seq.Seq and pushes all elems into it in order.
func Of[T any](elems ...T) *Seq[T] {
	result := &Seq[T]{}
	for _, e := range elems {
		result.Push(e)
	}
	return result
}

// Push appends v as the new last element, growing the storage if necessary.
func (s *Seq[T]) Push(v T) {
	if s.size == len(s.data) {
		s.grow(nextCapacity(len(s.data)))
	}
	s.data[s.size] = v
	s.size++
}

// Erase removes the element at idx and shifts all subsequent elements
// one position toward the front, preserving their relative order.
//
// Returns an error that matches seq.OutOfRangeError if idx doesn't point to a live element,
// in such case the Seq is left unchanged.
func (s *Seq[T]) Erase(idx int) error {
	if !s.inBounds(idx) {
		return outOfRange(idx, s.size)
	}
	copy(s.data[idx:s.size], s.data[idx+1:s.size])
	s.size--
	var zero T
	s.data[s.size] = zero
	return nil
}

// Get returns a copy of the element at idx.
func (s *Seq[T]) Get(idx int) (T, error) {
	if !s.inBounds(idx) {
		var zero T
		return zero, outOfRange(idx, s.size)
	}
	return s.data[idx], nil
}

// Ref returns a pointer to the element at idx, that can be used for in-place modification.
//
// The pointer refers to the current backing storage, so it becomes stale
// after the next growth step and shouldn't be retained across Push calls.
func (s *Seq[T]) Ref(idx int) (*T, error) {
	if !s.inBounds(idx) {
		return nil, outOfRange(idx, s.size)
	}
	return &s.data[idx], nil
}

// Set replaces the element at idx.
func (s *Seq[T]) Set(idx int, v T) error {
	if !s.inBounds(idx) {
		return outOfRange(idx, s.size)
	}
	s.data[idx] = v
	return nil
}

// Len returns the count of live elements.
func (s *Seq[T]) Len() int {
	return s.size
}

// Cap returns the count of allocated slots.
func (s *Seq[T]) Cap() int {
	return len(s.data)
}

// IsEmpty reports whether there are no live elements.
func (s *Seq[T]) IsEmpty() bool {
	return s.size == 0
}

// Clear logically empties the Seq but retains its storage.
// Live slots are zeroed, so elements referenced from them can be collected.
func (s *Seq[T]) Clear() {
	clear(s.data[:s.size])
	s.size = 0
}

// Clone creates an independent seq.Seq with the same capacity and elements.
// Elements are copied by assignment, so pointer-like elements
// will share their targets with the original. Use CloneFunc for deep copies.
func (s *Seq[T]) Clone() *Seq[T] {
	result := &Seq[T]{}
	result.CopyFrom(s)
	return result
}

// CloneFunc is similar to Clone, but uses copyElem to copy every live element.
func (s *Seq[T]) CloneFunc(copyElem func(T) T) *Seq[T] {
	result := &Seq[T]{
		data: make([]T, len(s.data)),
		size: s.size,
	}
	for i := 0; i < s.size; i++ {
		result.data[i] = copyElem(s.data[i])
	}
	return result
}

// CopyFrom replaces the content of s with a copy of src.
// The previous storage of s is released and the new one has the capacity of src.
// Copying from itself is a no-op.
func (s *Seq[T]) CopyFrom(src *Seq[T]) {
	if s == src {
		return
	}
	data := make([]T, len(src.data))
	copy(data, src.data[:src.size])
	s.data = data
	s.size = src.size
	s.grows = 0
	s.relocated = 0
}

// Move transfers the storage of s into a new seq.Seq and leaves s empty without storage.
func (s *Seq[T]) Move() *Seq[T] {
	result := &Seq[T]{}
	result.MoveFrom(s)
	return result
}

// MoveFrom transfers the storage of src into s, releasing the previous storage of s.
// src is left empty without storage. Moving from itself is a no-op.
func (s *Seq[T]) MoveFrom(src *Seq[T]) {
	if s == src {
		return
	}
	*s = *src
	*src = Seq[T]{}
}

// All returns an iterator over live elements and their indexes.
// The Seq shouldn't be modified during iteration.
func (s *Seq[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < s.size; i++ {
			if !yield(i, s.data[i]) {
				return
			}
		}
	}
}

// Slice returns a copy of live elements as a regular slice.
func (s *Seq[T]) Slice() []T {
	result := make([]T, s.size)
	copy(result, s.data[:s.size])
	return result
}

// Stats provides a snapshot of the current storage state.
func (s *Seq[T]) Stats() Stats {
	return Stats{
		Len:       s.size,
		Cap:       len(s.data),
		Grows:     s.grows,
		Relocated: s.relocated,
	}
}

// String provides a string snapshot of the seq.Seq header.
func (s *Seq[T]) String() string {
	return fmt.Sprintf("seq{len: %v cap: %v}", s.size, len(s.data))
}

func (s *Seq[T]) inBounds(idx int) bool {
	return idx >= 0 && idx < s.size
}

func (s *Seq[T]) grow(newCapacity int) {
	newData := make([]T, newCapacity)
	copy(newData, s.data[:s.size])
	s.data = newData
	s.grows++
	s.relocated += s.size
}
