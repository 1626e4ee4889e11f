// SPDX-License-Identifier: MIT

package dynarray

import "errors"

// InitialCapacity is the capacity of a new or cleared DynamicArray and the
// floor below which it never shrinks.
const InitialCapacity = 4

const (
	growFactor    = 2 // capacity multiplier when full
	shrinkDivisor = 2 // capacity divisor when sparse
	sparseRatio   = 4 // shrink once count <= capacity/sparseRatio
)

// Sentinel errors for dynarray operations.
var (
	// ErrInvalidCapacity indicates a resize to a non-positive capacity.
	ErrInvalidCapacity = errors.New("dynarray: capacity must be greater than 0")

	// ErrIndexOutOfRange indicates an index outside [-Size(), Size()-1].
	ErrIndexOutOfRange = errors.New("dynarray: index out of range")

	// ErrEmptyArray indicates a removal from an array with no elements.
	ErrEmptyArray = errors.New("dynarray: cannot delete from an empty array")
)

// DynamicArray is a growable sequence of T stored in one contiguous buffer.
//
// count is the number of logical elements; len(storage) is the capacity.
// storage[0:count] holds the sequence in insertion order, and slots at
// count and beyond hold the zero value of T.
//
// The zero value is not ready for use; construct with New.
type DynamicArray[T any] struct {
	count   int
	storage []T
}
