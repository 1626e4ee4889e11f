// SPDX-License-Identifier: MIT

package dynarray

import "fmt"

// New returns an empty DynamicArray with InitialCapacity slots.
// Complexity: O(1).
func New[T any]() *DynamicArray[T] {
	a := &DynamicArray[T]{}
	// InitialCapacity is positive, resize cannot fail here
	_ = a.resize(InitialCapacity)

	return a
}

// Append adds value after the last element.
// When the buffer is full it is doubled before the write.
// Complexity: amortized O(1); O(n) when it grows.
func (a *DynamicArray[T]) Append(value T) {
	if a.count == len(a.storage) {
		_ = a.resize(len(a.storage) * growFactor)
	}
	a.storage[a.count] = value
	a.count++
}

// Get returns the element at index. Negative indices count from the end,
// so the valid domain is [-Size(), Size()-1].
// Returns ErrIndexOutOfRange otherwise.
// Complexity: O(1).
func (a *DynamicArray[T]) Get(index int) (T, error) {
	pos, err := a.position(index)
	if err != nil {
		var zero T
		return zero, err
	}

	return a.storage[pos], nil
}

// Update overwrites the element at index, using the same index domain as Get.
// Returns ErrIndexOutOfRange and leaves the array untouched on a bad index.
// Complexity: O(1).
func (a *DynamicArray[T]) Update(index int, value T) error {
	pos, err := a.position(index)
	if err != nil {
		return err
	}
	a.storage[pos] = value

	return nil
}

// DeleteLast removes the last element. Returns ErrEmptyArray when there is
// nothing to remove.
//
// After the removal, if Size() <= Cap()/4 and Cap() > InitialCapacity, the
// buffer is halved.
// Complexity: amortized O(1); O(n) when it shrinks.
func (a *DynamicArray[T]) DeleteLast() error {
	if a.count == 0 {
		return ErrEmptyArray
	}
	a.count--
	// release the vacated slot so the buffer does not pin the old value
	var zero T
	a.storage[a.count] = zero

	capacity := len(a.storage)
	if a.count <= capacity/sparseRatio && capacity > InitialCapacity {
		return a.resize(capacity / shrinkDivisor)
	}

	return nil
}

// position translates a possibly negative index into a slot position.
func (a *DynamicArray[T]) position(index int) (int, error) {
	if index < -a.count || index >= a.count {
		return 0, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, a.count)
	}
	if index < 0 {
		return a.count + index, nil
	}

	return index, nil
}

// resize replaces storage with a fresh buffer of newCapacity slots and
// copies the first count elements into it. It is the only place storage is
// ever reassigned.
// Returns ErrInvalidCapacity for newCapacity <= 0 without touching the array.
// Complexity: O(count) time, O(newCapacity) memory.
func (a *DynamicArray[T]) resize(newCapacity int) error {
	if newCapacity <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCapacity, newCapacity)
	}
	next := make([]T, newCapacity)
	copy(next, a.storage[:a.count])
	a.storage = next

	return nil
}
