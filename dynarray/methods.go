package dynarray

import (
	"fmt"
	"strings"
)

// IsEmpty reports whether the array holds no elements. O(1).
func (a *DynamicArray[T]) IsEmpty() bool {
	return a.count == 0
}

// Size returns the number of elements. O(1).
func (a *DynamicArray[T]) Size() int {
	return a.count
}

// Cap returns the number of allocated slots. O(1).
func (a *DynamicArray[T]) Cap() int {
	return len(a.storage)
}

// Clear removes every element and reallocates the buffer at
// InitialCapacity, whatever the capacity was before.
// Complexity: O(1) plus the allocation.
func (a *DynamicArray[T]) Clear() {
	a.count = 0
	_ = a.resize(InitialCapacity)
}

// Values returns a copy of the elements in order.
// The result never shares memory with the array.
// Complexity: O(n).
func (a *DynamicArray[T]) Values() []T {
	out := make([]T, a.count)
	copy(out, a.storage[:a.count])

	return out
}

// String renders the elements as "[e0, e1, ..., eN]" using fmt.Sprint for
// each one. Unused capacity is never shown. Diagnostic only.
func (a *DynamicArray[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < a.count; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprint(a.storage[i]))
	}
	sb.WriteByte(']')

	return sb.String()
}
