// Package dynarray provides DynamicArray, a growable, indexable sequence
// backed by one contiguous buffer with amortized O(1) append.
//
// What:
//
//   - Append, Get, Update and DeleteLast over a generic element type T.
//   - Negative indices address from the end: Get(-1) is the last element,
//     Get(-Size()) the first.
//   - Clear drops every element and reallocates the buffer at the initial
//     capacity.
//
// Resize policy:
//
//	grow:   before an Append, if Size() == Cap()         → Cap()*2
//	shrink: after a DeleteLast, if Size() <= Cap()/4
//	        and Cap() > InitialCapacity                  → Cap()/2
//
// Growth fires at 100% full and shrinking only at ≤25% full, so alternating
// Append/DeleteLast around a single boundary never reallocates on every call.
// Capacity never drops below InitialCapacity (4).
//
// Complexity:
//
//   - Append:     amortized O(1), worst case O(n) when it grows.
//   - DeleteLast: amortized O(1), worst case O(n) when it shrinks.
//   - Get/Update/Size/IsEmpty: O(1).
//   - Clear:      O(1) plus allocation of InitialCapacity slots.
//
// Errors:
//
//   - ErrIndexOutOfRange: index outside [-Size(), Size()-1].
//   - ErrEmptyArray:      DeleteLast on an empty array.
//   - ErrInvalidCapacity: internal resize to a non-positive capacity.
//
// A DynamicArray is not safe for concurrent use; guard it externally.
// Values returned by Get are copies of the stored element, and Values
// returns a fresh slice, so no caller ever aliases the internal buffer.
package dynarray
