// Package script replays YAML operation scripts against a
// dynarray.DynamicArray and records what the array looked like after every
// step.
//
// A script is a named list of steps:
//
//	name: demo
//	steps:
//	  - {op: append, value: 10}
//	  - {op: get, index: -1}
//	  - {op: delete_last}
//
// Ops: append, get, update, delete_last, is_empty, size, clear, print.
// append and update need a value; get and update use index, which may be
// negative.
//
// Errors returned by the array (out of range, empty) do not stop a run; they
// are recorded on the step's Entry. Default returns the built-in
// demonstration script.
package script
