package script

import "errors"

// Sentinel errors for script parsing and execution.
var (
	// ErrEmptyScript indicates a script with no steps.
	ErrEmptyScript = errors.New("script: no steps")
	// ErrUnknownOp indicates a step whose op is not recognised.
	ErrUnknownOp = errors.New("script: unknown op")
	// ErrMissingValue indicates an append or update step without a value.
	ErrMissingValue = errors.New("script: op requires a value")
	// ErrNilInput indicates Run was called with a nil script or array.
	ErrNilInput = errors.New("script: nil script or array")
)

// Op names one DynamicArray operation.
type Op string

const (
	OpAppend     Op = "append"
	OpGet        Op = "get"
	OpUpdate     Op = "update"
	OpDeleteLast Op = "delete_last"
	OpIsEmpty    Op = "is_empty"
	OpSize       Op = "size"
	OpClear      Op = "clear"
	OpPrint      Op = "print"
)

// Valid reports whether op is a known operation.
func (op Op) Valid() bool {
	switch op {
	case OpAppend, OpGet, OpUpdate, OpDeleteLast, OpIsEmpty, OpSize, OpClear, OpPrint:
		return true
	}

	return false
}

// needsValue reports whether op writes a caller-supplied value.
func (op Op) needsValue() bool {
	return op == OpAppend || op == OpUpdate
}

// Script is a named, ordered list of steps.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is one operation. Index is used by get and update, Value by append
// and update. Value is kept as decoded from YAML (int, string, float64, …).
type Step struct {
	Op    Op  `yaml:"op"`
	Index int `yaml:"index,omitempty"`
	Value any `yaml:"value,omitempty"`
}

// Entry records the outcome of one step.
type Entry struct {
	Step     int    // 1-based step number
	Op       Op     // operation executed
	Result   string // value returned by get/is_empty/size, else empty
	Count    int    // Size() after the step
	Capacity int    // Cap() after the step
	Rendered string // String() after the step
	Err      string // error text, empty on success
}

// Trace is the ordered list of entries produced by Run.
type Trace struct {
	Script  string
	Entries []Entry
}

// Counts returns the Size() series, one point per entry.
func (tr *Trace) Counts() []float64 {
	out := make([]float64, len(tr.Entries))
	for i, e := range tr.Entries {
		out[i] = float64(e.Count)
	}

	return out
}

// Capacities returns the Cap() series, one point per entry.
func (tr *Trace) Capacities() []float64 {
	out := make([]float64, len(tr.Entries))
	for i, e := range tr.Entries {
		out[i] = float64(e.Capacity)
	}

	return out
}

// Failed returns the entries that recorded an error.
func (tr *Trace) Failed() []Entry {
	var out []Entry
	for _, e := range tr.Entries {
		if e.Err != "" {
			out = append(out, e)
		}
	}

	return out
}
