package script

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/dynarray/dynarray"
)

// Run executes every step of s against arr and returns the trace.
// Array errors are recorded per entry and do not abort the run.
// Returns ErrNilInput if s or arr is nil, or the validation error of s.
// Complexity: O(steps) array operations.
func Run(s *Script, arr *dynarray.DynamicArray[any]) (*Trace, error) {
	if s == nil || arr == nil {
		return nil, ErrNilInput
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	tr := &Trace{Script: s.Name, Entries: make([]Entry, 0, len(s.Steps))}
	for i, st := range s.Steps {
		result, err := apply(arr, st)
		e := Entry{
			Step:     i + 1,
			Op:       st.Op,
			Result:   result,
			Count:    arr.Size(),
			Capacity: arr.Cap(),
			Rendered: arr.String(),
		}
		if err != nil {
			e.Err = err.Error()
		}
		tr.Entries = append(tr.Entries, e)
	}

	return tr, nil
}

// apply performs a single step and returns its textual result, if any.
func apply(arr *dynarray.DynamicArray[any], st Step) (string, error) {
	switch st.Op {
	case OpAppend:
		arr.Append(st.Value)
	case OpGet:
		v, err := arr.Get(st.Index)
		if err != nil {
			return "", err
		}
		return fmt.Sprint(v), nil
	case OpUpdate:
		return "", arr.Update(st.Index, st.Value)
	case OpDeleteLast:
		return "", arr.DeleteLast()
	case OpIsEmpty:
		return strconv.FormatBool(arr.IsEmpty()), nil
	case OpSize:
		return strconv.Itoa(arr.Size()), nil
	case OpClear:
		arr.Clear()
	case OpPrint:
		// state is captured on the entry
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownOp, st.Op)
	}

	return "", nil
}
