package script

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Parse decodes a YAML script and validates every step.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks that the script has steps, every op is known and every
// append/update carries a value.
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return ErrEmptyScript
	}
	for i, st := range s.Steps {
		if !st.Op.Valid() {
			return fmt.Errorf("%w %q at step %d", ErrUnknownOp, st.Op, i+1)
		}
		if st.Op.needsValue() && st.Value == nil {
			return fmt.Errorf("%w: %s at step %d", ErrMissingValue, st.Op, i+1)
		}
	}

	return nil
}

// Marshal encodes the script as YAML.
func (s *Script) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// Default returns the built-in demonstration: fill to capacity, read with
// positive and negative indices, update, grow past the first boundary,
// remove twice, then clear.
func Default() *Script {
	return &Script{
		Name: "demo",
		Steps: []Step{
			{Op: OpPrint},
			{Op: OpAppend, Value: 10},
			{Op: OpAppend, Value: 20},
			{Op: OpAppend, Value: 30},
			{Op: OpAppend, Value: 40},
			{Op: OpGet, Index: 0},
			{Op: OpGet, Index: 2},
			{Op: OpGet, Index: -1},
			{Op: OpGet, Index: -2},
			{Op: OpUpdate, Index: 1, Value: 50},
			{Op: OpAppend, Value: 60},
			{Op: OpAppend, Value: 70},
			{Op: OpDeleteLast},
			{Op: OpDeleteLast},
			{Op: OpIsEmpty},
			{Op: OpClear},
			{Op: OpPrint},
		},
	}
}
