package match

import (
	"errors"
	"fmt"
)

// ErrInvalidSpec reports a fill spec that cannot run: missing datasets,
// missing or unknown key columns, mapping columns absent from the loaded
// files, or no active mapping entries.
var ErrInvalidSpec = errors.New("invalid match spec")

// Validate checks the preconditions Run assumes. The shell calls it once
// after collecting operator input; the core never re-validates. Every active
// mapping must read an existing reference column, and an overwrite with an
// explicit destination must name an existing target column; append
// destinations may be new, the planner derives them.
func (s Spec) Validate() error {
	if s.Reference == nil || s.Target == nil {
		return fmt.Errorf("%w: reference and target datasets must both be loaded", ErrInvalidSpec)
	}
	if s.ReferenceKey == "" {
		return fmt.Errorf("%w: no reference key column selected", ErrInvalidSpec)
	}
	if !s.Reference.HasHeader(s.ReferenceKey) {
		return fmt.Errorf("%w: reference list has no column %q", ErrInvalidSpec, s.ReferenceKey)
	}
	if s.TargetKey == "" {
		return fmt.Errorf("%w: no target key column selected", ErrInvalidSpec)
	}
	if !s.Target.HasHeader(s.TargetKey) {
		return fmt.Errorf("%w: target roster has no column %q", ErrInvalidSpec, s.TargetKey)
	}

	active := 0
	for _, m := range s.Mappings {
		if m.Source == "" {
			continue
		}
		active++
		if !s.Reference.HasHeader(m.Source) {
			return fmt.Errorf("%w: reference list has no column %q to copy from", ErrInvalidSpec, m.Source)
		}
		if m.Mode == ModeOverwrite && m.Destination != "" && !s.Target.HasHeader(m.Destination) {
			return fmt.Errorf("%w: target roster has no column %q to overwrite", ErrInvalidSpec, m.Destination)
		}
	}
	if active == 0 {
		return fmt.Errorf("%w: at least one mapping with a source column is required", ErrInvalidSpec)
	}
	return nil
}
