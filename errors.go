package phys2d

import (
	"fmt"
	"math"
)

// validateBodyParams rejects the precondition violations spec.md §7
// calls out for body construction: NaN position and non-positive
// density (which would otherwise produce a zero or negative mass).
func validateBodyParams(position Vec2, density float64) error {
	if math.IsNaN(position.X) || math.IsNaN(position.Y) {
		return fmt.Errorf("phys2d: body position is NaN: %v", position)
	}
	if density <= 0 {
		return fmt.Errorf("phys2d: body density must be positive, got %g", density)
	}
	return nil
}

// assert panics with a formatted message on an internal invariant
// violation — a bug in the engine itself, not bad caller input. Kept
// separate from the error returns above the same way the teacher's own
// debug assertions are kept separate from its public API errors.
func assert(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
