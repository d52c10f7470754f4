package efficiency

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks a validation failure on elicited values,
	// percentiles or pour fractions.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownScenario marks a lookup of a key absent from the table.
	ErrUnknownScenario = errors.New("unknown scenario")

	// ErrCircularReference marks an alias chain that revisits a key.
	ErrCircularReference = errors.New("circular reference")

	// ErrDanglingReference marks an alias pointing at a nonexistent key.
	ErrDanglingReference = errors.New("reference to unknown scenario")
)

// FitError reports that the optimizer found no acceptable parameter pair in
// the search domain.
type FitError struct {
	Reason string
	Alpha  float64
}

func (e *FitError) Error() string {
	if e.Alpha != 0 {
		return fmt.Sprintf("fit failed: %s (alpha=%g)", e.Reason, e.Alpha)
	}
	return fmt.Sprintf("fit failed: %s", e.Reason)
}
