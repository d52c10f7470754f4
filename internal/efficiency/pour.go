package efficiency

import "fmt"

// Pour-fraction adjustment makes elicited efficiencies comparable across
// physical setups with different recoverable-fraction ceilings. Elicited
// values are normalized before fitting so the persisted parameters describe
// a fraction-agnostic distribution; resolved outputs are denormalized back
// to scenario-specific terms.

// Normalize rescales a value onto the fraction-agnostic scale.
func Normalize(value, fraction float64) (float64, error) {
	if err := checkFraction(fraction); err != nil {
		return 0, err
	}
	return value / fraction, nil
}

// Denormalize rescales a fraction-agnostic value back to the scenario's
// actual conditions.
func Denormalize(value, fraction float64) (float64, error) {
	if err := checkFraction(fraction); err != nil {
		return 0, err
	}
	return value * fraction, nil
}

func checkFraction(fraction float64) error {
	if fraction <= 0 || fraction > 1 {
		return fmt.Errorf("%w: fraction %v out of range (0,1]", ErrInvalidInput, fraction)
	}
	return nil
}
