package efficiency

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// ElicitedObservation is a single stated quantile of a recovery-efficiency
// fraction: "the expert believes the Percentile-quantile of efficiency is
// Value". Both fields are probabilities in (0,1).
type ElicitedObservation struct {
	Percentile float64 `json:"p"`
	Value      float64 `json:"x"`
}

// FitInput bundles everything an elicitation provides: a mean treated as
// exact and two percentile observations treated as approximate.
type FitInput struct {
	Mean  float64             `json:"mean"`
	Lower ElicitedObservation `json:"lower"`
	Upper ElicitedObservation `json:"upper"`
}

// Validate checks all inputs are open-interval probabilities and the two
// observations are ordered.
func (in FitInput) Validate() error {
	if !openUnit(in.Mean) {
		return fmt.Errorf("%w: mean %v outside (0,1)", ErrInvalidInput, in.Mean)
	}
	for _, obs := range []ElicitedObservation{in.Lower, in.Upper} {
		if !openUnit(obs.Percentile) {
			return fmt.Errorf("%w: percentile %v outside (0,1)", ErrInvalidInput, obs.Percentile)
		}
		if !openUnit(obs.Value) {
			return fmt.Errorf("%w: observation value %v outside (0,1)", ErrInvalidInput, obs.Value)
		}
	}
	if in.Lower.Percentile >= in.Upper.Percentile {
		return fmt.Errorf("%w: lower percentile %v must be below upper percentile %v",
			ErrInvalidInput, in.Lower.Percentile, in.Upper.Percentile)
	}
	return nil
}

func openUnit(v float64) bool {
	return v > 0 && v < 1
}

// ShapeParameters are the two shape parameters of the beta distribution over
// (0,1) used to model recovery efficiency.
type ShapeParameters struct {
	Alpha float64 `json:"alpha"`
	Beta  float64 `json:"beta"`
}

// Dist returns the beta distribution described by the parameters.
func (p ShapeParameters) Dist() distuv.Beta {
	return distuv.Beta{Alpha: p.Alpha, Beta: p.Beta}
}

// Mean returns the distribution mean Alpha/(Alpha+Beta).
func (p ShapeParameters) Mean() float64 {
	return p.Alpha / (p.Alpha + p.Beta)
}

// Quantile returns the efficiency value at the given cumulative probability.
func (p ShapeParameters) Quantile(q float64) float64 {
	return p.Dist().Quantile(q)
}

// ScenarioKey names a sampling configuration: device family, device sub-type
// and processing technique joined by the catalog delimiter. Equality is exact
// string match on the composed key.
type ScenarioKey string

// Entry is one row of the scenario table. An entry is either terminal
// (Params set) or an alias to another key (Ref set). DefaultFraction always
// belongs to the entry itself; an alias may apply a different pour fraction
// than its target.
type Entry struct {
	Params          *ShapeParameters
	Ref             ScenarioKey
	DefaultFraction float64
}

// IsAlias reports whether the entry references another key instead of
// carrying its own parameters.
func (e Entry) IsAlias() bool {
	return e.Params == nil
}

// Terminal builds an entry holding explicit shape parameters.
func Terminal(alpha, beta, fraction float64) Entry {
	return Entry{
		Params:          &ShapeParameters{Alpha: alpha, Beta: beta},
		DefaultFraction: fraction,
	}
}

// Alias builds an entry referencing another key's parameters while keeping
// its own default fraction.
func Alias(target ScenarioKey, fraction float64) Entry {
	return Entry{
		Ref:             target,
		DefaultFraction: fraction,
	}
}

// Table maps scenario keys to their entries. A table is built once at load
// time and treated as immutable afterwards, so concurrent resolution needs no
// locking.
type Table map[ScenarioKey]Entry

// Validate proves the table is resolvable: every default fraction is in
// (0,1], every terminal entry has positive parameters, and every alias chain
// terminates at an existing terminal entry.
func (t Table) Validate() error {
	r := NewResolver(t)
	for key, entry := range t {
		if err := checkFraction(entry.DefaultFraction); err != nil {
			return fmt.Errorf("entry %q: %w", key, err)
		}
		if !entry.IsAlias() && (entry.Params.Alpha <= 0 || entry.Params.Beta <= 0) {
			return fmt.Errorf("%w: entry %q has non-positive shape parameters", ErrInvalidInput, key)
		}
		if _, _, err := r.Resolve(key); err != nil {
			return fmt.Errorf("entry %q: %w", key, err)
		}
	}
	return nil
}
