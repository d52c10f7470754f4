package efficiency

import "fmt"

// Resolver answers scenario lookups against an immutable table. Aliasing
// shares the underlying distribution shape across scenario variants while
// each alias keeps its own pour-fraction normalization, so resolution always
// reports the originating entry's fraction, never the target's.
type Resolver struct {
	table Table
}

// NewResolver wraps a loaded table. The resolver performs no mutation and is
// safe for concurrent use.
func NewResolver(table Table) *Resolver {
	return &Resolver{table: table}
}

// Resolve follows any alias chain from key to a terminal entry and returns
// that entry's shape parameters together with the originating entry's own
// default fraction. No partial result is returned for an invalid chain.
func (r *Resolver) Resolve(key ScenarioKey) (ShapeParameters, float64, error) {
	entry, ok := r.table[key]
	if !ok {
		return ShapeParameters{}, 0, fmt.Errorf("%w: %q", ErrUnknownScenario, key)
	}

	params, err := r.terminalParams(key, entry, map[ScenarioKey]bool{key: true})
	if err != nil {
		return ShapeParameters{}, 0, err
	}
	return params, entry.DefaultFraction, nil
}

func (r *Resolver) terminalParams(key ScenarioKey, entry Entry, visited map[ScenarioKey]bool) (ShapeParameters, error) {
	if !entry.IsAlias() {
		return *entry.Params, nil
	}

	ref := entry.Ref
	if visited[ref] {
		return ShapeParameters{}, fmt.Errorf("%w: %q -> %q", ErrCircularReference, key, ref)
	}
	next, ok := r.table[ref]
	if !ok {
		return ShapeParameters{}, fmt.Errorf("%w: %q -> %q", ErrDanglingReference, key, ref)
	}

	visited[ref] = true
	return r.terminalParams(ref, next, visited)
}
