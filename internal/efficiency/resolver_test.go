package efficiency

import (
	"errors"
	"testing"
)

func testTable() Table {
	return Table{
		"Swab;Cotton;A":  Terminal(45.5, 100.2, 0.8),
		"Swab;Cotton;B":  Alias("Swab;Cotton;A", 0.92),
		"Swab;Cotton;C":  Alias("Swab;Cotton;B", 0.25),
		"Wipe;Poly;A":    Terminal(2.7, 7.1, 0.92),
		"Wipe;Poly;Bad":  Alias("Wipe;Missing;A", 0.8),
		"Loop;X;Forward": Alias("Loop;X;Back", 0.5),
		"Loop;X;Back":    Alias("Loop;X;Forward", 0.5),
	}
}

func TestResolveTerminal(t *testing.T) {
	r := NewResolver(testTable())

	params, fraction, err := r.Resolve("Swab;Cotton;A")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if params.Alpha != 45.5 || params.Beta != 100.2 {
		t.Errorf("params = %+v, want {45.5 100.2}", params)
	}
	if fraction != 0.8 {
		t.Errorf("fraction = %v, want 0.8", fraction)
	}
}

func TestResolveAliasKeepsOwnFraction(t *testing.T) {
	r := NewResolver(testTable())

	params, fraction, err := r.Resolve("Swab;Cotton;B")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if params.Alpha != 45.5 || params.Beta != 100.2 {
		t.Errorf("params = %+v, want the target's {45.5 100.2}", params)
	}
	// The alias applies its own normalization, never the target's.
	if fraction != 0.92 {
		t.Errorf("fraction = %v, want the alias's own 0.92", fraction)
	}
}

func TestResolveAliasChain(t *testing.T) {
	r := NewResolver(testTable())

	params, fraction, err := r.Resolve("Swab;Cotton;C")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if params.Alpha != 45.5 {
		t.Errorf("params = %+v, want terminal parameters through two hops", params)
	}
	if fraction != 0.25 {
		t.Errorf("fraction = %v, want 0.25", fraction)
	}
}

func TestResolveFailures(t *testing.T) {
	tests := []struct {
		name string
		key  ScenarioKey
		want error
	}{
		{"UnknownKey", "Swab;Nope;A", ErrUnknownScenario},
		{"DanglingReference", "Wipe;Poly;Bad", ErrDanglingReference},
		{"CycleForward", "Loop;X;Forward", ErrCircularReference},
		{"CycleBack", "Loop;X;Back", ErrCircularReference},
	}

	r := NewResolver(testTable())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := r.Resolve(tt.key); !errors.Is(err, tt.want) {
				t.Errorf("Resolve(%q) error = %v, want %v", tt.key, err, tt.want)
			}
		})
	}
}

func TestResolveSelfReference(t *testing.T) {
	table := Table{"Self;Ref;X": Alias("Self;Ref;X", 0.8)}
	if _, _, err := NewResolver(table).Resolve("Self;Ref;X"); !errors.Is(err, ErrCircularReference) {
		t.Errorf("Resolve() error = %v, want ErrCircularReference", err)
	}
}

func TestResolveDeterministic(t *testing.T) {
	r := NewResolver(testTable())

	firstParams, firstFraction, err := r.Resolve("Swab;Cotton;C")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	for i := 0; i < 5; i++ {
		params, fraction, err := r.Resolve("Swab;Cotton;C")
		if err != nil {
			t.Fatalf("Resolve() error = %v on repeat", err)
		}
		if params != firstParams || fraction != firstFraction {
			t.Fatalf("Resolve() = (%+v, %v), want (%+v, %v)", params, fraction, firstParams, firstFraction)
		}
	}
}

func TestTableValidate(t *testing.T) {
	tests := []struct {
		name    string
		table   Table
		wantErr bool
	}{
		{"Clean", Table{
			"A;B;C": Terminal(1, 2, 0.8),
			"A;B;D": Alias("A;B;C", 0.92),
		}, false},
		{"Cycle", Table{
			"A;B;C": Alias("A;B;D", 0.8),
			"A;B;D": Alias("A;B;C", 0.8),
		}, true},
		{"Dangling", Table{
			"A;B;C": Alias("A;B;Missing", 0.8),
		}, true},
		{"FractionOutOfRange", Table{
			"A;B;C": Terminal(1, 2, 1.5),
		}, true},
		{"NonPositiveParams", Table{
			"A;B;C": Terminal(-1, 2, 0.8),
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.table.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
