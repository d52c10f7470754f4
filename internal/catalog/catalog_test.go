package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"bioeff-mcp/internal/efficiency"
)

func TestDefaultCatalogValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestDefaultCatalogCoversAllScenarios(t *testing.T) {
	table := Default()
	r := efficiency.NewResolver(table)

	for device, types := range DeviceTypes {
		for _, deviceType := range types {
			for _, technique := range ProcessingTechniques {
				key := Tag(device, deviceType, technique)
				if _, _, err := r.Resolve(key); err != nil {
					t.Errorf("Resolve(%q) error = %v", key, err)
				}
			}
		}
	}
}

func TestPuritanCottonESAAliasesNASA(t *testing.T) {
	r := efficiency.NewResolver(Default())

	nasaParams, nasaFraction, err := r.Resolve("Swab;Puritan Cotton;NASA Standard")
	if err != nil {
		t.Fatalf("Resolve(NASA) error = %v", err)
	}
	esaParams, esaFraction, err := r.Resolve("Swab;Puritan Cotton;ESA Standard")
	if err != nil {
		t.Fatalf("Resolve(ESA) error = %v", err)
	}

	if esaParams != nasaParams {
		t.Errorf("ESA params = %+v, want NASA params %+v", esaParams, nasaParams)
	}
	// Both entries happen to publish 0.8, but each must report its OWN
	// fraction, not inherit the target's.
	if esaFraction != 0.8 || nasaFraction != 0.8 {
		t.Errorf("fractions = (%v, %v), want (0.8, 0.8)", esaFraction, nasaFraction)
	}
}

func TestWipeAliasKeepsOwnFraction(t *testing.T) {
	r := efficiency.NewResolver(Default())

	mfParams, mfFraction, err := r.Resolve("Wipe;TX3211;NASA Standard (w/ Membrane Filtration)")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	params, fraction, err := r.Resolve("Wipe;TX3211;NASA Standard")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if params != mfParams {
		t.Errorf("params = %+v, want membrane-filtration params %+v", params, mfParams)
	}
	if fraction == mfFraction {
		t.Fatalf("alias fraction %v equals target fraction; fixture no longer distinguishes them", fraction)
	}
	if fraction != 0.25 {
		t.Errorf("fraction = %v, want the alias's own 0.25", fraction)
	}
}

func TestTag(t *testing.T) {
	got := Tag("Swab", "Puritan Cotton", "NASA Standard")
	if got != "Swab;Puritan Cotton;NASA Standard" {
		t.Errorf("Tag() = %q", got)
	}
}

func TestKnownScenario(t *testing.T) {
	tests := []struct {
		device, deviceType, technique string
		want                          bool
	}{
		{"Swab", "Puritan Cotton", "NASA Standard", true},
		{"Wipe", "TX3224", "ESA Standard (w/ Membrane Filtration)", true},
		{"Swab", "TX3211", "NASA Standard", false},
		{"Mop", "Puritan Cotton", "NASA Standard", false},
		{"Swab", "Puritan Cotton", "ISO Standard", false},
	}

	for _, tt := range tests {
		if got := KnownScenario(tt.device, tt.deviceType, tt.technique); got != tt.want {
			t.Errorf("KnownScenario(%q, %q, %q) = %v, want %v",
				tt.device, tt.deviceType, tt.technique, got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	const doc = `{
		"Swab;Puritan Cotton;NASA Standard": {"params": [45.56, 100.24], "default_fraction": 0.8},
		"Swab;Puritan Cotton;ESA Standard": {"params": "Swab;Puritan Cotton;NASA Standard", "default_fraction": 0.92}
	}`

	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("len(table) = %d, want 2", len(table))
	}

	params, fraction, err := efficiency.NewResolver(table).Resolve("Swab;Puritan Cotton;ESA Standard")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if params.Alpha != 45.56 {
		t.Errorf("Alpha = %v, want 45.56", params.Alpha)
	}
	if fraction != 0.92 {
		t.Errorf("fraction = %v, want 0.92", fraction)
	}
}

func TestDumpRoundTrip(t *testing.T) {
	original := Default()

	data, err := Dump(original)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	reloaded, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(reloaded) != len(original) {
		t.Fatalf("len(reloaded) = %d, want %d", len(reloaded), len(original))
	}

	r := efficiency.NewResolver(reloaded)
	for key := range original {
		wantParams, wantFraction, err := efficiency.NewResolver(original).Resolve(key)
		if err != nil {
			t.Fatalf("Resolve(%q) on original: %v", key, err)
		}
		gotParams, gotFraction, err := r.Resolve(key)
		if err != nil {
			t.Fatalf("Resolve(%q) on reloaded: %v", key, err)
		}
		if gotParams != wantParams || gotFraction != wantFraction {
			t.Errorf("Resolve(%q) = (%+v, %v), want (%+v, %v)", key, gotParams, gotFraction, wantParams, wantFraction)
		}
	}
}

func TestParseRejectsBadCatalogs(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"NotJSON", `not json`},
		{"MissingParams", `{"A;B;C": {"default_fraction": 0.8}}`},
		{"WrongArity", `{"A;B;C": {"params": [1, 2, 3], "default_fraction": 0.8}}`},
		{"WrongType", `{"A;B;C": {"params": {"alpha": 1}, "default_fraction": 0.8}}`},
		{"DanglingAlias", `{"A;B;C": {"params": "A;B;Missing", "default_fraction": 0.8}}`},
		{"Cycle", `{
			"A;B;C": {"params": "A;B;D", "default_fraction": 0.8},
			"A;B;D": {"params": "A;B;C", "default_fraction": 0.8}
		}`},
		{"FractionOutOfRange", `{"A;B;C": {"params": [1, 2], "default_fraction": 0}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); err == nil {
				t.Errorf("Parse() = nil error, want failure")
			}
		})
	}
}
