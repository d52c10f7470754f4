// Package catalog owns the scenario table: the embedded published catalog,
// the key composition rules, and ingestion of operator-supplied catalog
// files in the same JSON shape.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"bioeff-mcp/internal/efficiency"
)

// Delimiter joins the ordered category components of a scenario key.
const Delimiter = ";"

// DeviceTypes enumerates the device sub-types recognized for each sampling
// device family.
var DeviceTypes = map[string][]string{
	"Swab": {"Puritan Cotton", "Nylon-flocked", "Copan Polyester", "Copan Cotton"},
	"Wipe": {"TX3211", "TX3224"},
}

// ProcessingTechniques enumerates the recognized processing standards.
var ProcessingTechniques = []string{
	"NASA Standard",
	"NASA Standard (w/ Membrane Filtration)",
	"ESA Standard",
	"ESA Standard (w/ Membrane Filtration)",
}

// Tag composes the scenario key for a sampling configuration. Components are
// assumed already canonicalized by the caller.
func Tag(device, deviceType, technique string) efficiency.ScenarioKey {
	return efficiency.ScenarioKey(strings.Join([]string{device, deviceType, technique}, Delimiter))
}

// KnownScenario reports whether the combination is part of the recognized
// device/type/technique enumeration.
func KnownScenario(device, deviceType, technique string) bool {
	types, ok := DeviceTypes[device]
	if !ok {
		return false
	}
	hasType := false
	for _, t := range types {
		if t == deviceType {
			hasType = true
			break
		}
	}
	if !hasType {
		return false
	}
	for _, tech := range ProcessingTechniques {
		if tech == technique {
			return true
		}
	}
	return false
}

// Default returns the published recovery-efficiency catalog. Parameters were
// fit offline from elicited means and 95% intervals, pour-normalized per
// scenario; aliases share a physical recovery process across standards while
// keeping their own fraction.
func Default() efficiency.Table {
	return efficiency.Table{
		"Swab;Puritan Cotton;NASA Standard":                          efficiency.Terminal(45.56431672969219, 100.24149680532281, 0.8),
		"Swab;Puritan Cotton;NASA Standard (w/ Membrane Filtration)": efficiency.Terminal(97.55218540553831, 191.9575261205754, 0.92),
		"Swab;Puritan Cotton;ESA Standard":                           efficiency.Alias("Swab;Puritan Cotton;NASA Standard", 0.8),
		"Swab;Puritan Cotton;ESA Standard (w/ Membrane Filtration)":  efficiency.Alias("Swab;Puritan Cotton;NASA Standard (w/ Membrane Filtration)", 0.92),

		"Swab;Nylon-flocked;NASA Standard":                          efficiency.Terminal(9.579630660559655, 23.74082381095219, 0.8),
		"Swab;Nylon-flocked;NASA Standard (w/ Membrane Filtration)": efficiency.Alias("Swab;Nylon-flocked;NASA Standard", 0.92),
		"Swab;Nylon-flocked;ESA Standard":                           efficiency.Terminal(68.16498856079723, 75.34025051456537, 0.8),
		"Swab;Nylon-flocked;ESA Standard (w/ Membrane Filtration)":  efficiency.Alias("Swab;Nylon-flocked;ESA Standard", 0.92),

		"Swab;Copan Polyester;NASA Standard":                          efficiency.Alias("Swab;Copan Polyester;ESA Standard", 0.8),
		"Swab;Copan Polyester;NASA Standard (w/ Membrane Filtration)": efficiency.Alias("Swab;Copan Polyester;ESA Standard", 0.92),
		"Swab;Copan Polyester;ESA Standard":                           efficiency.Terminal(6.052080310455172, 42.3645621731862, 0.8),
		"Swab;Copan Polyester;ESA Standard (w/ Membrane Filtration)":  efficiency.Alias("Swab;Copan Polyester;ESA Standard", 0.92),

		"Swab;Copan Cotton;NASA Standard":                          efficiency.Terminal(51.836071542660086, 362.8525007986206, 0.8),
		"Swab;Copan Cotton;NASA Standard (w/ Membrane Filtration)": efficiency.Alias("Swab;Copan Cotton;NASA Standard", 0.92),
		"Swab;Copan Cotton;ESA Standard":                           efficiency.Alias("Swab;Copan Cotton;NASA Standard", 0.8),
		"Swab;Copan Cotton;ESA Standard (w/ Membrane Filtration)":  efficiency.Alias("Swab;Copan Cotton;NASA Standard", 0.92),

		"Wipe;TX3211;NASA Standard":                          efficiency.Alias("Wipe;TX3211;NASA Standard (w/ Membrane Filtration)", 0.25),
		"Wipe;TX3211;NASA Standard (w/ Membrane Filtration)": efficiency.Terminal(2.755428498737132, 7.13349822450835, 0.92),
		"Wipe;TX3211;ESA Standard":                           efficiency.Alias("Wipe;TX3211;NASA Standard (w/ Membrane Filtration)", 0.25),
		"Wipe;TX3211;ESA Standard (w/ Membrane Filtration)":  efficiency.Alias("Wipe;TX3211;NASA Standard (w/ Membrane Filtration)", 0.92),

		"Wipe;TX3224;NASA Standard":                          efficiency.Alias("Wipe;TX3224;NASA Standard (w/ Membrane Filtration)", 0.25),
		"Wipe;TX3224;NASA Standard (w/ Membrane Filtration)": efficiency.Terminal(38.27721767664384, 259.32814975926203, 0.92),
		"Wipe;TX3224;ESA Standard":                           efficiency.Alias("Wipe;TX3224;NASA Standard (w/ Membrane Filtration)", 0.25),
		"Wipe;TX3224;ESA Standard (w/ Membrane Filtration)":  efficiency.Alias("Wipe;TX3224;NASA Standard (w/ Membrane Filtration)", 0.92),
	}
}

// entryJSON mirrors the on-disk catalog row: params is either a two-element
// numeric array (terminal) or a string key (alias).
type entryJSON struct {
	Params          json.RawMessage `json:"params"`
	DefaultFraction float64         `json:"default_fraction"`
}

// Load reads a catalog file and validates the resulting table.
func Load(path string) (efficiency.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	table, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return table, nil
}

// Parse decodes the JSON catalog form into a validated table.
func Parse(data []byte) (efficiency.Table, error) {
	var raw map[string]entryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	table := make(efficiency.Table, len(raw))
	for key, row := range raw {
		entry, err := decodeEntry(row)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", key, err)
		}
		table[efficiency.ScenarioKey(key)] = entry
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

// Dump renders a table in the on-disk catalog form.
func Dump(table efficiency.Table) ([]byte, error) {
	raw := make(map[string]entryJSON, len(table))
	for key, entry := range table {
		var params interface{}
		if entry.IsAlias() {
			params = string(entry.Ref)
		} else {
			params = []float64{entry.Params.Alpha, entry.Params.Beta}
		}
		data, err := json.Marshal(params)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", key, err)
		}
		raw[string(key)] = entryJSON{Params: data, DefaultFraction: entry.DefaultFraction}
	}
	return json.MarshalIndent(raw, "", "  ")
}

func decodeEntry(row entryJSON) (efficiency.Entry, error) {
	if len(row.Params) == 0 {
		return efficiency.Entry{}, fmt.Errorf("missing params field")
	}

	var pair []float64
	if err := json.Unmarshal(row.Params, &pair); err == nil {
		if len(pair) != 2 {
			return efficiency.Entry{}, fmt.Errorf("params array must hold exactly [alpha, beta], got %d values", len(pair))
		}
		return efficiency.Terminal(pair[0], pair[1], row.DefaultFraction), nil
	}

	var ref string
	if err := json.Unmarshal(row.Params, &ref); err == nil {
		return efficiency.Alias(efficiency.ScenarioKey(ref), row.DefaultFraction), nil
	}

	return efficiency.Entry{}, fmt.Errorf("params must be a [alpha, beta] pair or a reference key")
}
