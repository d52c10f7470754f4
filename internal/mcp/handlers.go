package mcp

import (
	"encoding/json"
	"fmt"
	"sort"

	"bioeff-mcp/internal/catalog"
	"bioeff-mcp/internal/efficiency"
	"bioeff-mcp/internal/simulation"
)

type fitArgs struct {
	Mean         float64  `json:"mean"`
	LowerP       float64  `json:"lower_p"`
	LowerX       float64  `json:"lower_x"`
	UpperP       float64  `json:"upper_p"`
	UpperX       float64  `json:"upper_x"`
	PourFraction *float64 `json:"pour_fraction"`
}

func (s *Server) handleFit(raw json.RawMessage) (interface{}, error) {
	args := fitArgs{LowerP: 0.025, UpperP: 0.975}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("invalid fit arguments: %w", err)
	}

	mean, lowerX, upperX := args.Mean, args.LowerX, args.UpperX
	fraction := 1.0
	if args.PourFraction != nil {
		fraction = *args.PourFraction
		var err error
		if mean, err = efficiency.Normalize(mean, fraction); err != nil {
			return nil, err
		}
		if lowerX, err = efficiency.Normalize(lowerX, fraction); err != nil {
			return nil, err
		}
		if upperX, err = efficiency.Normalize(upperX, fraction); err != nil {
			return nil, err
		}
	}

	in := efficiency.FitInput{
		Mean:  mean,
		Lower: efficiency.ElicitedObservation{Percentile: args.LowerP, Value: lowerX},
		Upper: efficiency.ElicitedObservation{Percentile: args.UpperP, Value: upperX},
	}
	params, err := efficiency.Fit(in)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"params":        params,
		"pour_fraction": fraction,
		"fitted":        efficiency.Summarize(params, args.LowerP, args.UpperP),
	}, nil
}

type resolveArgs struct {
	Device     string `json:"device"`
	DeviceType string `json:"device_type"`
	Technique  string `json:"technique"`
}

func (s *Server) handleResolve(raw json.RawMessage) (interface{}, error) {
	var args resolveArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("invalid resolve arguments: %w", err)
	}

	key := catalog.Tag(args.Device, args.DeviceType, args.Technique)
	params, fraction, err := s.resolver.Resolve(key)
	if err != nil {
		return nil, err
	}

	// The stored parameters describe the fraction-agnostic distribution;
	// denormalizing reports the scenario's actual expected recovery.
	normalized := efficiency.Summarize(params, 0.025, 0.975)
	scenarioMean, err := efficiency.Denormalize(normalized.Mean, fraction)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"scenario":         string(key),
		"params":           params,
		"default_fraction": fraction,
		"normalized":       normalized,
		"scenario_mean":    scenarioMean,
	}, nil
}

func (s *Server) handleListScenarios() (interface{}, error) {
	type row struct {
		Scenario        string                      `json:"scenario"`
		Params          *efficiency.ShapeParameters `json:"params,omitempty"`
		AliasOf         string                      `json:"alias_of,omitempty"`
		DefaultFraction float64                     `json:"default_fraction"`
	}

	rows := make([]row, 0, len(s.table))
	for key, entry := range s.table {
		r := row{Scenario: string(key), DefaultFraction: entry.DefaultFraction}
		if entry.IsAlias() {
			r.AliasOf = string(entry.Ref)
		} else {
			r.Params = entry.Params
		}
		rows = append(rows, r)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Scenario < rows[j].Scenario })

	return map[string]interface{}{"scenarios": rows}, nil
}

type simulateArgs struct {
	Components []struct {
		ID       string      `json:"id"`
		Exposure float64     `json:"exposure"`
		Samples  []simSample `json:"samples"`
		Prior    []float64   `json:"prior"`
	} `json:"components"`
	Resolution int `json:"resolution"`
}

type simSample struct {
	CFU          float64  `json:"cfu"`
	Exposure     float64  `json:"exposure"`
	PourFraction *float64 `json:"pour_fraction"`
	Device       string   `json:"device"`
	DeviceType   string   `json:"device_type"`
	Technique    string   `json:"technique"`
}

func (s *Server) handleSimulate(raw json.RawMessage) (interface{}, error) {
	var args simulateArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("invalid simulate arguments: %w", err)
	}
	if len(args.Components) == 0 {
		return nil, fmt.Errorf("no components given")
	}
	if args.Resolution == 0 {
		args.Resolution = 1000
	}

	reqs := make([]simulation.ComponentRequest, 0, len(args.Components))
	for _, comp := range args.Components {
		req := simulation.ComponentRequest{
			ID:       comp.ID,
			Exposure: comp.Exposure,
			Prior:    comp.Prior,
		}
		for _, sample := range comp.Samples {
			resolved, err := s.resolveSample(sample)
			if err != nil {
				return nil, fmt.Errorf("component %s: %w", comp.ID, err)
			}
			req.Samples = append(req.Samples, resolved)
		}
		reqs = append(reqs, req)
	}

	results, err := simulation.RunComponents(reqs, args.Resolution)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"resolution": args.Resolution,
		"components": results,
	}, nil
}

// resolveSample looks up the sample's scenario in the catalog, falling back
// to the scenario's default fraction when the sample does not state one.
func (s *Server) resolveSample(sample simSample) (simulation.Sample, error) {
	key := catalog.Tag(sample.Device, sample.DeviceType, sample.Technique)
	params, defaultFraction, err := s.resolver.Resolve(key)
	if err != nil {
		return simulation.Sample{}, err
	}

	fraction := defaultFraction
	if sample.PourFraction != nil {
		fraction = *sample.PourFraction
	}

	return simulation.Sample{
		CFU:          sample.CFU,
		Exposure:     sample.Exposure,
		PourFraction: fraction,
		Params:       params,
	}, nil
}
