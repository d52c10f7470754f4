package simulation

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ComponentRequest describes one hardware component to simulate.
type ComponentRequest struct {
	ID       string    `json:"id"`
	Exposure float64   `json:"exposure"`
	Samples  []Sample  `json:"samples"`
	Prior    []float64 `json:"prior,omitempty"`
}

// ComponentResult pairs the posterior density summary with the implied CFU
// distribution over the component's exposure.
type ComponentResult struct {
	ID     string `json:"id"`
	Lambda Result `json:"lambda"`
	CFU    Result `json:"cfu"`
}

// RunComponents simulates each component concurrently with an independent
// engine per goroutine.
func RunComponents(reqs []ComponentRequest, resolution int) ([]ComponentResult, error) {
	results := make([]ComponentResult, len(reqs))

	var g errgroup.Group
	for i, req := range reqs {
		g.Go(func() error {
			if req.Exposure <= 0 {
				return fmt.Errorf("component %s: exposure %v must be positive", req.ID, req.Exposure)
			}

			engine := NewEngine()
			draws, err := engine.PosteriorLambda(req.Samples, req.Prior, resolution)
			if err != nil {
				return fmt.Errorf("component %s: %w", req.ID, err)
			}

			results[i] = ComponentResult{
				ID:     req.ID,
				Lambda: Summarize(draws),
				CFU:    Summarize(engine.SimCFU(draws, req.Exposure)),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
