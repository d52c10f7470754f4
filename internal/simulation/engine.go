// Package simulation estimates posterior bioburden densities by Monte
// Carlo. Recovery-efficiency uncertainty enters through beta draws from the
// resolved shape parameters; observed colony counts enter through Poisson
// likelihoods over sample exposure.
package simulation

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"time"

	"bioeff-mcp/internal/efficiency"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sample is one physical sample contributing evidence about a component's
// bioburden density. Exposure is the sampled area or volume; the effective
// exposure is Exposure * PourFraction * efficiency.
type Sample struct {
	CFU          float64                    `json:"cfu"`
	Exposure     float64                    `json:"exposure"`
	PourFraction float64                    `json:"pour_fraction"`
	Params       efficiency.ShapeParameters `json:"params"`
}

// Engine draws posterior bioburden densities and CFU counts.
type Engine struct {
	src rand.Source
	rng *rand.Rand
}

// NewEngine creates a time-seeded engine.
func NewEngine() *Engine {
	return NewSeededEngine(uint64(time.Now().UnixNano()))
}

// NewSeededEngine creates an engine with a fixed seed for deterministic
// tests.
func NewSeededEngine(seed uint64) *Engine {
	src := rand.NewPCG(seed, seed)
	return &Engine{src: src, rng: rand.New(src)}
}

// PosteriorLambda returns draws of the bioburden density (CFU per unit
// exposure) for a component.
//
// With samples and no prior, the analytic Jeffreys-prior solution applies:
// lambda ~ Gamma(0.5 + total CFU, sum of effective exposures), with
// efficiency drawn per sample from its beta distribution. With an analogy
// prior, the prior draws are importance-resampled under the Poisson
// likelihood of the samples. With no samples the prior is passed through by
// uniform resampling.
func (e *Engine) PosteriorLambda(samples []Sample, prior []float64, resolution int) ([]float64, error) {
	if resolution <= 0 {
		return nil, fmt.Errorf("%w: resolution %d must be positive", efficiency.ErrInvalidInput, resolution)
	}
	for i, s := range samples {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
	}

	if len(samples) == 0 {
		if len(prior) == 0 {
			return nil, fmt.Errorf("%w: no samples and no prior", efficiency.ErrInvalidInput)
		}
		return e.resampleUniform(prior, resolution), nil
	}

	if len(prior) == 0 {
		return e.jeffreysPosterior(samples, resolution), nil
	}
	return e.resampleWeighted(samples, prior, resolution)
}

func (s Sample) validate() error {
	if s.CFU < 0 {
		return fmt.Errorf("%w: negative CFU count %v", efficiency.ErrInvalidInput, s.CFU)
	}
	if s.Exposure <= 0 {
		return fmt.Errorf("%w: exposure %v must be positive", efficiency.ErrInvalidInput, s.Exposure)
	}
	if s.PourFraction <= 0 || s.PourFraction > 1 {
		return fmt.Errorf("%w: fraction %v out of range (0,1]", efficiency.ErrInvalidInput, s.PourFraction)
	}
	if s.Params.Alpha <= 0 || s.Params.Beta <= 0 {
		return fmt.Errorf("%w: non-positive shape parameters %+v", efficiency.ErrInvalidInput, s.Params)
	}
	return nil
}

// jeffreysPosterior draws from the conjugate gamma solution under a generic
// Jeffreys prior, marginalizing efficiency by redrawing it every iteration.
func (e *Engine) jeffreysPosterior(samples []Sample, resolution int) []float64 {
	cfuTotal := 0.0
	effDists := make([]distuv.Beta, len(samples))
	for i, s := range samples {
		cfuTotal += s.CFU
		effDists[i] = distuv.Beta{Alpha: s.Params.Alpha, Beta: s.Params.Beta, Src: e.src}
	}

	draws := make([]float64, resolution)
	for i := range draws {
		rateSum := 0.0
		for j, s := range samples {
			rateSum += s.Exposure * s.PourFraction * effDists[j].Rand()
		}
		draws[i] = distuv.Gamma{Alpha: 0.5 + cfuTotal, Beta: rateSum, Src: e.src}.Rand()
	}
	return draws
}

// resampleWeighted importance-resamples analogy-prior draws using Poisson
// likelihood weights, with one efficiency draw per (sample, prior draw).
func (e *Engine) resampleWeighted(samples []Sample, prior []float64, resolution int) ([]float64, error) {
	for _, lambda := range prior {
		if lambda <= 0 {
			return nil, fmt.Errorf("%w: prior draws must be positive", efficiency.ErrInvalidInput)
		}
	}

	logw := make([]float64, len(prior))
	for _, s := range samples {
		dist := distuv.Beta{Alpha: s.Params.Alpha, Beta: s.Params.Beta, Src: e.src}
		lgammaCFU, _ := math.Lgamma(s.CFU + 1)
		for j, lambda := range prior {
			rate := lambda * s.Exposure * s.PourFraction * dist.Rand()
			logw[j] += s.CFU*math.Log(rate) - lgammaCFU - rate
		}
	}

	maxw := math.Inf(-1)
	for _, w := range logw {
		if w > maxw {
			maxw = w
		}
	}

	cumulative := make([]float64, len(prior))
	total := 0.0
	for j, w := range logw {
		total += math.Exp(w - maxw)
		cumulative[j] = total
	}
	if total <= 0 || math.IsNaN(total) {
		return nil, fmt.Errorf("%w: degenerate likelihood weights", efficiency.ErrInvalidInput)
	}

	draws := make([]float64, resolution)
	for i := range draws {
		u := e.rng.Float64() * total
		idx := sort.SearchFloat64s(cumulative, u)
		if idx >= len(prior) {
			idx = len(prior) - 1
		}
		draws[i] = prior[idx]
	}
	return draws, nil
}

func (e *Engine) resampleUniform(prior []float64, resolution int) []float64 {
	draws := make([]float64, resolution)
	for i := range draws {
		draws[i] = prior[e.rng.IntN(len(prior))]
	}
	return draws
}

// SimCFU draws CFU counts over a component exposure given a distribution of
// density draws.
func (e *Engine) SimCFU(lambdaDraws []float64, exposure float64) []float64 {
	counts := make([]float64, len(lambdaDraws))
	for i, lambda := range lambdaDraws {
		counts[i] = distuv.Poisson{Lambda: lambda * exposure, Src: e.src}.Rand()
	}
	return counts
}
