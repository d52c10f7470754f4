package efficiency

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Search domain for alpha. Wide enough to cover all published efficiency
// elicitations; convergence against either bound is rejected as a fit
// failure rather than silently clamped.
const (
	alphaMin = 0.01
	alphaMax = 200.0

	// searchTol is the bracket width at which the golden-section search
	// stops. boundaryEps is the distance from a search bound below which the
	// optimum is considered boundary-clamped.
	searchTol   = 1e-9
	boundaryEps = 1e-6
)

// Fit solves for the beta shape parameters whose mean matches in.Mean
// exactly and whose quantiles at the two elicited percentiles best match the
// stated values in the least-squares sense.
//
// The mean constraint couples the parameters, beta = alpha*(1-mean)/mean, so
// the search runs over the single free variable alpha. The mean is treated
// as exact; the percentile observations are treated as noisy.
func Fit(in FitInput) (ShapeParameters, error) {
	if err := in.Validate(); err != nil {
		return ShapeParameters{}, err
	}

	objective := func(alpha float64) float64 {
		beta := coupledBeta(alpha, in.Mean)
		if alpha <= 0 || beta <= 0 {
			return math.Inf(1)
		}
		dist := distuv.Beta{Alpha: alpha, Beta: beta}
		r1 := dist.Quantile(in.Lower.Percentile) - in.Lower.Value
		r2 := dist.Quantile(in.Upper.Percentile) - in.Upper.Value
		return r1*r1 + r2*r2
	}

	alphaHat := minimizeBounded(objective, alphaMin, alphaMax, searchTol)

	if !isFinite(objective(alphaHat)) {
		return ShapeParameters{}, &FitError{Reason: "objective not finite at optimum", Alpha: alphaHat}
	}
	if alphaHat-alphaMin < boundaryEps || alphaMax-alphaHat < boundaryEps {
		return ShapeParameters{}, &FitError{Reason: "converged at search boundary", Alpha: alphaHat}
	}

	return ShapeParameters{Alpha: alphaHat, Beta: coupledBeta(alphaHat, in.Mean)}, nil
}

func coupledBeta(alpha, mean float64) float64 {
	return alpha * (1 - mean) / mean
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// FitSummary reports the statistics implied by a fitted parameter pair at
// the elicited percentiles, for verification against the stated inputs.
type FitSummary struct {
	Mean          float64 `json:"mean"`
	LowerQuantile float64 `json:"lower_quantile"`
	UpperQuantile float64 `json:"upper_quantile"`
}

// Summarize derives the implied mean and the fitted values at the two
// percentiles from an already-fit parameter pair.
func Summarize(p ShapeParameters, lowerPercentile, upperPercentile float64) FitSummary {
	return FitSummary{
		Mean:          p.Mean(),
		LowerQuantile: p.Quantile(lowerPercentile),
		UpperQuantile: p.Quantile(upperPercentile),
	}
}

// minimizeBounded runs a golden-section search for the minimum of f over
// [lo, hi]. The objective is assumed unimodal over the domain; no gradient
// is required.
func minimizeBounded(f func(float64) float64, lo, hi, tol float64) float64 {
	const invPhi = 0.6180339887498949

	a, b := lo, hi
	c := b - (b-a)*invPhi
	d := a + (b-a)*invPhi
	fc, fd := f(c), f(d)

	for b-a > tol {
		if fc < fd {
			b = d
			d, fd = c, fc
			c = b - (b-a)*invPhi
			fc = f(c)
		} else {
			a = c
			c, fc = d, fd
			d = a + (b-a)*invPhi
			fd = f(d)
		}
	}

	return (a + b) / 2
}
