package simulation

import "slices"

// Result summarizes a distribution of draws at the reporting percentiles.
type Result struct {
	Mean float64 `json:"mean"`
	P025 float64 `json:"p2_5"`
	P50  float64 `json:"p50"`
	P975 float64 `json:"p97_5"`
}

// Summarize computes the mean and central percentiles of a set of draws.
func Summarize(draws []float64) Result {
	if len(draws) == 0 {
		return Result{}
	}

	temp := make([]float64, len(draws))
	copy(temp, draws)
	slices.Sort(temp)

	sum := 0.0
	for _, v := range temp {
		sum += v
	}

	return Result{
		Mean: sum / float64(len(temp)),
		P025: percentile(temp, 0.025),
		P50:  percentile(temp, 0.50),
		P975: percentile(temp, 0.975),
	}
}

func percentile(sorted []float64, q float64) float64 {
	idx := int(float64(len(sorted)) * q)
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
