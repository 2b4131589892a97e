package softmaxgo

import "golang.org/x/exp/rand"

// SampleIndex picks an index from a probability distribution given a coin
// in [0, 1). Rounding that leaves the cdf short of the coin falls back to the
// last index.
func SampleIndex(probabilities []float64, coin float64) int {
	var cdf float64
	for i, prob := range probabilities {
		cdf += prob
		if coin < cdf {
			return i
		}
	}
	return len(probabilities) - 1
}

// Sample draws an index from probabilities using r.
func Sample(r *rand.Rand, probabilities []float64) (int, error) {
	if err := checkRand(r); err != nil {
		return 0, err
	}
	return SampleIndex(probabilities, r.Float64()), nil
}
