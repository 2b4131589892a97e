package softmaxgo

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a sample.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64 // unbiased sample standard deviation
	Min    float64
	Max    float64
}

func Describe(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, fmt.Errorf("describe empty sample: %w", ErrInvalidArgument)
	}
	mean, std := stat.MeanStdDev(values, nil)
	if len(values) == 1 {
		std = 0
	}
	return Summary{
		Count:  len(values),
		Mean:   mean,
		StdDev: std,
		Min:    floats.Min(values),
		Max:    floats.Max(values),
	}, nil
}

func (s Summary) String() string {
	return fmt.Sprintf("n=%d mean=%.4f stddev=%.4f min=%.4f max=%.4f", s.Count, s.Mean, s.StdDev, s.Min, s.Max)
}
