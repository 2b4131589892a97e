package softmaxgo

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultTemperature leaves the values unscaled.
const DefaultTemperature = 1.0

// Softmax maps values to a probability distribution over the same indices.
// Each value is divided by temperature before exponentiation, so a low
// temperature sharpens the distribution towards the largest value and a high
// temperature flattens it towards uniform.
//
// temperature is not validated: zero or negative temperatures produce
// Inf/NaN or inverted scaling and those values are returned as is.
// An empty values slice returns an error wrapping ErrInvalidArgument.
func Softmax(values []float64, temperature float64) ([]float64, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("softmax of empty vector: %w", ErrInvalidArgument)
	}
	probs := make([]float64, len(values))
	for i, v := range values {
		probs[i] = v / temperature
	}

	// Numerical stability
	maxval := floats.Max(probs)

	for i, v := range probs {
		probs[i] = math.Exp(v - maxval)
	}
	sum := floats.Sum(probs)

	// Normalize
	for i := range probs {
		probs[i] /= sum
	}
	return probs, nil
}

// SoftmaxRows applies Softmax to each row of a row-major (rows, width) matrix
// of logits, writing the probabilities into probs.
func SoftmaxRows(probs, logits []float32, rows, width int, temperature float32) error {
	if rows < 0 || width <= 0 {
		return fmt.Errorf("softmax rows: shape (%d, %d): %w", rows, width, ErrInvalidArgument)
	}
	if len(logits) != rows*width || len(probs) != rows*width {
		return fmt.Errorf("softmax rows: got %d logits and %d probs for shape (%d, %d): %w",
			len(logits), len(probs), rows, width, ErrInvalidArgument)
	}
	for r := 0; r < rows; r++ {
		baseIndex := r * width
		logitsR := logits[baseIndex : baseIndex+width]
		probsR := probs[baseIndex : baseIndex+width]

		maxval := Inf(-1)
		for i := 0; i < width; i++ {
			probsR[i] = logitsR[i] / temperature
			if probsR[i] > maxval || IsNaN(probsR[i]) {
				maxval = probsR[i]
			}
		}

		// Using float64 for the sum for precision
		sum := 0.0
		for i := 0; i < width; i++ {
			probsR[i] = Exp(probsR[i] - maxval)
			sum += float64(probsR[i])
		}

		for i := 0; i < width; i++ {
			probsR[i] /= float32(sum)
		}
	}
	return nil
}

// ArgMax returns the index of the largest value. Ties resolve to the lowest
// index.
func ArgMax(values []float64) (int, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("argmax of empty vector: %w", ErrInvalidArgument)
	}
	return floats.MaxIdx(values), nil
}
