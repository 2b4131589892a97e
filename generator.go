package softmaxgo

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// DefaultCount is the number of samples drawn when none is configured.
const DefaultCount = 5

// Generator draws count independent samples from a distribution using r.
type Generator interface {
	Generate(r *rand.Rand, count int) ([]float64, error)
}

// Uniform samples from [Min, Max). Min > Max is not validated and simply
// inverts the range.
type Uniform struct {
	Min float64
	Max float64
}

// DefaultUniform samples from [-5, 10).
func DefaultUniform() Uniform {
	return Uniform{Min: -5, Max: 10}
}

func (u Uniform) Generate(r *rand.Rand, count int) ([]float64, error) {
	return GenerateUniform(r, count, u.Min, u.Max)
}

func (u Uniform) String() string {
	return fmt.Sprintf("uniform[%g, %g)", u.Min, u.Max)
}

// Gaussian samples from Normal(Mean, StdDev²) using the Box-Muller transform.
type Gaussian struct {
	Mean   float64
	StdDev float64
}

// DefaultGaussian samples from Normal(0, 9).
func DefaultGaussian() Gaussian {
	return Gaussian{Mean: 0, StdDev: 3}
}

func (g Gaussian) Generate(r *rand.Rand, count int) ([]float64, error) {
	return GenerateGaussian(r, count, g.Mean, g.StdDev)
}

func (g Gaussian) String() string {
	return fmt.Sprintf("gaussian(mean=%g, stddev=%g)", g.Mean, g.StdDev)
}

// GenerateUniform returns count samples drawn uniformly from [min, max).
func GenerateUniform(r *rand.Rand, count int, min, max float64) ([]float64, error) {
	if err := checkGenerate(r, count); err != nil {
		return nil, err
	}
	out := make([]float64, count)
	span := max - min
	for i := range out {
		out[i] = r.Float64()*span + min
	}
	return out, nil
}

// GenerateGaussian returns count samples drawn from Normal(mean, stdDev²).
func GenerateGaussian(r *rand.Rand, count int, mean, stdDev float64) ([]float64, error) {
	if err := checkGenerate(r, count); err != nil {
		return nil, err
	}
	out := make([]float64, count)
	for i := range out {
		out[i] = boxMuller(r)*stdDev + mean
	}
	return out, nil
}

// boxMuller returns one standard normal sample. u1 is drawn from (0, 1] so
// that log(u1) is always finite.
func boxMuller(r *rand.Rand) float64 {
	u1 := 1 - r.Float64()
	u2 := r.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

func checkGenerate(r *rand.Rand, count int) error {
	if count < 0 {
		return fmt.Errorf("negative sample count %d: %w", count, ErrInvalidArgument)
	}
	return checkRand(r)
}
