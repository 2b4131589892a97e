package softmaxgo

import "math"

func Exp(x float32) float32 {
	return float32(math.Exp(float64(x)))
}

func Inf(sign int) float32 {
	return float32(math.Inf(sign))
}

func IsNaN(f float32) bool {
	return math.IsNaN(float64(f))
}
