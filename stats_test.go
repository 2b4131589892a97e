package softmaxgo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Summary
	}{
		{
			name:   "sample",
			values: []float64{2, 4, 4, 4, 5, 5, 7, 9},
			want:   Summary{Count: 8, Mean: 5, StdDev: math.Sqrt(32.0 / 7), Min: 2, Max: 9},
		},
		{
			name:   "single",
			values: []float64{-1.5},
			want:   Summary{Count: 1, Mean: -1.5, StdDev: 0, Min: -1.5, Max: -1.5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Describe(tt.values)
			require.NoError(t, err)
			assert.Equal(t, tt.want.Count, got.Count)
			assert.InDelta(t, tt.want.Mean, got.Mean, 1e-12)
			assert.InDelta(t, tt.want.StdDev, got.StdDev, 1e-12)
			assert.Equal(t, tt.want.Min, got.Min)
			assert.Equal(t, tt.want.Max, got.Max)
		})
	}

	_, err := Describe(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSummaryString(t *testing.T) {
	s := Summary{Count: 2, Mean: 1.5, StdDev: 0.7071, Min: 1, Max: 2}
	assert.Equal(t, "n=2 mean=1.5000 stddev=0.7071 min=1.0000 max=2.0000", s.String())
}
