package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name   string
		prices []float64
		want   Stats
	}{
		{"empty", nil, Stats{}},
		{"single", []float64{70}, Stats{Min: 70, Max: 70, Mean: 70, ChangePct: 0}},
		{"rising", []float64{70, 71, 77}, Stats{Min: 70, Max: 77, Mean: 72.67, ChangePct: 10}},
		{"falling", []float64{80, 76, 78}, Stats{Min: 76, Max: 80, Mean: 78, ChangePct: -2.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, computeStats(tt.prices))
		})
	}
}

func TestMovingAverage(t *testing.T) {
	assert.Nil(t, movingAverage([]float64{1, 2, 3, 4}))
	assert.Equal(t, []float64{3, 4, 5}, movingAverage([]float64{1, 2, 3, 4, 5, 6, 7}))
	assert.Equal(t, []float64{70.2}, movingAverage([]float64{70, 70.1, 70.2, 70.3, 70.4}))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 71.13, round2(71.126))
	assert.Equal(t, 70.0, round2(70.004))
	assert.Equal(t, -1.5, round2(-1.499))
}
