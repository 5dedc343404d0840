package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfidenceScore(t *testing.T) {
	tests := []struct {
		name string
		sims []float64
		want float64
	}{
		{
			name: "strong consistent matches",
			sims: []float64{0.9, 0.8, 0.7, 0.1, 0.05},
			want: 0.76,
		},
		{
			name: "single candidate uses default margin",
			sims: []float64{0.5},
			want: 0.59,
		},
		{
			name: "weak matches capped by top similarity",
			sims: []float64{0.1, 0.1, 0.1},
			want: 0.12,
		},
		{
			name: "cap binds for tight clusters",
			sims: []float64{0.32, 0.31, 0.30},
			want: 0.38,
		},
		{
			name: "perfect match",
			sims: []float64{1.0, 0.0, 0.0},
			want: 0.48,
		},
		{
			name: "empty candidate list",
			sims: nil,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, confidenceScore(tt.sims), 1e-9)
		})
	}
}

func TestConfidenceIgnoresRanksBeyondThree(t *testing.T) {
	base := confidenceScore([]float64{0.8, 0.7, 0.6})
	extended := confidenceScore([]float64{0.8, 0.7, 0.6, 0.5, 0.4})
	assert.InDelta(t, base, extended, 1e-9)
}

func TestConfidenceFloorForDecentMatches(t *testing.T) {
	// Whenever the strongest similarity exceeds 0.3, the reported
	// confidence must not fall below 0.3.
	for _, sims := range [][]float64{
		{0.31, 0.0, 0.0},
		{0.5, 0.0, 0.0},
		{0.9, 0.0, 0.0},
	} {
		got := confidenceScore(sims)
		assert.GreaterOrEqual(t, got, 0.3, "sims %v", sims)
	}
}
