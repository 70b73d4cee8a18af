package conditioner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/tphakala/go-touch-conditioner/internal/testutil"
)

func TestStats_Update(t *testing.T) {
	s := NewStats()
	assert.Equal(t, 0, s.Count)
	assert.Equal(t, InitialMinSize, s.Min)
	assert.Equal(t, 0.0, s.Max)

	sizes := []float64{0.3, 0.9, 0.1, 0.4, 0.4, 0.7}
	for i, size := range sizes {
		s.Update(size)
		assert.Equal(t, i+1, s.Count)
		assert.InDelta(t, stat.Mean(sizes[:i+1], nil), s.Mean, testutil.MeanTolerance)
	}
	assert.Equal(t, 0.1, s.Min)
	assert.Equal(t, 0.9, s.Max)
}

func TestStats_UpdateLongRunStaysAccurate(t *testing.T) {
	s := NewStats()
	sizes := make([]float64, 100_000)
	for i := range sizes {
		sizes[i] = float64(i%97) / 97
		s.Update(sizes[i])
	}
	testutil.AssertRelativeError(t, stat.Mean(sizes, nil), s.Mean, 1e-9)
}

func TestStats_Bounds(t *testing.T) {
	tests := []struct {
		name      string
		stats     Stats
		low, high float64
	}{
		{"capped by max", Stats{Count: 3, Mean: 0.4, Min: 0.2, Max: 0.6}, 0.3, 0.6},
		{"below max", Stats{Count: 3, Mean: 0.3, Min: 0.2, Max: 0.9}, 0.25, 0.5},
		{"degenerate", Stats{Count: 1, Mean: 0.5, Min: 0.5, Max: 0.5}, 0.5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			low, high := tt.stats.Bounds()
			assert.InDelta(t, tt.low, low, testutil.DefaultTolerance)
			assert.InDelta(t, tt.high, high, testutil.DefaultTolerance)
		})
	}
}

func TestStats_Normalize(t *testing.T) {
	s := Stats{Count: 3, Mean: 0.3, Min: 0.2, Max: 0.9} // window [0.25, 0.5]

	assert.Equal(t, 0.0, s.Normalize(0.1))
	assert.Equal(t, 0.0, s.Normalize(0.25))
	assert.InDelta(t, 0.5, s.Normalize(0.375), testutil.DefaultTolerance)
	assert.Equal(t, 1.0, s.Normalize(0.5))
	assert.Equal(t, 1.0, s.Normalize(0.9))

	fresh := NewStats()
	assert.Equal(t, 0.5, fresh.Normalize(0.7), "empty statistics give a degenerate window")
}

func TestStats_Validate(t *testing.T) {
	tests := []struct {
		name    string
		stats   Stats
		wantErr bool
	}{
		{"fresh", NewStats(), false},
		{"seeded", Stats{Count: 5, Mean: 0.4, Min: 0.1, Max: 0.8}, false},
		{"negative count", Stats{Count: -1}, true},
		{"negative mean", Stats{Count: 1, Mean: -0.1}, true},
		{"min above max", Stats{Count: 2, Mean: 0.5, Min: 0.8, Max: 0.2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.stats.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
		})
	}
}
