package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-touch-conditioner/internal/testutil"
)

// TestThrottle tests Throttle against hand-computed values.
func TestThrottle(t *testing.T) {
	tests := []struct {
		name     string
		prev     float64
		target   float64
		maxStep  float64
		expected float64
	}{
		{"Within step", 1.0, 1.005, 0.01, 1.005},
		{"Exactly step up", 1.0, 1.01, 0.01, 1.01},
		{"Clamped up", 1.0, 2.0, 0.01, 1.01},
		{"Clamped down", 1.0, 0.0, 0.01, 0.99},
		{"Equal", 0.5, 0.5, 0.01, 0.5},
		{"Zero step holds prev", 0.3, 0.9, 0, 0.3},
		{"Negative step holds prev", 0.3, 0.9, -1, 0.3},
		{"NaN step holds prev", 0.3, 0.9, math.NaN(), 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Throttle(tt.prev, tt.target, tt.maxStep), testutil.DefaultTolerance)
		})
	}
}

// TestThrottle_Bound verifies the result never moves more than maxStep from prev.
func TestThrottle_Bound(t *testing.T) {
	const step = 0.01
	prev := 0.0
	values := make([]float64, 0, 200)
	for i := range 200 {
		target := math.Sin(float64(i)/7) * 3
		prev = Throttle(prev, target, step)
		values = append(values, prev)
	}
	testutil.AssertMaxStep(t, append([]float64{0}, values...), step)
}

// TestThrottleDefault verifies the default step is applied.
func TestThrottleDefault(t *testing.T) {
	assert.InDelta(t, 0.5+DefaultThrottleStep, ThrottleDefault(0.5, 1.0), testutil.DefaultTolerance)
	assert.InDelta(t, 0.5-DefaultThrottleStep, ThrottleDefault(0.5, 0.0), testutil.DefaultTolerance)
	assert.InDelta(t, 0.52, ThrottleDefault(0.5, 0.52), testutil.DefaultTolerance)
}

// TestNormalize covers the window mapping, clamping and degenerate window.
func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		low      float64
		high     float64
		expected float64
	}{
		{"Low edge", 1, 1, 3, 0},
		{"High edge", 3, 1, 3, 1},
		{"Middle", 2, 1, 3, 0.5},
		{"Below clamps", 0, 1, 3, 0},
		{"Above clamps", 10, 1, 3, 1},
		{"Degenerate equal", 2, 2, 2, DegenerateNormalized},
		{"Degenerate inverted", 2, 3, 1, DegenerateNormalized},
		{"NaN bound", 2, math.NaN(), 1, DegenerateNormalized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Normalize(tt.value, tt.low, tt.high), testutil.DefaultTolerance)
		})
	}
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-0.1))
	assert.Equal(t, 1.0, Clamp01(1.1))
	assert.Equal(t, 0.25, Clamp01(0.25))
	assert.Equal(t, 0.0, Clamp01(math.NaN()))
}

func TestLerpAndIsFinite(t *testing.T) {
	assert.InDelta(t, 0.0, Lerp(0, 1, 0), testutil.DefaultTolerance)
	assert.InDelta(t, 1.0, Lerp(0, 1, 1), testutil.DefaultTolerance)
	assert.InDelta(t, 0.25, Lerp(0, 1, 0.25), testutil.DefaultTolerance)

	assert.True(t, IsFinite(1))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(-1)))
}
