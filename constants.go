package conditioner

import (
	"math"

	"github.com/tphakala/go-touch-conditioner/internal/mathutil"
)

// Gap interpolation defaults
const (
	// DefaultMinGap is the largest distance allowed between two consecutive stored
	// samples, in the same units as sample positions.
	DefaultMinGap = 0.005

	// DefaultMaxInterpolations disables the per-call synthesis cap.
	DefaultMaxInterpolations = 0
)

// Attribute throttling defaults
const (
	// DefaultSizeStep is the largest size change between consecutive stored samples.
	DefaultSizeStep = 0.01

	// DefaultPressureStep is the largest pressure change between consecutive stored samples.
	DefaultPressureStep = mathutil.DefaultThrottleStep
)

// Statistics constants
const (
	// InitialMinSize is the minimum-size sentinel of a fresh pipeline.
	// It is larger than any real touch size so the first sample always replaces it.
	InitialMinSize = math.MaxFloat64
)

// Buffer constants
const (
	defaultBufferCapacity = 256 // Initial sample buffer capacity
)
