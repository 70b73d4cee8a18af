package conditioner

import (
	"errors"
	"fmt"
	"math"
)

// Config holds pipeline tuning parameters.
type Config struct {
	// MinGap is the largest distance allowed between consecutive stored samples.
	// Larger jumps are filled with interpolated samples.
	MinGap float64

	// SizeStep bounds the size change between consecutive stored samples.
	SizeStep float64

	// PressureStep bounds the pressure change between consecutive stored samples.
	PressureStep float64

	// MaxInterpolations caps how many samples a single Ingest call may synthesize.
	// A raw sample that would need more is rejected with ErrGapTooLarge.
	// Set to 0 to disable the cap.
	MaxInterpolations int
}

// Common errors returned by the pipeline.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid pipeline configuration")

	// ErrInvalidSample indicates a raw sample with non-finite coordinates or
	// negative attributes.
	ErrInvalidSample = errors.New("invalid touch sample")

	// ErrGapTooLarge indicates a raw sample farther from the last stored sample
	// than Config.MaxInterpolations allows.
	ErrGapTooLarge = errors.New("gap too large to interpolate")
)

// DefaultConfig returns the standard tuning used by brush strokes in unit space.
func DefaultConfig() Config {
	return Config{
		MinGap:            DefaultMinGap,
		SizeStep:          DefaultSizeStep,
		PressureStep:      DefaultPressureStep,
		MaxInterpolations: DefaultMaxInterpolations,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !(c.MinGap > 0) || math.IsInf(c.MinGap, 0) {
		return fmt.Errorf("%w: min gap must be positive and finite", ErrInvalidConfig)
	}

	if !(c.SizeStep > 0) || math.IsInf(c.SizeStep, 0) {
		return fmt.Errorf("%w: size step must be positive and finite", ErrInvalidConfig)
	}

	if !(c.PressureStep > 0) || math.IsInf(c.PressureStep, 0) {
		return fmt.Errorf("%w: pressure step must be positive and finite", ErrInvalidConfig)
	}

	if c.MaxInterpolations < 0 {
		return fmt.Errorf("%w: max interpolations must be >= 0", ErrInvalidConfig)
	}

	return nil
}
