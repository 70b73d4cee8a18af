// Package mathutil provides the scalar helpers used to condition touch attributes.
package mathutil

import (
	"math"
)

// Throttle returns target clamped to [prev-maxStep, prev+maxStep].
// The result never moves more than maxStep away from prev in either direction,
// which keeps brush width and opacity from jumping between consecutive samples.
//
// A non-positive or NaN maxStep returns prev unchanged.
func Throttle(prev, target, maxStep float64) float64 {
	if !(maxStep > 0) {
		return prev
	}

	switch {
	case target > prev+maxStep:
		return prev + maxStep
	case target < prev-maxStep:
		return prev - maxStep
	default:
		return target
	}
}

// ThrottleDefault is Throttle with DefaultThrottleStep.
func ThrottleDefault(prev, target float64) float64 {
	return Throttle(prev, target, DefaultThrottleStep)
}

// Normalize maps value from [low, high] to [0, 1], clamping values outside the window.
// A degenerate window (high <= low, or any NaN bound) yields DegenerateNormalized.
func Normalize(value, low, high float64) float64 {
	if !(high > low) {
		return DegenerateNormalized
	}

	return Clamp01((value - low) / (high - low))
}

// Clamp01 clamps v to [0, 1]. NaN maps to 0.
func Clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Lerp linearly interpolates between a and b.
// t=0 returns a, t=1 returns b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
