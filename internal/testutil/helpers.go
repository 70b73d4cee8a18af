// Package testutil provides reusable test helper functions for touch conditioning tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	MeanTolerance    = 1e-9

	// StepSlack absorbs float rounding in prev±step comparisons.
	StepSlack = 1e-12
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice is monotonically increasing.
func AssertMonotonic(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, "not monotonic",
				"s[%d]=%f < s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertMaxStep verifies that consecutive elements never differ by more than maxStep.
func AssertMaxStep(t *testing.T, s []float64, maxStep float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if d := math.Abs(s[i] - s[i-1]); d > maxStep+StepSlack {
			return assert.Fail(t, "step too large",
				"|s[%d]-s[%d]|=%g exceeds %g", i, i-1, d, maxStep)
		}
	}
	return true
}

// AssertMaxGap verifies that consecutive points (xs[i], ys[i]) are never farther apart than
// maxGap. Indices listed in skip are stroke starts and are not compared with their predecessor.
func AssertMaxGap(t *testing.T, xs, ys []float64, maxGap float64, skip ...int) bool {
	t.Helper()
	if !assert.Len(t, ys, len(xs), "coordinate slices differ in length") {
		return false
	}

	skipped := make(map[int]bool, len(skip))
	for _, i := range skip {
		skipped[i] = true
	}

	for i := 1; i < len(xs); i++ {
		if skipped[i] {
			continue
		}
		d := math.Hypot(xs[i]-xs[i-1], ys[i]-ys[i-1])
		if d > maxGap+StepSlack {
			return assert.Fail(t, "gap too large",
				"distance between point %d and %d is %g, exceeds %g", i-1, i, d, maxGap)
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, "value out of range",
			"value %f is outside range [%f, %f]", value, minVal, maxVal)
	}
	return true
}
