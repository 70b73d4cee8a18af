package mathutil

// Throttling constants
const (
	// DefaultThrottleStep is the largest per-sample change ThrottleDefault allows.
	// Pressure values are throttled with this step.
	DefaultThrottleStep = 0.05
)

// Normalization constants
const (
	// DegenerateNormalized is returned by Normalize when the window is empty,
	// e.g. when every size seen so far is identical.
	DegenerateNormalized = 0.5
)
