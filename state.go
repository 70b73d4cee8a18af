package conditioner

// StrokeState is the lifecycle position of the stroke being conditioned.
type StrokeState int

const (
	// StateNotStarted waits for the first sample of the first stroke.
	// A fresh pipeline starts here.
	StateNotStarted StrokeState = iota

	// StateStarted accepts samples and fills gaps between them.
	StateStarted

	// StateEnding keeps filling gaps but drops the trailing full sample,
	// so the stroke does not overshoot the lift-off point.
	StateEnding

	// StateEnded marks a finished stroke. Like StateNotStarted, the next
	// accepted sample starts a new stroke.
	StateEnded
)

// String returns the state name.
func (s StrokeState) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateStarted:
		return "started"
	case StateEnding:
		return "ending"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// idle reports whether no stroke is in progress.
func (s StrokeState) idle() bool {
	return s == StateNotStarted || s == StateEnded
}

// active reports whether a stroke is in progress.
func (s StrokeState) active() bool {
	return s == StateStarted || s == StateEnding
}
