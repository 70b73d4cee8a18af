package recording

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Shape selects the path of a synthesized stroke.
type Shape string

// Synthesized stroke shapes.
const (
	ShapeLine   Shape = "line"
	ShapeArc    Shape = "arc"
	ShapeJitter Shape = "jitter"
)

// Synthesis constants
const (
	frameInterval = 1.0 / 60 // seconds between synthesized events
	strokeSpacing = 0.15     // vertical offset between synthesized strokes
	jitterDropout = 0.3      // probability a jittered event is dropped
	jitterNoise   = 0.004    // positional noise of jittered events
)

// SynthOptions configures Synthesize.
type SynthOptions struct {
	Shape Shape

	// Points is the number of events per stroke before dropout.
	Points int

	// Strokes is the number of strokes. Zero means one.
	Strokes int

	// Seed makes jittered recordings reproducible.
	Seed uint64
}

// Synthesize builds a deterministic recording in unit space.
// Each stroke is a down event, moves, and an up event. Size ramps up and
// back down along the stroke, pressure follows a slower swell.
func Synthesize(opts SynthOptions) (*Recording, error) {
	if opts.Points < 1 {
		return nil, fmt.Errorf("%w: points must be >= 1", ErrEmpty)
	}
	strokes := max(opts.Strokes, 1)

	var path func(t float64) (x, y float64)
	switch opts.Shape {
	case ShapeLine, ShapeJitter, "":
		path = func(t float64) (float64, float64) { return 0.1 + 0.8*t, 0.2 }
	case ShapeArc:
		path = func(t float64) (float64, float64) {
			a := 1.5 * math.Pi * t
			return 0.5 + 0.3*math.Cos(a), 0.3 + 0.1*math.Sin(a)
		}
	default:
		return nil, fmt.Errorf("recording: unknown shape %q", opts.Shape)
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	jitter := opts.Shape == ShapeJitter

	rec := &Recording{Events: make([]Event, 0, strokes*opts.Points)}
	for s := range strokes {
		offset := float64(s) * strokeSpacing
		start := len(rec.Events)

		for i := range opts.Points {
			t := 0.0
			if opts.Points > 1 {
				t = float64(i) / float64(opts.Points-1)
			}
			last := i == opts.Points-1
			if jitter && i > 0 && !last && rng.Float64() < jitterDropout {
				continue
			}

			x, y := path(t)
			y += offset
			if jitter {
				x += (rng.Float64()*2 - 1) * jitterNoise
				y += (rng.Float64()*2 - 1) * jitterNoise
			}

			e := Event{
				Action:   ActionMove,
				X:        x,
				Y:        y,
				Size:     0.2 + 0.4*math.Sin(math.Pi*t),
				Pressure: 0.3 + 0.5*math.Sin(0.5*math.Pi*t),
			}
			if jitter {
				e.Size *= 0.8 + 0.4*rng.Float64()
			}
			if n := len(rec.Events); n > start {
				prev := rec.Events[n-1]
				e.VX = (e.X - prev.X) / frameInterval
				e.VY = (e.Y - prev.Y) / frameInterval
			}

			rec.Events = append(rec.Events, e)
		}

		rec.Events[start].Action = ActionDown
		if end := len(rec.Events) - 1; end > start {
			rec.Events[end].Action = ActionUp
		}
	}

	return rec, nil
}
