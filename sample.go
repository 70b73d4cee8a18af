package conditioner

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/tphakala/go-touch-conditioner/internal/mathutil"
)

// RawSample is one touch reading as delivered by the input device,
// before interpolation, throttling or normalization.
type RawSample struct {
	// Position is the touch location.
	Position gg.Point

	// Velocity is the touch velocity reported with the reading.
	Velocity gg.Vec2

	// Size is the raw contact size (>= 0).
	Size float64

	// Pressure is the raw contact pressure (>= 0).
	Pressure float64
}

// Raw is a convenience constructor for RawSample.
func Raw(x, y, vx, vy, size, pressure float64) RawSample {
	return RawSample{
		Position: gg.Pt(x, y),
		Velocity: gg.V2(vx, vy),
		Size:     size,
		Pressure: pressure,
	}
}

// Validate reports whether the sample can be ingested.
// Coordinates and velocity must be finite; size and pressure must be finite and non-negative.
func (r RawSample) Validate() error {
	for _, v := range [...]float64{r.Position.X, r.Position.Y, r.Velocity.X, r.Velocity.Y} {
		if !mathutil.IsFinite(v) {
			return fmt.Errorf("%w: non-finite position or velocity", ErrInvalidSample)
		}
	}

	if !(r.Size >= 0) || !mathutil.IsFinite(r.Size) {
		return fmt.Errorf("%w: size %v", ErrInvalidSample, r.Size)
	}

	if !(r.Pressure >= 0) || !mathutil.IsFinite(r.Pressure) {
		return fmt.Errorf("%w: pressure %v", ErrInvalidSample, r.Pressure)
	}

	return nil
}

// Sample is one conditioned point of a stroke.
// Samples are values; a stored sample is never modified after it is appended.
type Sample struct {
	Position gg.Point
	Velocity gg.Vec2
	Size     float64
	Pressure float64

	// NormalizedSize is Size mapped to [0, 1] using the running statistics
	// in effect when the sample was appended.
	NormalizedSize float64

	// Interpolated is true for samples synthesized to fill a gap.
	Interpolated bool

	// StrokeStart is true for the first sample of a stroke. It is not
	// bridged to the sample before it.
	StrokeStart bool
}

// fromRaw copies the measured fields of r into a stroke start.
func fromRaw(r RawSample) Sample {
	return Sample{
		StrokeStart: true,
		Position:    r.Position,
		Velocity:    r.Velocity,
		Size:        r.Size,
		Pressure:    r.Pressure,
	}
}
