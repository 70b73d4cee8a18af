// Package render stamps conditioned strokes onto an image with gg.
//
// Every sample becomes one filled circle: the radius follows the normalized
// size and the opacity follows the pressure. This is the procedural-brush
// view that gap interpolation and attribute throttling are designed for.
package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"

	conditioner "github.com/tphakala/go-touch-conditioner"
	"github.com/tphakala/go-touch-conditioner/internal/config"
	"github.com/tphakala/go-touch-conditioner/internal/mathutil"
	"github.com/tphakala/go-touch-conditioner/internal/simdops"
)

// ErrInvalidOptions indicates unusable render options.
var ErrInvalidOptions = errors.New("render: invalid options")

// Options configures stroke rendering.
type Options struct {
	Width, Height int

	// MinRadius and MaxRadius are the dab radii, in pixels, for normalized
	// sizes 0 and 1.
	MinRadius, MaxRadius float64

	Background gg.RGBA
	Color      gg.RGBA
}

// DefaultOptions returns the render defaults of the config package.
func DefaultOptions() Options {
	return FromConfig(config.Defaults().Render)
}

// FromConfig converts the render section of a config file.
func FromConfig(r config.RenderSection) Options {
	return Options{
		Width:      r.Width,
		Height:     r.Height,
		MinRadius:  r.MinRadius,
		MaxRadius:  r.MaxRadius,
		Background: gg.Hex(r.Background),
		Color:      gg.Hex(r.Color),
	}
}

// Validate checks that o can produce an image.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidOptions, o.Width, o.Height)
	}
	if !(o.MinRadius >= 0) || !(o.MaxRadius >= o.MinRadius) {
		return fmt.Errorf("%w: radius range [%v, %v]", ErrInvalidOptions, o.MinRadius, o.MaxRadius)
	}
	return nil
}

// Radius returns the dab radius for a normalized size.
func (o Options) Radius(normalized float64) float64 {
	return mathutil.Lerp(o.MinRadius, o.MaxRadius, mathutil.Clamp01(normalized))
}

// Stroke renders samples on a new canvas cleared to the background color.
// Positions are in unit space: (0, 0) is the top-left corner and (1, 1) the
// bottom-right. The caller owns the returned context and should Close it.
func Stroke(samples []conditioner.Sample, opts Options) (*gg.Context, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.ClearWithColor(opts.Background)

	if err := Draw(dc, samples, opts); err != nil {
		_ = dc.Close()
		return nil, err
	}
	return dc, nil
}

// Draw stamps samples onto dc, scaling unit-space positions to the canvas.
func Draw(dc *gg.Context, samples []conditioner.Sample, opts Options) error {
	xs, ys := conditioner.Positions(samples)

	ops := simdops.For[float64]()
	ops.Scale(xs, xs, float64(dc.Width()))
	ops.Scale(ys, ys, float64(dc.Height()))

	c := opts.Color
	for i, s := range samples {
		dc.SetRGBA(c.R, c.G, c.B, c.A*mathutil.Clamp01(s.Pressure))
		dc.DrawCircle(xs[i], ys[i], opts.Radius(s.NormalizedSize))
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("render: sample %d: %w", i, err)
		}
	}

	return nil
}
