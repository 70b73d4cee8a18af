package conditioner

import (
	"fmt"

	"github.com/tphakala/go-touch-conditioner/internal/mathutil"
	"github.com/tphakala/go-touch-conditioner/internal/simdops"
)

// Pipeline conditions the raw samples of touch strokes into a dense,
// throttled and normalized sample sequence.
//
// A Pipeline is not safe for concurrent use. A renderer reading Samples from
// another goroutine must synchronize with the writer or read SamplesCopy.
type Pipeline struct {
	cfg Config

	buffer []Sample

	// last is the most recently appended sample. It survives Clear and
	// MarkEnded, so the first sample of the next stroke is still measured
	// against the end of the previous one.
	last    Sample
	hasLast bool

	state    StrokeState
	stats    Stats
	counters Counters

	throttleSize     func(prev, target float64) float64
	throttlePressure func(prev, target float64) float64
}

// Counters reports how raw samples were turned into stored samples.
type Counters struct {
	// Accepted is the number of raw samples that passed validation.
	Accepted int64

	// Rejected is the number of raw samples refused by Ingest.
	Rejected int64

	// Stored is the total number of samples appended, including interpolated ones.
	Stored int64

	// Interpolated is the number of gap-filling samples appended.
	Interpolated int64

	// SuppressedTails is the number of trailing full samples dropped while ending.
	SuppressedTails int64

	// Strokes is the number of strokes started.
	Strokes int64
}

// New creates a pipeline with empty statistics.
// A nil config uses DefaultConfig.
func New(cfg *Config) (*Pipeline, error) {
	return NewSeeded(cfg, NewStats())
}

// NewDefault creates a pipeline with DefaultConfig.
func NewDefault() *Pipeline {
	cfg := DefaultConfig()
	return newPipeline(cfg, NewStats())
}

// NewSeeded creates a pipeline whose statistics continue from seed,
// e.g. the statistics of a previous drawing session. A seed with a zero
// count starts from empty statistics.
func NewSeeded(cfg *Config, seed Stats) (*Pipeline, error) {
	c := DefaultConfig()
	if cfg != nil {
		c = *cfg
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := seed.Validate(); err != nil {
		return nil, err
	}
	if seed.Count == 0 {
		seed = NewStats()
	}

	return newPipeline(c, seed), nil
}

func newPipeline(cfg Config, seed Stats) *Pipeline {
	p := &Pipeline{
		cfg:    cfg,
		buffer: make([]Sample, 0, defaultBufferCapacity),
		state:  StateNotStarted,
		stats:  seed,
	}

	sizeStep := cfg.SizeStep
	p.throttleSize = func(prev, target float64) float64 {
		return mathutil.Throttle(prev, target, sizeStep)
	}

	if cfg.PressureStep == mathutil.DefaultThrottleStep {
		p.throttlePressure = mathutil.ThrottleDefault
	} else {
		pressureStep := cfg.PressureStep
		p.throttlePressure = func(prev, target float64) float64 {
			return mathutil.Throttle(prev, target, pressureStep)
		}
	}

	return p
}

// Ingest feeds one raw sample through the pipeline and appends zero, one or
// many conditioned samples to the buffer.
//
// Statistics are updated before any interpolation decision, so every sample
// appended by this call is normalized with statistics that include raw.
//
// Ingest returns ErrInvalidSample for malformed input and ErrGapTooLarge when
// Config.MaxInterpolations is exceeded. A rejected sample leaves the
// statistics and the buffer untouched.
func (p *Pipeline) Ingest(raw RawSample) error {
	if err := raw.Validate(); err != nil {
		p.reject(raw, err)
		return err
	}

	var dist float64
	if p.hasLast {
		dist = raw.Position.Distance(p.last.Position)
	}

	if p.state.active() && p.cfg.MaxInterpolations > 0 {
		if k := p.interpolationCount(dist); k > p.cfg.MaxInterpolations {
			err := fmt.Errorf("%w: %d samples needed, limit is %d", ErrGapTooLarge, k, p.cfg.MaxInterpolations)
			p.reject(raw, err)
			return err
		}
	}

	p.stats.Update(raw.Size)
	p.counters.Accepted++

	if p.state.idle() {
		if !p.hasLast || dist > p.cfg.MinGap {
			p.startStroke(raw)
		}
		return nil
	}

	p.fillGap(p.last, raw, dist)
	return nil
}

func (p *Pipeline) reject(raw RawSample, err error) {
	p.counters.Rejected++
	Logger().Warn("conditioner: sample rejected",
		"x", raw.Position.X, "y", raw.Position.Y, "err", err)
}

// startStroke appends raw unmodified as the first sample of a stroke.
func (p *Pipeline) startStroke(raw RawSample) {
	p.state = StateStarted
	p.counters.Strokes++
	p.add(fromRaw(raw))

	Logger().Debug("conditioner: stroke started",
		"x", raw.Position.X, "y", raw.Position.Y, "stroke", p.counters.Strokes)
}

// add normalizes s with the current statistics and appends it.
func (p *Pipeline) add(s Sample) {
	s.NormalizedSize = p.stats.Normalize(s.Size)
	p.buffer = append(p.buffer, s)
	p.last = s
	p.hasLast = true

	p.counters.Stored++
	if s.Interpolated {
		p.counters.Interpolated++
	}
}

// MarkEnding signals that the touch is lifting off.
// While ending, gaps are still filled but the trailing full sample of each
// ingested raw sample is dropped. Only a started stroke can start ending.
func (p *Pipeline) MarkEnding() {
	if p.state != StateStarted {
		Logger().Debug("conditioner: ending ignored", "state", p.state)
		return
	}
	p.state = StateEnding
}

// MarkEnded completes the current stroke. The buffer and the last sample are
// kept; call Clear to drop buffered samples.
func (p *Pipeline) MarkEnded() {
	if p.state.active() {
		Logger().Debug("conditioner: stroke ended", "samples", len(p.buffer))
	}
	p.state = StateEnded
}

// HasEnded reports whether no stroke is in progress.
// It is true for a fresh pipeline.
func (p *Pipeline) HasEnded() bool {
	return p.state.idle()
}

// State returns the current stroke lifecycle state.
func (p *Pipeline) State() StrokeState {
	return p.state
}

// HasAny reports whether the buffer holds any samples.
func (p *Pipeline) HasAny() bool {
	return len(p.buffer) > 0
}

// Last returns the most recently appended sample.
// It may belong to a previous stroke or to samples already dropped by Clear.
func (p *Pipeline) Last() (Sample, bool) {
	return p.last, p.hasLast
}

// HasLast reports whether any sample was ever appended.
func (p *Pipeline) HasLast() bool {
	return p.hasLast
}

// Samples returns the buffered samples in insertion order.
// The returned slice aliases the buffer: callers must not modify it, and it is
// only valid until the next call to Ingest or Clear.
func (p *Pipeline) Samples() []Sample {
	return p.buffer[:len(p.buffer):len(p.buffer)]
}

// SamplesCopy returns an owned copy of the buffered samples.
func (p *Pipeline) SamplesCopy() []Sample {
	out := make([]Sample, len(p.buffer))
	copy(out, p.buffer)
	return out
}

// Clear empties the buffer. Statistics, the lifecycle state and the last
// sample are kept.
func (p *Pipeline) Clear() {
	clear(p.buffer)
	p.buffer = p.buffer[:0]
}

// SampleCount returns the number of raw samples folded into the statistics.
func (p *Pipeline) SampleCount() int {
	return p.stats.Count
}

// AverageSize returns the running mean of raw sizes.
func (p *Pipeline) AverageSize() float64 {
	return p.stats.Mean
}

// MinSize returns the smallest raw size seen, or InitialMinSize.
func (p *Pipeline) MinSize() float64 {
	return p.stats.Min
}

// MaxSize returns the largest raw size seen.
func (p *Pipeline) MaxSize() float64 {
	return p.stats.Max
}

// Stats returns a snapshot of the running statistics.
// It can seed a later pipeline through NewSeeded.
func (p *Pipeline) Stats() Stats {
	return p.stats
}

// Counters returns a snapshot of the pipeline counters.
func (p *Pipeline) Counters() Counters {
	return p.counters
}

// Config returns the pipeline configuration.
func (p *Pipeline) Config() Config {
	return p.cfg
}

// Vertices returns the buffered positions as a flat [x0, y0, x1, y1, ...]
// float32 buffer, ready for upload to a GPU vertex buffer.
func (p *Pipeline) Vertices() []float32 {
	xs := make([]float32, len(p.buffer))
	ys := make([]float32, len(p.buffer))
	for i, s := range p.buffer {
		xs[i] = float32(s.Position.X)
		ys[i] = float32(s.Position.Y)
	}
	return simdops.InterleaveXY(xs, ys)
}
