// Package conditioner turns raw touch samples into brush-ready strokes in pure Go.
//
// Touch hardware reports samples at an irregular rate, with gaps whenever the
// finger moves fast. A procedural brush that stamps one dab per sample then
// draws dotted lines and abrupt width changes. The conditioner fixes this on
// the fly, one raw sample at a time, without a second pass over the stroke.
//
// # Features
//
//   - Gap interpolation: no two stored samples are farther apart than [Config.MinGap]
//   - Attribute throttling: size and pressure crawl toward their targets instead of jumping
//   - Online statistics: running mean/min/max of raw size, never re-summed
//   - Size normalization to [0, 1] with a window derived from the running statistics
//   - Tail clipping while the touch lifts off, so strokes do not overshoot
//   - Statistics seeding to continue normalization across drawing sessions
//
// # Quick Start
//
// For a complete stroke that is already recorded:
//
//	samples, err := conditioner.ConditionStroke(raws, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For live input, drive the pipeline from the touch handler:
//
//	p := conditioner.NewDefault()
//
//	// touch down / move
//	if err := p.Ingest(conditioner.Raw(x, y, vx, vy, size, pressure)); err != nil {
//	    log.Printf("dropped sample: %v", err)
//	}
//
//	// touch up
//	p.MarkEnding()
//	_ = p.Ingest(lastRaw)
//	p.MarkEnded()
//
//	render(p.Samples())
//	p.Clear()
//
// # Stroke Lifecycle
//
// A pipeline moves through [StateNotStarted], [StateStarted], [StateEnding]
// and [StateEnded]. The first sample of a stroke is stored as-is. Later
// samples are bridged to the previous one with interpolated samples. While
// ending, the trailing full sample of each raw sample is dropped. MarkEnded
// neither clears the buffer nor forgets the last sample: the first sample of
// the next stroke is still compared with the end of the previous one.
//
// # Normalization
//
// Each stored sample gets a NormalizedSize computed from the statistics in
// effect when it was appended, including the raw sample that produced it.
// Earlier samples are never renormalized. With mean m, minimum lo and
// maximum hi, the window is
//
//	low  = lo + (m-lo)/2
//	high = min(m + 2*(m-lo), hi)
//
// and a degenerate window maps every size to 0.5.
//
// # Thread Safety
//
// A [Pipeline] is not safe for concurrent use. Ingest, the lifecycle calls and
// Clear must be serialized by the caller. A renderer on another goroutine
// should read [Pipeline.SamplesCopy] under the caller's lock.
//
// # Logging
//
// The package logs through log/slog and is silent by default; see [SetLogger].
package conditioner
