package conditioner

import (
	"math"
)

// gapCountTolerance absorbs float error when a distance is an exact multiple of
// the minimum gap, e.g. 0.035/0.005 = 7.000000000000001.
const gapCountTolerance = 1e-9

// interpolationCount returns how many samples are needed to bridge dist so
// that consecutive samples are at most MinGap apart.
//
// Distances shorter than MinGap need none. Otherwise the count is dist/MinGap
// for exact multiples and the next integer above it for anything in between.
func (p *Pipeline) interpolationCount(dist float64) int {
	if dist < p.cfg.MinGap {
		return 0
	}

	k := int(math.Ceil(dist/p.cfg.MinGap - gapCountTolerance))
	return max(k, 1)
}

// fillGap appends the samples bridging parent and raw.
//
// Intermediate positions and velocities are linear between parent and raw.
// Intermediate size and pressure crawl toward raw through the throttle, each
// one stepping from its predecessor. The trailing full sample takes raw's
// position with size and pressure throttled from parent; it is dropped while
// the stroke is ending.
func (p *Pipeline) fillGap(parent Sample, raw RawSample, dist float64) {
	k := p.interpolationCount(dist)

	prevSize, prevPressure := parent.Size, parent.Pressure
	for i := 1; i <= k; i++ {
		t := float64(i) / float64(k)

		s := Sample{
			Position:     parent.Position.Lerp(raw.Position, t),
			Velocity:     parent.Velocity.Lerp(raw.Velocity, t),
			Size:         p.throttleSize(prevSize, raw.Size),
			Pressure:     p.throttlePressure(prevPressure, raw.Pressure),
			Interpolated: true,
		}
		p.add(s)

		prevSize, prevPressure = s.Size, s.Pressure
	}

	if k > 0 {
		Logger().Debug("conditioner: gap filled", "distance", dist, "samples", k)
	}

	if dist <= p.cfg.MinGap {
		return
	}

	if p.state == StateEnding {
		p.counters.SuppressedTails++
		Logger().Debug("conditioner: tail suppressed", "distance", dist)
		return
	}

	p.add(Sample{
		Position: raw.Position,
		Velocity: raw.Velocity,
		Size:     p.throttleSize(parent.Size, raw.Size),
		Pressure: p.throttlePressure(parent.Pressure, raw.Pressure),
	})
}
