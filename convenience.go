package conditioner

import (
	"errors"
	"fmt"
)

// ConditionStroke conditions one complete stroke in a single call.
// The last raw sample is ingested while the stroke is ending, as a touch
// handler would on lift-off. Samples rejected with ErrInvalidSample or
// ErrGapTooLarge are skipped; any other error aborts.
//
// A nil config uses DefaultConfig.
func ConditionStroke(raws []RawSample, cfg *Config) ([]Sample, error) {
	p, err := New(cfg)
	if err != nil {
		return nil, err
	}

	if err := feedStroke(p, raws); err != nil {
		return nil, err
	}

	return p.SamplesCopy(), nil
}

// ConditionStrokes conditions several strokes that share one set of running
// statistics, so sizes are normalized consistently across the whole drawing.
// The result holds one sample slice per input stroke.
func ConditionStrokes(strokes [][]RawSample, cfg *Config) ([][]Sample, error) {
	p, err := New(cfg)
	if err != nil {
		return nil, err
	}

	out := make([][]Sample, 0, len(strokes))
	for i, raws := range strokes {
		if err := feedStroke(p, raws); err != nil {
			return nil, fmt.Errorf("stroke %d: %w", i, err)
		}
		out = append(out, p.SamplesCopy())
		p.Clear()
	}

	return out, nil
}

// feedStroke ingests raws as one stroke: every sample but the last is ingested
// while started, the last one while ending.
func feedStroke(p *Pipeline, raws []RawSample) error {
	for i, raw := range raws {
		if i == len(raws)-1 {
			p.MarkEnding()
		}
		if err := p.Ingest(raw); err != nil && !IsRejection(err) {
			return err
		}
	}
	p.MarkEnded()
	return nil
}

// IsRejection reports whether err means Ingest refused a single sample and
// the pipeline can keep going.
func IsRejection(err error) bool {
	return errors.Is(err, ErrInvalidSample) || errors.Is(err, ErrGapTooLarge)
}

// Positions splits sample positions into x and y columns.
func Positions(samples []Sample) (xs, ys []float64) {
	xs = make([]float64, len(samples))
	ys = make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = s.Position.X
		ys[i] = s.Position.Y
	}
	return xs, ys
}

// Sizes returns the size column of samples.
func Sizes(samples []Sample) []float64 {
	return column(samples, func(s Sample) float64 { return s.Size })
}

// Pressures returns the pressure column of samples.
func Pressures(samples []Sample) []float64 {
	return column(samples, func(s Sample) float64 { return s.Pressure })
}

// NormalizedSizes returns the normalized size column of samples.
func NormalizedSizes(samples []Sample) []float64 {
	return column(samples, func(s Sample) float64 { return s.NormalizedSize })
}

// StrokeStarts returns the indices of the samples that start a stroke.
func StrokeStarts(samples []Sample) []int {
	var starts []int
	for i, s := range samples {
		if s.StrokeStart {
			starts = append(starts, i)
		}
	}
	return starts
}

func column(samples []Sample, field func(Sample) float64) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = field(s)
	}
	return out
}
