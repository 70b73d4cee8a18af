// Package report summarizes conditioned strokes and exports pipeline metrics.
package report

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	conditioner "github.com/tphakala/go-touch-conditioner"
	"github.com/tphakala/go-touch-conditioner/internal/simdops"
)

// Column describes the distribution of one sample attribute.
type Column struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summary is a batch description of a conditioned sample buffer.
type Summary struct {
	Samples      int
	Interpolated int
	Strokes      int

	Size           Column
	Pressure       Column
	NormalizedSize Column

	// MaxGap is the largest distance between consecutive samples of the
	// same stroke.
	MaxGap float64

	// MaxSizeStep and MaxPressureStep are the largest attribute changes
	// between consecutive samples of the same stroke.
	MaxSizeStep     float64
	MaxPressureStep float64

	// PathLength is the summed in-stroke distance.
	PathLength float64
}

// Summarize describes samples. An empty buffer gives the zero Summary.
func Summarize(samples []conditioner.Sample) Summary {
	var s Summary
	if len(samples) == 0 {
		return s
	}

	s.Samples = len(samples)
	s.Size = describe(conditioner.Sizes(samples))
	s.Pressure = describe(conditioner.Pressures(samples))
	s.NormalizedSize = describe(conditioner.NormalizedSizes(samples))

	for i, cur := range samples {
		if cur.Interpolated {
			s.Interpolated++
		}
		if i == 0 || cur.StrokeStart {
			s.Strokes++
			continue
		}

		prev := samples[i-1]
		gap := cur.Position.Distance(prev.Position)
		s.PathLength += gap
		s.MaxGap = math.Max(s.MaxGap, gap)
		s.MaxSizeStep = math.Max(s.MaxSizeStep, math.Abs(cur.Size-prev.Size))
		s.MaxPressureStep = math.Max(s.MaxPressureStep, math.Abs(cur.Pressure-prev.Pressure))
	}

	return s
}

// describe requires a non-empty column.
func describe(x []float64) Column {
	c := Column{
		Mean: simdops.Mean(x),
		Min:  floats.Min(x),
		Max:  floats.Max(x),
	}
	if len(x) > 1 {
		c.StdDev = stat.StdDev(x, nil)
	}
	return c
}
