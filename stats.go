package conditioner

import (
	"fmt"
	"math"

	"github.com/tphakala/go-touch-conditioner/internal/mathutil"
)

// Stats holds running statistics over every raw size ever ingested.
// The zero value is not ready for use; call NewStats.
type Stats struct {
	// Count is the number of raw samples folded in.
	Count int

	// Mean is the running mean of raw sizes.
	Mean float64

	// Min is the smallest raw size seen, or InitialMinSize before any sample.
	Min float64

	// Max is the largest raw size seen, or 0 before any sample.
	Max float64
}

// NewStats returns empty statistics.
func NewStats() Stats {
	return Stats{Min: InitialMinSize}
}

// Validate checks that s can seed a pipeline.
func (s Stats) Validate() error {
	if s.Count < 0 {
		return fmt.Errorf("%w: seed count must be >= 0", ErrInvalidConfig)
	}

	for _, v := range [...]float64{s.Mean, s.Min, s.Max} {
		if math.IsNaN(v) || v < 0 {
			return fmt.Errorf("%w: seed sizes must be non-negative numbers", ErrInvalidConfig)
		}
	}

	if s.Count > 0 && s.Min > s.Max {
		return fmt.Errorf("%w: seed min size %v exceeds max size %v", ErrInvalidConfig, s.Min, s.Max)
	}

	return nil
}

// Update folds one raw size into the statistics.
// The mean is updated incrementally so long strokes never re-sum.
func (s *Stats) Update(size float64) {
	n := float64(s.Count)
	s.Mean = s.Mean*(n/(n+1)) + size/(n+1)
	s.Count++

	s.Min = math.Min(s.Min, size)
	s.Max = math.Max(s.Max, size)
}

// Bounds returns the normalization window derived from the current statistics.
//
// The window starts halfway between the minimum and the mean, and ends at
// twice the min-to-mean distance above the mean, capped at the maximum.
func (s Stats) Bounds() (low, high float64) {
	mid := s.Mean - s.Min
	low = s.Min + mid/2
	high = math.Min(s.Mean+mid*2, s.Max)
	return low, high
}

// Normalize maps size to [0, 1] using Bounds.
// A degenerate window (all sizes equal so far) maps to 0.5.
func (s Stats) Normalize(size float64) float64 {
	low, high := s.Bounds()
	return mathutil.Normalize(size, low, high)
}
