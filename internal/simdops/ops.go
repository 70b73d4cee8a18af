// Package simdops provides generic SIMD operations for float32 and float64 sample columns.
// Conditioned samples are stored as structs; renderers and reports want flat columns,
// so this package does the column math for both precisions without duplication.
package simdops

import (
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Ops provides SIMD-accelerated operations for type F.
type Ops[F Float] struct {
	// Interleave2 interleaves two slices: dst[0]=a[0], dst[1]=b[0], dst[2]=a[1], ...
	// dst must hold 2*len(a) elements.
	Interleave2 func(dst, a, b []F)

	// Sum returns the sum of all elements.
	Sum func(a []F) F

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []F, s F)
}

// Pre-instantiated operations for each float type.
var (
	ops32 = Ops[float32]{
		Interleave2: f32.Interleave2,
		Sum:         f32.Sum,
		Scale:       f32.Scale,
	}
	ops64 = Ops[float64]{
		Interleave2: f64.Interleave2,
		Sum:         f64.Sum,
		Scale:       f64.Scale,
	}
)

// For returns the Ops instance for type F.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}

// InterleaveXY returns a flat [x0, y0, x1, y1, ...] buffer built from two columns.
// The shorter column bounds the output length.
func InterleaveXY[F Float](xs, ys []F) []F {
	n := min(len(xs), len(ys))
	if n == 0 {
		return []F{}
	}
	dst := make([]F, 2*n)
	For[F]().Interleave2(dst, xs[:n], ys[:n])
	return dst
}

// Mean returns the arithmetic mean of a column, or 0 for an empty column.
func Mean[F Float](a []F) F {
	if len(a) == 0 {
		return 0
	}
	ops := For[F]()
	return ops.Sum(a) / F(len(a))
}
