package recording

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	conditioner "github.com/tphakala/go-touch-conditioner"
	"github.com/tphakala/go-touch-conditioner/internal/testutil"
)

func TestSynthesize_Shapes(t *testing.T) {
	for _, shape := range []Shape{ShapeLine, ShapeArc, ShapeJitter} {
		t.Run(string(shape), func(t *testing.T) {
			rec, err := Synthesize(SynthOptions{Shape: shape, Points: 40, Seed: 3})
			require.NoError(t, err)
			require.NoError(t, rec.Validate())

			n := len(rec.Events)
			require.GreaterOrEqual(t, n, 2)
			if shape != ShapeJitter {
				assert.Equal(t, 40, n)
			}
			assert.Equal(t, ActionDown, rec.Events[0].Action)
			assert.Equal(t, ActionUp, rec.Events[n-1].Action)
			for _, e := range rec.Events[1 : n-1] {
				assert.Equal(t, ActionMove, e.Action)
			}

			sizes := make([]float64, n)
			for i, e := range rec.Events {
				sizes[i] = e.Size
				require.NoError(t, e.Raw().Validate())
			}
			testutil.AssertAllInRange(t, sizes, 0, 1)
		})
	}
}

func TestSynthesize_Deterministic(t *testing.T) {
	opts := SynthOptions{Shape: ShapeJitter, Points: 64, Seed: 42}
	a, err := Synthesize(opts)
	require.NoError(t, err)
	b, err := Synthesize(opts)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	opts.Seed = 43
	c, err := Synthesize(opts)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestSynthesize_MultipleStrokes(t *testing.T) {
	rec, err := Synthesize(SynthOptions{Shape: ShapeLine, Points: 10, Strokes: 3})
	require.NoError(t, err)
	require.Len(t, rec.Events, 30)
	assert.Len(t, rec.Strokes(), 3)

	p := conditioner.NewDefault()
	res, err := Replay(p, rec)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Strokes)
	assert.Equal(t, int64(3), p.Counters().Strokes)
}

func TestSynthesize_Invalid(t *testing.T) {
	_, err := Synthesize(SynthOptions{Points: 0})
	require.ErrorIs(t, err, ErrEmpty)

	_, err = Synthesize(SynthOptions{Shape: "spiral", Points: 5})
	require.Error(t, err)
}

func BenchmarkReplay(b *testing.B) {
	rec, err := Synthesize(SynthOptions{Shape: ShapeJitter, Points: 2000, Seed: 1})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for b.Loop() {
		p := conditioner.NewDefault()
		if _, err := Replay(p, rec); err != nil {
			b.Fatal(err)
		}
	}
}
