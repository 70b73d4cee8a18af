package report

import (
	"bytes"
	"io"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	conditioner "github.com/tphakala/go-touch-conditioner"
)

func TestWriteMetrics(t *testing.T) {
	p := conditioner.NewDefault()
	require.NoError(t, p.Ingest(conditioner.Raw(0, 0, 0, 0, 0.5, 0.5)))
	require.Error(t, p.Ingest(conditioner.Raw(0, 0, 0, 0, -1, 0.5)))
	p.MarkEnding()
	require.NoError(t, p.Ingest(conditioner.Raw(0.012, 0, 0, 0, 0.7, 0.5)))

	var buf bytes.Buffer
	require.NoError(t, WriteMetrics(&buf, p.Counters(), p.Stats(), Summarize(p.Samples())))

	mfs := parseMetrics(t, &buf)

	raw := mfs[MetricPrefix+"raw_samples_total"]
	require.NotNil(t, raw)
	assert.Equal(t, dto.MetricType_COUNTER, raw.GetType())
	assert.Equal(t, 1.0, labeled(raw, "result", "accepted"))
	assert.Equal(t, 1.0, labeled(raw, "result", "rejected"))

	assert.Equal(t, 4.0, sumFamily(mfs[MetricPrefix+"stored_samples_total"]))
	assert.Equal(t, 3.0, sumFamily(mfs[MetricPrefix+"interpolated_samples_total"]))
	assert.Equal(t, 1.0, sumFamily(mfs[MetricPrefix+"suppressed_tails_total"]))
	assert.Equal(t, 1.0, sumFamily(mfs[MetricPrefix+"strokes_total"]))
	assert.Equal(t, 2.0, sumFamily(mfs[MetricPrefix+"size_samples"]))

	size := mfs[MetricPrefix+"size"]
	require.NotNil(t, size)
	assert.InDelta(t, 0.6, labeled(size, "stat", "mean"), 1e-12)
	assert.Equal(t, 0.5, labeled(size, "stat", "min"))
	assert.Equal(t, 0.7, labeled(size, "stat", "max"))

	assert.Equal(t, 4.0, sumFamily(mfs[MetricPrefix+"buffer_samples"]))
	assert.NotNil(t, mfs[MetricPrefix+"buffer_max_gap"])
	assert.NotNil(t, mfs[MetricPrefix+"buffer_normalized_size"])
}

func TestWriteMetrics_FreshPipeline(t *testing.T) {
	p := conditioner.NewDefault()

	var buf bytes.Buffer
	require.NoError(t, WriteMetrics(&buf, p.Counters(), p.Stats(), Summarize(p.Samples())))

	mfs := parseMetrics(t, &buf)
	assert.Nil(t, mfs[MetricPrefix+"size"], "no sentinel minimum is exported")
	assert.Nil(t, mfs[MetricPrefix+"buffer_max_gap"])
	assert.Equal(t, 0.0, sumFamily(mfs[MetricPrefix+"strokes_total"]))
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestWriteMetrics_WriterError(t *testing.T) {
	err := WriteMetrics(failWriter{}, conditioner.Counters{}, conditioner.NewStats(), Summary{})
	require.ErrorIs(t, err, io.ErrClosedPipe)
}

// --- helpers ---

func parseMetrics(t *testing.T, r io.Reader) map[string]*dto.MetricFamily {
	t.Helper()
	var parser expfmt.TextParser
	mfs, err := parser.TextToMetricFamilies(r)
	require.NoError(t, err)
	return mfs
}

func sumFamily(mf *dto.MetricFamily) float64 {
	if mf == nil {
		return 0
	}
	var total float64
	for _, m := range mf.GetMetric() {
		switch {
		case m.Counter != nil:
			total += m.Counter.GetValue()
		case m.Gauge != nil:
			total += m.Gauge.GetValue()
		}
	}
	return total
}

func labeled(mf *dto.MetricFamily, name, value string) float64 {
	for _, m := range mf.GetMetric() {
		for _, lp := range m.GetLabel() {
			if lp.GetName() == name && lp.GetValue() == value {
				if m.Counter != nil {
					return m.Counter.GetValue()
				}
				return m.Gauge.GetValue()
			}
		}
	}
	return -1
}
