package report

import (
	"fmt"
	"io"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"

	conditioner "github.com/tphakala/go-touch-conditioner"
)

// MetricPrefix is prepended to every exported metric name.
const MetricPrefix = "touch_conditioner_"

// WriteMetrics writes pipeline counters, running statistics and a buffer
// summary to w in the Prometheus text exposition format.
func WriteMetrics(w io.Writer, c conditioner.Counters, st conditioner.Stats, sum Summary) error {
	for _, mf := range Families(c, st, sum) {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("report: write %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// Families builds the metric families written by WriteMetrics.
func Families(c conditioner.Counters, st conditioner.Stats, sum Summary) []*dto.MetricFamily {
	families := []*dto.MetricFamily{
		family("raw_samples_total", "Raw samples offered to the pipeline.", dto.MetricType_COUNTER,
			counter(float64(c.Accepted), "result", "accepted"),
			counter(float64(c.Rejected), "result", "rejected")),
		family("stored_samples_total", "Samples appended to the buffer, interpolated ones included.", dto.MetricType_COUNTER,
			counter(float64(c.Stored))),
		family("interpolated_samples_total", "Samples synthesized to fill gaps.", dto.MetricType_COUNTER,
			counter(float64(c.Interpolated))),
		family("suppressed_tails_total", "Trailing samples dropped while a stroke was ending.", dto.MetricType_COUNTER,
			counter(float64(c.SuppressedTails))),
		family("strokes_total", "Strokes started.", dto.MetricType_COUNTER,
			counter(float64(c.Strokes))),
		family("size_samples", "Raw sizes folded into the running statistics.", dto.MetricType_GAUGE,
			gauge(float64(st.Count))),
	}

	if st.Count > 0 {
		families = append(families, family("size", "Running raw size statistics.", dto.MetricType_GAUGE,
			gauge(st.Mean, "stat", "mean"),
			gauge(st.Min, "stat", "min"),
			gauge(st.Max, "stat", "max")))
	}

	families = append(families,
		family("buffer_samples", "Samples currently buffered.", dto.MetricType_GAUGE,
			gauge(float64(sum.Samples))))

	if sum.Samples > 0 {
		families = append(families,
			family("buffer_normalized_size", "Normalized size distribution of the buffer.", dto.MetricType_GAUGE,
				gauge(sum.NormalizedSize.Mean, "stat", "mean"),
				gauge(sum.NormalizedSize.StdDev, "stat", "stddev"),
				gauge(sum.NormalizedSize.Min, "stat", "min"),
				gauge(sum.NormalizedSize.Max, "stat", "max")),
			family("buffer_max_gap", "Largest in-stroke distance between buffered samples.", dto.MetricType_GAUGE,
				gauge(sum.MaxGap)),
			family("buffer_max_step", "Largest in-stroke attribute change between buffered samples.", dto.MetricType_GAUGE,
				gauge(sum.MaxSizeStep, "attribute", "size"),
				gauge(sum.MaxPressureStep, "attribute", "pressure")),
			family("buffer_path_length", "Summed in-stroke distance of the buffer.", dto.MetricType_GAUGE,
				gauge(sum.PathLength)))
	}

	return families
}

func family(name, help string, typ dto.MetricType, metrics ...*dto.Metric) *dto.MetricFamily {
	return &dto.MetricFamily{
		Name:   ptr(MetricPrefix + name),
		Help:   ptr(help),
		Type:   typ.Enum(),
		Metric: metrics,
	}
}

// counter builds a counter sample. labels are name/value pairs.
func counter(v float64, labels ...string) *dto.Metric {
	return &dto.Metric{Label: labelPairs(labels), Counter: &dto.Counter{Value: ptr(v)}}
}

// gauge builds a gauge sample. labels are name/value pairs.
func gauge(v float64, labels ...string) *dto.Metric {
	return &dto.Metric{Label: labelPairs(labels), Gauge: &dto.Gauge{Value: ptr(v)}}
}

func labelPairs(kv []string) []*dto.LabelPair {
	if len(kv) == 0 {
		return nil
	}
	pairs := make([]*dto.LabelPair, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		pairs = append(pairs, &dto.LabelPair{Name: ptr(kv[i]), Value: ptr(kv[i+1])})
	}
	return pairs
}

func ptr[T any](v T) *T { return &v }
