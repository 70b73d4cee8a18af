package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	conditioner "github.com/tphakala/go-touch-conditioner"
	"github.com/tphakala/go-touch-conditioner/internal/config"
	"github.com/tphakala/go-touch-conditioner/internal/recording"
	"github.com/tphakala/go-touch-conditioner/internal/render"
	"github.com/tphakala/go-touch-conditioner/internal/report"
)

// errNoInput is returned when neither a recording nor a demo was requested.
var errNoInput = errors.New("no input: pass -input or -demo")

// options holds the parsed command line.
type options struct {
	configPath string
	inputPath  string
	outputPath string
	metrics    string
	saveSeed   bool
	verbose    bool

	demo    bool
	shape   string
	points  int
	strokes int
	seed    uint64
}

// runResult is what one conditioning run produced.
type runResult struct {
	replay  recording.ReplayResult
	summary report.Summary
	stats   conditioner.Stats
	count   conditioner.Counters
}

// loadConfig reads the config file, or returns defaults without one.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Defaults(), nil
	}
	return config.Load(path)
}

// loadRecording reads the input recording or synthesizes the demo one.
func loadRecording(opts *options) (*recording.Recording, error) {
	switch {
	case opts.inputPath != "":
		rec, err := recording.Load(opts.inputPath)
		if err != nil {
			return nil, err
		}
		if len(rec.Events) == 0 {
			return nil, fmt.Errorf("%w: %s", recording.ErrEmpty, opts.inputPath)
		}
		return rec, nil
	case opts.demo:
		return recording.Synthesize(recording.SynthOptions{
			Shape:   recording.Shape(opts.shape),
			Points:  opts.points,
			Strokes: opts.strokes,
			Seed:    opts.seed,
		})
	default:
		return nil, errNoInput
	}
}

// process conditions rec with cfg, writes the preview image and the metrics,
// and returns the run summary.
func process(cfg *config.Config, rec *recording.Recording, opts *options) (*runResult, error) {
	p, err := cfg.NewPipeline()
	if err != nil {
		return nil, fmt.Errorf("failed to create pipeline: %w", err)
	}

	replay, err := recording.Replay(p, rec)
	if err != nil {
		return nil, fmt.Errorf("replay failed: %w", err)
	}

	samples := p.SamplesCopy()
	res := &runResult{
		replay:  replay,
		summary: report.Summarize(samples),
		stats:   p.Stats(),
		count:   p.Counters(),
	}

	if opts.outputPath != "" {
		if err := writeImage(opts.outputPath, samples, render.FromConfig(cfg.Render)); err != nil {
			return nil, err
		}
	}

	if opts.metrics != "" {
		if err := writeMetrics(opts.metrics, res); err != nil {
			return nil, err
		}
	}

	if opts.saveSeed {
		if err := config.SaveSeed(opts.configPath, res.stats); err != nil {
			return nil, fmt.Errorf("failed to save seed: %w", err)
		}
	}

	return res, nil
}

func writeImage(path string, samples []conditioner.Sample, ro render.Options) error {
	dc, err := render.Stroke(samples, ro)
	if err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}
	defer func() { _ = dc.Close() }()

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

func writeMetrics(path string, res *runResult) error {
	var w io.Writer = os.Stdout
	if path != stdoutPath {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create metrics file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				log.Printf("Failed to close metrics file: %v", cerr)
			}
		}()
		w = f
	}
	return report.WriteMetrics(w, res.count, res.stats, res.summary)
}

// printSummary writes a human-readable run summary.
func printSummary(w io.Writer, res *runResult) {
	s := res.summary
	fmt.Fprintf(w, "Replayed %d events in %d strokes (%d rejected)\n",
		res.replay.Events, res.replay.Strokes, res.replay.Rejected)
	fmt.Fprintf(w, "  Stored samples: %d (%d interpolated, %d tails suppressed)\n",
		s.Samples, s.Interpolated, res.count.SuppressedTails)
	fmt.Fprintf(w, "  Max gap: %.5f\n", s.MaxGap)
	fmt.Fprintf(w, "  Max step: size %.4f, pressure %.4f\n", s.MaxSizeStep, s.MaxPressureStep)
	fmt.Fprintf(w, "  Normalized size: mean %.3f, stddev %.3f, range [%.3f, %.3f]\n",
		s.NormalizedSize.Mean, s.NormalizedSize.StdDev, s.NormalizedSize.Min, s.NormalizedSize.Max)
	if res.stats.Count > 0 {
		fmt.Fprintf(w, "  Raw size: n=%d mean %.4f, range [%.4f, %.4f]\n",
			res.stats.Count, res.stats.Mean, res.stats.Min, res.stats.Max)
	}
}
