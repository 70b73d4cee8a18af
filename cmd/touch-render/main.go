// Command touch-render conditions a recorded or synthesized touch stream and
// renders the result as a brush-stamp preview.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	conditioner "github.com/tphakala/go-touch-conditioner"
	"github.com/tphakala/go-touch-conditioner/internal/config"
)

func main() {
	opts := &options{}
	var seed uint

	flag.StringVar(&opts.configPath, "config", "", "YAML config file (pipeline, seed, render)")
	flag.StringVar(&opts.inputPath, "input", "", "Touch recording (YAML or JSON)")
	flag.StringVar(&opts.outputPath, "output", defaultOutput, "Preview PNG path (empty to skip)")
	flag.StringVar(&opts.metrics, "metrics", "", "Prometheus metrics output file, or - for stdout")
	flag.BoolVar(&opts.saveSeed, "save-seed", false, "Store the final size statistics in the config file")
	flag.BoolVar(&opts.verbose, "v", false, "Verbose logging")
	flag.BoolVar(&opts.demo, "demo", false, "Condition a synthesized stroke when no -input is given")
	flag.StringVar(&opts.shape, "shape", defaultShape, "Demo shape: line, arc, jitter")
	flag.IntVar(&opts.points, "points", defaultPoints, "Demo events per stroke")
	flag.IntVar(&opts.strokes, "strokes", defaultStrokes, "Demo stroke count")
	flag.UintVar(&seed, "seed", defaultSeed, "Demo jitter seed")
	watch := flag.Bool("watch", false, "Re-run whenever the config file changes")
	flag.Parse()
	opts.seed = uint64(seed)

	if opts.verbose {
		conditioner.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if (opts.saveSeed || *watch) && opts.configPath == "" {
		log.Fatal("-save-seed and -watch need -config")
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	rec, err := loadRecording(opts)
	if err != nil {
		log.Fatalf("Failed to load input: %v", err)
	}

	res, err := process(cfg, rec, opts)
	if err != nil {
		log.Fatalf("Conditioning failed: %v", err)
	}
	printSummary(os.Stdout, res)

	if !*watch {
		return
	}

	// Saving the seed rewrites the watched file; re-runs keep the seed fixed.
	opts.saveSeed = false

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Watching %s, press Ctrl+C to stop", opts.configPath)
	err = config.Watch(ctx, opts.configPath, func(c *config.Config) {
		res, err := process(c, rec, opts)
		if err != nil {
			log.Printf("Re-run failed: %v", err)
			return
		}
		printSummary(os.Stdout, res)
	})
	if err != nil {
		log.Fatalf("Watch failed: %v", err)
	}
}
