package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	conditioner "github.com/tphakala/go-touch-conditioner"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultWidth      = 800
	DefaultHeight     = 800
	DefaultMinRadius  = 1.5
	DefaultMaxRadius  = 12.0
	DefaultBackground = "#ffffff"
	DefaultColor      = "#1a1a1a"
)

// Config is the top-level touch-render configuration.
type Config struct {
	Pipeline PipelineSection `yaml:"pipeline"`

	// SeedStats continues running statistics from a previous session.
	// Absent means start from empty statistics.
	SeedStats *SeedSection `yaml:"seed,omitempty"`

	Render RenderSection `yaml:"render"`
}

// PipelineSection mirrors conditioner.Config.
type PipelineSection struct {
	MinGap            float64 `yaml:"min_gap"`
	SizeStep          float64 `yaml:"size_step"`
	PressureStep      float64 `yaml:"pressure_step"`
	MaxInterpolations int     `yaml:"max_interpolations"`
}

// SeedSection holds statistics saved at the end of a session.
type SeedSection struct {
	Count       int     `yaml:"count"`
	AverageSize float64 `yaml:"average_size"`
	MinSize     float64 `yaml:"min_size"`
	MaxSize     float64 `yaml:"max_size"`
}

// RenderSection configures the preview image.
type RenderSection struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// MinRadius and MaxRadius are the dab radii, in pixels, for normalized
	// sizes 0 and 1.
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`

	// Background and Color are hex colors ("#rrggbb" or "#rrggbbaa").
	Background string `yaml:"background"`
	Color      string `yaml:"color"`
}

// Load reads and parses the YAML config file at path.
// Missing optional fields are filled with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML config data.
func Parse(data []byte) (*Config, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Defaults returns a Config pre-populated with default values.
func Defaults() *Config {
	pc := conditioner.DefaultConfig()
	return &Config{
		Pipeline: PipelineSection{
			MinGap:            pc.MinGap,
			SizeStep:          pc.SizeStep,
			PressureStep:      pc.PressureStep,
			MaxInterpolations: pc.MaxInterpolations,
		},
		Render: RenderSection{
			Width:      DefaultWidth,
			Height:     DefaultHeight,
			MinRadius:  DefaultMinRadius,
			MaxRadius:  DefaultMaxRadius,
			Background: DefaultBackground,
			Color:      DefaultColor,
		},
	}
}

// validate checks required fields and structural constraints.
func validate(cfg *Config) error {
	if err := cfg.PipelineConfig().Validate(); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	if cfg.SeedStats != nil {
		seed, _ := cfg.Seed()
		if err := seed.Validate(); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	r := cfg.Render
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("render: width and height must be positive")
	}
	if !(r.MinRadius >= 0) || !(r.MaxRadius >= r.MinRadius) || math.IsInf(r.MaxRadius, 0) {
		return fmt.Errorf("render: need 0 <= min_radius <= max_radius")
	}
	if !validHex(r.Background) {
		return fmt.Errorf("render.background: %q is not a hex color", r.Background)
	}
	if !validHex(r.Color) {
		return fmt.Errorf("render.color: %q is not a hex color", r.Color)
	}

	return nil
}

func validHex(s string) bool {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, c := range s {
		switch {
		case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// PipelineConfig returns the conditioner configuration.
func (c *Config) PipelineConfig() *conditioner.Config {
	return &conditioner.Config{
		MinGap:            c.Pipeline.MinGap,
		SizeStep:          c.Pipeline.SizeStep,
		PressureStep:      c.Pipeline.PressureStep,
		MaxInterpolations: c.Pipeline.MaxInterpolations,
	}
}

// Seed returns the statistics seed, if the file has one.
func (c *Config) Seed() (conditioner.Stats, bool) {
	if c.SeedStats == nil {
		return conditioner.NewStats(), false
	}
	return conditioner.Stats{
		Count: c.SeedStats.Count,
		Mean:  c.SeedStats.AverageSize,
		Min:   c.SeedStats.MinSize,
		Max:   c.SeedStats.MaxSize,
	}, true
}

// NewPipeline builds a pipeline from the pipeline and seed sections.
func (c *Config) NewPipeline() (*conditioner.Pipeline, error) {
	seed, _ := c.Seed()
	return conditioner.NewSeeded(c.PipelineConfig(), seed)
}

// SaveSeed stores stats as the seed section of the config file at path,
// creating the file with defaults if it does not exist. Other sections are kept.
// Empty statistics are not saved.
func SaveSeed(path string, stats conditioner.Stats) error {
	if stats.Count == 0 {
		return fmt.Errorf("config: no statistics to save")
	}
	if err := stats.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	cfg := Defaults()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if cfg, err = Parse(data); err != nil {
			return err
		}
	case !os.IsNotExist(err):
		return fmt.Errorf("config: read file: %w", err)
	}

	cfg.SeedStats = &SeedSection{
		Count:       stats.Count,
		AverageSize: stats.Mean,
		MinSize:     stats.Min,
		MaxSize:     stats.Max,
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode yaml: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("config: write file: %w", err)
	}
	return nil
}
