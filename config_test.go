package conditioner

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultMinGap, cfg.MinGap)
	assert.Equal(t, DefaultSizeStep, cfg.SizeStep)
	assert.Equal(t, DefaultPressureStep, cfg.PressureStep)
	assert.Equal(t, 0, cfg.MaxInterpolations)
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero min gap", func(c *Config) { c.MinGap = 0 }},
		{"negative min gap", func(c *Config) { c.MinGap = -0.1 }},
		{"NaN min gap", func(c *Config) { c.MinGap = math.NaN() }},
		{"infinite min gap", func(c *Config) { c.MinGap = math.Inf(1) }},
		{"zero size step", func(c *Config) { c.SizeStep = 0 }},
		{"NaN pressure step", func(c *Config) { c.PressureStep = math.NaN() }},
		{"negative max interpolations", func(c *Config) { c.MaxInterpolations = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestRaw_Validate(t *testing.T) {
	assert.NoError(t, Raw(0.1, 0.2, -3, 4, 0, 0).Validate(), "zero size and pressure are valid")
	assert.ErrorIs(t, Raw(0, 0, 0, math.Inf(-1), 1, 1).Validate(), ErrInvalidSample)
}
