package config

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olivierh59500/particle-field-go/internal/field"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, 9000.0, cfg.Field.DensityArea)
	assert.Equal(t, 5, cfg.Field.MaxSize)
	assert.Equal(t, "#ebf8ff", cfg.Field.Color)
	assert.Equal(t, "legacy", cfg.Pointer.RadiusMode)
	assert.Equal(t, "legacy", cfg.Motion.Drift)
	assert.Equal(t, 60, cfg.Window.TPS)
	assert.Equal(t, -1.0, cfg.Snapshot.PointerX)
	assert.NoError(t, cfg.Validate())
}

func TestDefaultParamsMatchField(t *testing.T) {
	prm, err := NewDefaultConfig().Params()
	require.NoError(t, err)

	want := field.DefaultParams()
	assert.Equal(t, want.DensityArea, prm.DensityArea)
	assert.Equal(t, want.MaxSize, prm.MaxSize)
	assert.Equal(t, want.LinkDivisor, prm.LinkDivisor)
	assert.Equal(t, want.AlphaFalloff, prm.AlphaFalloff)
	assert.Equal(t, want.Nudge, prm.Nudge)
	assert.Equal(t, want.MarginFactor, prm.MarginFactor)
	assert.Equal(t, want.Radius, prm.Radius)
	assert.Equal(t, want.Drift, prm.Drift)
	assert.True(t, want.Color.AlmostEqualRgb(prm.Color))
}

func TestLoadFromYAML(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("yaml")
	yaml := []byte(`
field:
  density_area: 4500
  color: "#ff0000"
pointer:
  radius_mode: area
motion:
  drift: symmetric
  wander: 0.5
seed: 99
`)
	require.NoError(t, v.ReadConfig(bytes.NewReader(yaml)))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 4500.0, cfg.Field.DensityArea)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, 5, cfg.Field.MaxSize, "unset keys keep defaults")

	prm, err := cfg.Params()
	require.NoError(t, err)
	assert.Equal(t, field.RadiusArea, prm.Radius)
	assert.Equal(t, field.DriftSymmetric, prm.Drift)
	assert.Equal(t, 0.5, prm.Wander)
	r, g, b := prm.Color.RGB255()
	assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		msg    string
	}{
		{"density", func(c *Config) { c.Field.DensityArea = 0 }, "field.density_area must be positive"},
		{"max size", func(c *Config) { c.Field.MaxSize = 0 }, "field.max_size"},
		{"link divisor", func(c *Config) { c.Field.LinkDivisor = -1 }, "field.link_divisor"},
		{"falloff", func(c *Config) { c.Field.AlphaFalloff = 0 }, "field.alpha_falloff"},
		{"color", func(c *Config) { c.Field.Color = "blue" }, "field.color"},
		{"background", func(c *Config) { c.Field.Background = "#12" }, "field.background"},
		{"radius mode", func(c *Config) { c.Pointer.RadiusMode = "square" }, "pointer.radius_mode"},
		{"drift", func(c *Config) { c.Motion.Drift = "down" }, "motion.drift"},
		{"wander scale", func(c *Config) { c.Motion.Wander = 1; c.Motion.WanderScale = 0 }, "motion.wander_scale"},
		{"window", func(c *Config) { c.Window.Width = 0 }, "window size"},
		{"tps", func(c *Config) { c.Window.TPS = 0 }, "window.tps"},
		{"cells", func(c *Config) { c.Term.CellHeight = 0 }, "term cell size"},
		{"frames", func(c *Config) { c.Snapshot.Frames = -1 }, "snapshot.frames"},
		{"output", func(c *Config) { c.Snapshot.Output = "" }, "snapshot.output"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("motion.drift", "sideways")

	_, err := Load(v)
	assert.ErrorContains(t, err, "motion.drift")
}

func TestBackgroundColor(t *testing.T) {
	cfg := NewDefaultConfig()
	col, err := cfg.BackgroundColor()
	require.NoError(t, err)
	r, g, b := col.RGB255()
	assert.Equal(t, [3]uint8{0x1a, 0x20, 0x2c}, [3]uint8{r, g, b})
}
