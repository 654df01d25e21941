package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"

	"github.com/olivierh59500/particle-field-go/internal/field"
)

// Config holds every tunable of the application.
type Config struct {
	Logger   LoggerConfig   `mapstructure:"logger" yaml:"logger"`
	Field    FieldConfig    `mapstructure:"field" yaml:"field"`
	Pointer  PointerConfig  `mapstructure:"pointer" yaml:"pointer"`
	Motion   MotionConfig   `mapstructure:"motion" yaml:"motion"`
	Window   WindowConfig   `mapstructure:"window" yaml:"window"`
	Term     TermConfig     `mapstructure:"term" yaml:"term"`
	Snapshot SnapshotConfig `mapstructure:"snapshot" yaml:"snapshot"`
	Seed     int64          `mapstructure:"seed" yaml:"seed"`
}

type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
}

type FieldConfig struct {
	DensityArea  float64 `mapstructure:"density_area" yaml:"density_area"`
	MaxSize      int     `mapstructure:"max_size" yaml:"max_size"`
	LinkDivisor  float64 `mapstructure:"link_divisor" yaml:"link_divisor"`
	AlphaFalloff float64 `mapstructure:"alpha_falloff" yaml:"alpha_falloff"`
	LineWidth    float64 `mapstructure:"line_width" yaml:"line_width"`
	Color        string  `mapstructure:"color" yaml:"color"`
	Background   string  `mapstructure:"background" yaml:"background"`
	Links        bool    `mapstructure:"links" yaml:"links"`
}

type PointerConfig struct {
	Nudge        float64 `mapstructure:"nudge" yaml:"nudge"`
	MarginFactor float64 `mapstructure:"margin_factor" yaml:"margin_factor"`
	RadiusMode   string  `mapstructure:"radius_mode" yaml:"radius_mode"`
}

type MotionConfig struct {
	Drift       string  `mapstructure:"drift" yaml:"drift"`
	Wander      float64 `mapstructure:"wander" yaml:"wander"`
	WanderScale float64 `mapstructure:"wander_scale" yaml:"wander_scale"`
}

type WindowConfig struct {
	Width     int    `mapstructure:"width" yaml:"width"`
	Height    int    `mapstructure:"height" yaml:"height"`
	Title     string `mapstructure:"title" yaml:"title"`
	TPS       int    `mapstructure:"tps" yaml:"tps"`
	Resizable bool   `mapstructure:"resizable" yaml:"resizable"`
}

type TermConfig struct {
	CellWidth  int `mapstructure:"cell_width" yaml:"cell_width"`
	CellHeight int `mapstructure:"cell_height" yaml:"cell_height"`
	FPS        int `mapstructure:"fps" yaml:"fps"`
}

type SnapshotConfig struct {
	Width  int    `mapstructure:"width" yaml:"width"`
	Height int    `mapstructure:"height" yaml:"height"`
	Frames int    `mapstructure:"frames" yaml:"frames"`
	Output string `mapstructure:"output" yaml:"output"`
	// PointerX/PointerY place a fixed pointer for the whole run; negative
	// values leave the pointer absent.
	PointerX float64 `mapstructure:"pointer_x" yaml:"pointer_x"`
	PointerY float64 `mapstructure:"pointer_y" yaml:"pointer_y"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	// Logger
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "particle-field")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", true)
	v.SetDefault("logger.add_source", false)

	// Field
	v.SetDefault("field.density_area", 9000.0)
	v.SetDefault("field.max_size", 5)
	v.SetDefault("field.link_divisor", 7.0)
	v.SetDefault("field.alpha_falloff", 20000.0)
	v.SetDefault("field.line_width", 1.0)
	v.SetDefault("field.color", "#ebf8ff")
	v.SetDefault("field.background", "#1a202c")
	v.SetDefault("field.links", true)

	// Pointer
	v.SetDefault("pointer.nudge", 3.0)
	v.SetDefault("pointer.margin_factor", 10.0)
	v.SetDefault("pointer.radius_mode", string(field.RadiusLegacy))

	// Motion
	v.SetDefault("motion.drift", string(field.DriftLegacy))
	v.SetDefault("motion.wander", 0.0)
	v.SetDefault("motion.wander_scale", 0.01)

	// Window
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "Particle Field")
	v.SetDefault("window.tps", 60)
	v.SetDefault("window.resizable", true)

	// Terminal
	v.SetDefault("term.cell_width", 8)
	v.SetDefault("term.cell_height", 16)
	v.SetDefault("term.fps", 30)

	// Snapshot
	v.SetDefault("snapshot.width", 1280)
	v.SetDefault("snapshot.height", 720)
	v.SetDefault("snapshot.frames", 120)
	v.SetDefault("snapshot.output", "field.png")
	v.SetDefault("snapshot.pointer_x", -1.0)
	v.SetDefault("snapshot.pointer_y", -1.0)

	v.SetDefault("seed", 0)
}

// NewDefaultConfig returns the configuration produced by the defaults alone.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	// Defaults always decode.
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// Load decodes v, which must already carry defaults, and validates the result.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Field.DensityArea <= 0 {
		return fmt.Errorf("field.density_area must be positive")
	}
	if c.Field.MaxSize < 1 {
		return fmt.Errorf("field.max_size must be at least 1")
	}
	if c.Field.LinkDivisor <= 0 {
		return fmt.Errorf("field.link_divisor must be positive")
	}
	if c.Field.AlphaFalloff <= 0 {
		return fmt.Errorf("field.alpha_falloff must be positive")
	}
	if c.Field.LineWidth <= 0 {
		return fmt.Errorf("field.line_width must be positive")
	}
	if _, err := colorful.Hex(c.Field.Color); err != nil {
		return fmt.Errorf("field.color %q is not a hex color: %w", c.Field.Color, err)
	}
	if _, err := colorful.Hex(c.Field.Background); err != nil {
		return fmt.Errorf("field.background %q is not a hex color: %w", c.Field.Background, err)
	}
	if c.Pointer.MarginFactor < 0 {
		return fmt.Errorf("pointer.margin_factor must not be negative")
	}
	switch field.RadiusMode(c.Pointer.RadiusMode) {
	case field.RadiusLegacy, field.RadiusArea:
	default:
		return fmt.Errorf("pointer.radius_mode must be %q or %q, got %q", field.RadiusLegacy, field.RadiusArea, c.Pointer.RadiusMode)
	}
	switch field.Drift(c.Motion.Drift) {
	case field.DriftLegacy, field.DriftSymmetric:
	default:
		return fmt.Errorf("motion.drift must be %q or %q, got %q", field.DriftLegacy, field.DriftSymmetric, c.Motion.Drift)
	}
	if c.Motion.Wander < 0 {
		return fmt.Errorf("motion.wander must not be negative")
	}
	if c.Motion.Wander > 0 && c.Motion.WanderScale <= 0 {
		return fmt.Errorf("motion.wander_scale must be positive when wander is enabled")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window.tps must be positive")
	}
	if c.Term.CellWidth <= 0 || c.Term.CellHeight <= 0 {
		return fmt.Errorf("term cell size must be positive, got %dx%d", c.Term.CellWidth, c.Term.CellHeight)
	}
	if c.Term.FPS <= 0 {
		return fmt.Errorf("term.fps must be positive")
	}
	if c.Snapshot.Width <= 0 || c.Snapshot.Height <= 0 {
		return fmt.Errorf("snapshot size must be positive, got %dx%d", c.Snapshot.Width, c.Snapshot.Height)
	}
	if c.Snapshot.Frames < 0 {
		return fmt.Errorf("snapshot.frames must not be negative")
	}
	if c.Snapshot.Output == "" {
		return fmt.Errorf("snapshot.output must be set")
	}
	return nil
}

// Params converts the field related sections into field.Params.
func (c *Config) Params() (field.Params, error) {
	col, err := colorful.Hex(c.Field.Color)
	if err != nil {
		return field.Params{}, fmt.Errorf("parse field.color: %w", err)
	}
	return field.Params{
		DensityArea:  c.Field.DensityArea,
		MaxSize:      c.Field.MaxSize,
		LinkDivisor:  c.Field.LinkDivisor,
		AlphaFalloff: c.Field.AlphaFalloff,
		LineWidth:    c.Field.LineWidth,
		Nudge:        c.Pointer.Nudge,
		MarginFactor: c.Pointer.MarginFactor,
		Radius:       field.RadiusMode(c.Pointer.RadiusMode),
		Drift:        field.Drift(c.Motion.Drift),
		Wander:       c.Motion.Wander,
		WanderScale:  c.Motion.WanderScale,
		Color:        col,
	}, nil
}

// BackgroundColor parses field.background.
func (c *Config) BackgroundColor() (colorful.Color, error) {
	col, err := colorful.Hex(c.Field.Background)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("parse field.background: %w", err)
	}
	return col, nil
}
