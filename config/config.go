// Package config provides configuration loading and access for the harness.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all harness configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Spin      SpinConfig      `yaml:"spin"`
	Reference ReferenceConfig `yaml:"reference"`
	Camera    CameraConfig    `yaml:"camera"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Headless  HeadlessConfig  `yaml:"headless"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// SpawnConfig holds batch spawning parameters. The placement constants shape
// the spiral; only the monotonic spread (later batches farther out and
// higher) is relied on, the exact values are tuning.
type SpawnConfig struct {
	BatchSize   int `yaml:"batch_size"`
	MaxEntities int `yaml:"max_entities"` // 0 = unlimited

	AngleStep      float64 `yaml:"angle_step"`       // radians per entity index
	BaseRadius     float64 `yaml:"base_radius"`      // innermost ring radius
	RadiusGrowth   float64 `yaml:"radius_growth"`    // radius added per batch
	RadiusFineStep float64 `yaml:"radius_fine_step"` // radius added per entity index
	HeightPeriod   int     `yaml:"height_period"`    // entity indices per height cycle
	HeightScale    float64 `yaml:"height_scale"`     // height per index within a cycle
	HeightGrowth   float64 `yaml:"height_growth"`    // height added per batch
	HeightOffset   float64 `yaml:"height_offset"`    // shifts the whole structure down

	SpeedDecay float64 `yaml:"speed_decay"` // rotation slowdown per batch
	MinSpeed   float64 `yaml:"min_speed"`
	MaxSpeed   float64 `yaml:"max_speed"`

	Scale float64 `yaml:"scale"` // edge length of spawned cubes
}

// SpinConfig holds the per-axis rotation weights applied by the updater.
type SpinConfig struct {
	WeightX float64 `yaml:"weight_x"`
	WeightY float64 `yaml:"weight_y"`
	WeightZ float64 `yaml:"weight_z"`
}

// ReferenceConfig holds parameters for the single seed entity.
type ReferenceConfig struct {
	Scale        float64 `yaml:"scale"`
	BobAmplitude float64 `yaml:"bob_amplitude"`
	BobFrequency float64 `yaml:"bob_frequency"`
}

// CameraConfig holds the orbit camera path parameters.
type CameraConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
	Height float64 `yaml:"height"`
	Bob    float64 `yaml:"bob"`
}

// TelemetryConfig holds telemetry cadences and capacities, in seconds.
type TelemetryConfig struct {
	WindowSec       float64 `yaml:"window_sec"`
	DisplayInterval float64 `yaml:"display_interval"`
	ReportInterval  float64 `yaml:"report_interval"`
	HistorySize     int     `yaml:"history_size"`
	LogInterval     float64 `yaml:"log_interval"` // per-frame FPS log cadence (0 = off)
	PerfWindow      int     `yaml:"perf_window"`  // frames per perf averaging window
}

// HeadlessConfig holds parameters for windowless runs.
type HeadlessConfig struct {
	DT float64 `yaml:"dt"` // fixed frame delta in seconds
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32        float32 // Headless.DT as float32
	WeightX32   float32
	WeightY32   float32
	WeightZ32   float32
	SpawnScale  float32 // Spawn.Scale as float32
	RefScale    float32 // Reference.Scale as float32
	MinSpeed32  float32
	MaxSpeed32  float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults
// and validating the result. If path is empty, only embedded defaults are
// used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg.computeDerived()

	return cfg, nil
}

// Validate rejects malformed constants before the frame loop starts.
func (c *Config) Validate() error {
	if c.Screen.Width < 1 || c.Screen.Height < 1 {
		return fmt.Errorf("screen dimensions must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.TargetFPS < 1 {
		return fmt.Errorf("screen.target_fps must be >= 1, got %d", c.Screen.TargetFPS)
	}
	if c.Spawn.BatchSize < 1 {
		return fmt.Errorf("spawn.batch_size must be >= 1, got %d", c.Spawn.BatchSize)
	}
	if c.Spawn.MaxEntities < 0 {
		return fmt.Errorf("spawn.max_entities must be >= 0, got %d", c.Spawn.MaxEntities)
	}
	if c.Spawn.HeightPeriod < 1 {
		return fmt.Errorf("spawn.height_period must be >= 1, got %d", c.Spawn.HeightPeriod)
	}
	if c.Spawn.MinSpeed < 0 {
		return fmt.Errorf("spawn.min_speed must be >= 0, got %f", c.Spawn.MinSpeed)
	}
	if c.Spawn.MinSpeed > c.Spawn.MaxSpeed {
		return fmt.Errorf("spawn.min_speed %f exceeds spawn.max_speed %f", c.Spawn.MinSpeed, c.Spawn.MaxSpeed)
	}
	if c.Spawn.Scale <= 0 {
		return fmt.Errorf("spawn.scale must be positive, got %f", c.Spawn.Scale)
	}
	if c.Telemetry.WindowSec <= 0 {
		return fmt.Errorf("telemetry.window_sec must be positive, got %f", c.Telemetry.WindowSec)
	}
	if c.Telemetry.DisplayInterval <= 0 {
		return fmt.Errorf("telemetry.display_interval must be positive, got %f", c.Telemetry.DisplayInterval)
	}
	if c.Telemetry.ReportInterval <= 0 {
		return fmt.Errorf("telemetry.report_interval must be positive, got %f", c.Telemetry.ReportInterval)
	}
	if c.Telemetry.HistorySize < 1 {
		return fmt.Errorf("telemetry.history_size must be >= 1, got %d", c.Telemetry.HistorySize)
	}
	if c.Headless.DT <= 0 {
		return fmt.Errorf("headless.dt must be positive, got %f", c.Headless.DT)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT32 = float32(c.Headless.DT)
	c.Derived.WeightX32 = float32(c.Spin.WeightX)
	c.Derived.WeightY32 = float32(c.Spin.WeightY)
	c.Derived.WeightZ32 = float32(c.Spin.WeightZ)
	c.Derived.SpawnScale = float32(c.Spawn.Scale)
	c.Derived.RefScale = float32(c.Reference.Scale)
	c.Derived.MinSpeed32 = float32(c.Spawn.MinSpeed)
	c.Derived.MaxSpeed32 = float32(c.Spawn.MaxSpeed)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
