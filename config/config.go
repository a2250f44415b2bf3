// Package config loads sweep configurations from YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"sputtering/element"
	"sputtering/sweep"
)

// Config holds one sputtering run.
type Config struct {
	// Species given by symbol are resolved from the element table and their
	// numeric fields are replaced by the tabulated values.
	Projectile sweep.Species `yaml:"projectile"`
	Target     sweep.Target  `yaml:"target"`

	// Incident energies in eV.
	Energy sweep.Range  `yaml:"energy"`
	Regime sweep.Regime `yaml:"regime"` // high, low, auto

	// Isotope sampling
	Samples int   `yaml:"samples"`
	Seed    int64 `yaml:"seed"`

	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig names the files written after a sweep. Empty paths are skipped.
type OutputConfig struct {
	JSON  string `yaml:"json"`
	Chart string `yaml:"chart"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the reference run: Z1=2, M1=12 on Z2=45, M2=99 with
// Ub=6.82 eV from 1 to 11 keV in 100 eV steps.
func DefaultConfig() *Config {
	return &Config{
		Projectile: sweep.Species{Z: 2, M: 12},
		Target: sweep.Target{
			Species: sweep.Species{Z: 45, M: 99},
			Ub:      6.82,
		},
		Energy: sweep.Range{From: 1000, To: 11000, Step: 100},
		Regime: sweep.RegimeHigh,
		Seed:   1,
		Output: OutputConfig{
			JSON:  "yields.json",
			Chart: "yields.png",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads a YAML file over the defaults. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Resolve fills species given by symbol from the element table.
func (c *Config) Resolve() error {
	if c.Projectile.Symbol != "" {
		el, err := element.Lookup(c.Projectile.Symbol)
		if err != nil {
			return fmt.Errorf("projectile: %w", err)
		}
		c.Projectile = sweep.Species{Symbol: el.Symbol, Z: float64(el.Number), M: el.Mass}
	}
	if c.Target.Symbol != "" {
		el, err := element.Lookup(c.Target.Symbol)
		if err != nil {
			return fmt.Errorf("target: %w", err)
		}
		if !el.IsTarget() {
			return fmt.Errorf("target: %s has no tabulated surface binding energy", el.Symbol)
		}
		c.Target = sweep.Target{
			Species: sweep.Species{Symbol: el.Symbol, Z: float64(el.Number), M: el.Mass},
			Ub:      el.SurfaceBinding,
		}
	}
	return nil
}

// Params returns the sweep described by c. Call Resolve first.
func (c *Config) Params() sweep.Params {
	return sweep.Params{
		Projectile: c.Projectile,
		Target:     c.Target,
		Range:      c.Energy,
		Regime:     c.Regime,
		Samples:    c.Samples,
		Seed:       c.Seed,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	return c.Params().Validate()
}

// Level returns the configured log level.
func (c *Config) Level() (zapcore.Level, error) {
	if c.Logging.Level == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return lvl, fmt.Errorf("logging: %w", err)
	}
	return lvl, nil
}
