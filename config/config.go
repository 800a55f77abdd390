// Package config provides configuration loading and access for the optimizer.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/forage/allocation"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all configuration parameters.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Decision   DecisionConfig   `yaml:"decision"`
	Grid       GridConfig       `yaml:"grid"`
	Output     OutputConfig     `yaml:"output"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// SimulationConfig holds the economy of one simulated day.
type SimulationConfig struct {
	MaxDailyActions  int     `yaml:"max_daily_actions"`
	TreeFellingCost  int     `yaml:"tree_felling_cost"`  // Actions per felled tree
	AppleBaseUtility float64 `yaml:"apple_base_utility"`
	WoodBaseUtility  float64 `yaml:"wood_base_utility"`
	Days             int     `yaml:"days"` // Days to accumulate over
}

// DecisionConfig holds the player's daily choice.
type DecisionConfig struct {
	Apples int `yaml:"apples"`
}

// GridConfig holds grid sampling parameters.
type GridConfig struct {
	Divisions int `yaml:"divisions"` // Max steps per axis (0 = allocation.DefaultDivisions)
}

// OutputConfig holds output destinations. Empty disables the output.
type OutputConfig struct {
	Dir         string `yaml:"dir"`
	MetricsFile string `yaml:"metrics_file"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	MaxTrees  int // Trees that fit in a full day
	AppleStep int // Apple axis sampling step
	TreeStep  int // Tree axis sampling step
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
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

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.ComputeDerived()
	return cfg, nil
}

// ComputeDerived recalculates derived values. Call it again after changing
// fields by hand (e.g. CLI overrides).
func (c *Config) ComputeDerived() {
	if c.Grid.Divisions <= 0 {
		c.Grid.Divisions = allocation.DefaultDivisions
	}

	c.Derived = DerivedConfig{}
	// Invalid costs are reported by allocation.Params.Validate, not here.
	if c.Simulation.TreeFellingCost > 0 {
		p := c.Params()
		c.Derived.MaxTrees = allocation.MaxTrees(p.MaxDailyActions, p.TreeFellingCost)
		c.Derived.AppleStep, c.Derived.TreeStep = allocation.AxisSteps(p, c.Grid.Divisions)
	}
}

// Params converts the simulation section into optimizer parameters.
func (c *Config) Params() allocation.Params {
	return allocation.Params{
		MaxDailyActions:  c.Simulation.MaxDailyActions,
		TreeFellingCost:  c.Simulation.TreeFellingCost,
		AppleBaseUtility: c.Simulation.AppleBaseUtility,
		WoodBaseUtility:  c.Simulation.WoodBaseUtility,
		SimulationDays:   c.Simulation.Days,
	}
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
