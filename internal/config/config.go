package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GeneratorConfig holds tuning knobs for quest generation.
type GeneratorConfig struct {
	// BaseTimeLimit is the time limit in minutes for a single-monster hunt.
	BaseTimeLimit int `yaml:"base_time_limit"`

	// ExtraMonsterMinutes is added to the time limit for each monster past the first.
	ExtraMonsterMinutes int `yaml:"extra_monster_minutes"`

	// MaxRarity is the highest item rarity tier that exists in the item table.
	MaxRarity int `yaml:"max_rarity"`

	// MaxDropProbability caps per-item drop probability.
	MaxDropProbability float64 `yaml:"max_drop_probability"`

	// MinDropProbability floors per-item drop probability so no reward is unobtainable.
	MinDropProbability float64 `yaml:"min_drop_probability"`

	// FailureConditions is written into every quest's conditions block.
	FailureConditions []string `yaml:"failure_conditions"`
}

// PathsConfig holds default directories. Command-line flags override these.
type PathsConfig struct {
	// DataDir is the directory containing the reference data tables.
	DataDir string `yaml:"data_dir"`

	// OutputDir is where generated quest files are written.
	OutputDir string `yaml:"output_dir"`
}

// Config holds generator-wide configuration settings.
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Paths     PathsConfig     `yaml:"paths"`
}

// DefaultConfig returns a Config with the stock generation parameters.
func DefaultConfig() *Config {
	return &Config{
		Generator: GeneratorConfig{
			BaseTimeLimit:       50, // Standard hunt timer
			ExtraMonsterMinutes: 10,
			MaxRarity:           7,
			MaxDropProbability:  0.85,
			MinDropProbability:  0.05,
			FailureConditions:   []string{"time_up", "cart_3_times"},
		},
		Paths: PathsConfig{
			DataDir:   "data",
			OutputDir: "output",
		},
	}
}

// LoadConfig loads generator configuration from a YAML file.
// If the file doesn't exist, returns the default config.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil // Use defaults if file doesn't exist
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return config, config.Validate()
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	g := c.Generator
	if g.BaseTimeLimit < 1 {
		return fmt.Errorf("base_time_limit must be >= 1, got %d", g.BaseTimeLimit)
	}
	if g.ExtraMonsterMinutes < 0 {
		return fmt.Errorf("extra_monster_minutes must be >= 0, got %d", g.ExtraMonsterMinutes)
	}
	if g.MaxRarity < 1 {
		return fmt.Errorf("max_rarity must be >= 1, got %d", g.MaxRarity)
	}
	if g.MinDropProbability <= 0 || g.MinDropProbability > 1 {
		return fmt.Errorf("min_drop_probability must be in (0,1], got %g", g.MinDropProbability)
	}
	if g.MaxDropProbability < g.MinDropProbability || g.MaxDropProbability > 1 {
		return fmt.Errorf("max_drop_probability must be in [min_drop_probability,1], got %g", g.MaxDropProbability)
	}
	return nil
}
