package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Generator.BaseTimeLimit != 50 {
		t.Errorf("BaseTimeLimit = %d, want 50", config.Generator.BaseTimeLimit)
	}
	if config.Generator.ExtraMonsterMinutes != 10 {
		t.Errorf("ExtraMonsterMinutes = %d, want 10", config.Generator.ExtraMonsterMinutes)
	}
	if config.Generator.MaxRarity != 7 {
		t.Errorf("MaxRarity = %d, want 7", config.Generator.MaxRarity)
	}
	if config.Generator.MaxDropProbability != 0.85 {
		t.Errorf("MaxDropProbability = %g, want 0.85", config.Generator.MaxDropProbability)
	}
	if len(config.Generator.FailureConditions) != 2 {
		t.Errorf("FailureConditions = %v, want [time_up cart_3_times]", config.Generator.FailureConditions)
	}
	if config.Paths.DataDir != "data" {
		t.Errorf("DataDir = %q, want %q", config.Paths.DataDir, "data")
	}
	if config.Paths.OutputDir != "output" {
		t.Errorf("OutputDir = %q, want %q", config.Paths.OutputDir, "output")
	}

	if err := config.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig("nonexistent.yaml")
	if err != nil {
		t.Fatalf("LoadConfig returned error for missing file: %v", err)
	}
	if config.Generator.BaseTimeLimit != 50 {
		t.Errorf("BaseTimeLimit = %d, want default 50", config.Generator.BaseTimeLimit)
	}
}

func TestLoadConfigFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlContent := `generator:
  base_time_limit: 35
  extra_monster_minutes: 5
  max_rarity: 7
  max_drop_probability: 0.9
  min_drop_probability: 0.1
  failure_conditions:
    - time_up
paths:
  data_dir: gamedata
  output_dir: quests
`
	if err := os.WriteFile(path, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if config.Generator.BaseTimeLimit != 35 {
		t.Errorf("BaseTimeLimit = %d, want 35", config.Generator.BaseTimeLimit)
	}
	if config.Generator.ExtraMonsterMinutes != 5 {
		t.Errorf("ExtraMonsterMinutes = %d, want 5", config.Generator.ExtraMonsterMinutes)
	}
	if config.Generator.MaxDropProbability != 0.9 {
		t.Errorf("MaxDropProbability = %g, want 0.9", config.Generator.MaxDropProbability)
	}
	if len(config.Generator.FailureConditions) != 1 || config.Generator.FailureConditions[0] != "time_up" {
		t.Errorf("FailureConditions = %v, want [time_up]", config.Generator.FailureConditions)
	}
	if config.Paths.DataDir != "gamedata" {
		t.Errorf("DataDir = %q, want %q", config.Paths.DataDir, "gamedata")
	}
	if config.Paths.OutputDir != "quests" {
		t.Errorf("OutputDir = %q, want %q", config.Paths.OutputDir, "quests")
	}
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("generator: [not a mapping"), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}

	_, err := LoadConfig(path)
	if err == nil {
		t.Error("LoadConfig succeeded on malformed YAML, want error")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero time limit", func(c *Config) { c.Generator.BaseTimeLimit = 0 }},
		{"negative extra minutes", func(c *Config) { c.Generator.ExtraMonsterMinutes = -1 }},
		{"zero max rarity", func(c *Config) { c.Generator.MaxRarity = 0 }},
		{"zero min probability", func(c *Config) { c.Generator.MinDropProbability = 0 }},
		{"probability above one", func(c *Config) { c.Generator.MaxDropProbability = 1.5 }},
		{"max below min", func(c *Config) { c.Generator.MaxDropProbability = 0.01 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)
			if err := config.Validate(); err == nil {
				t.Error("Validate accepted bad config, want error")
			}
		})
	}
}
