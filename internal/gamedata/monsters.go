package gamedata

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Threat tier bounds. Tier 5 is elder dragon territory.
const (
	MinThreat     = 1
	MaxThreat     = 5
	ElderThreat   = 5
	MinDifficulty = 1
	MaxDifficulty = 9
	MinMonsters   = 1
	MaxMonsters   = 3
	MinRewards    = 1
	MaxRewards    = 10
)

// Monster represents a single huntable monster from the reference table
type Monster struct {
	ID          int    `yaml:"id"`
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`         // Species label, e.g. "Flying Wyvern"
	Threat      int    `yaml:"threat"`       // Threat tier (1=small fry, 5=elder dragon)
	DefaultArea int    `yaml:"default_area"` // Preferred starting area on its home map
}

// IsElder returns true if the monster is elder-dragon-tier content
func (m *Monster) IsElder() bool {
	return m.Threat >= ElderThreat
}

// MonstersConfig represents the structure of the monsters.yaml file
type MonstersConfig struct {
	Monsters []Monster `yaml:"monsters"`

	byID map[int]*Monster
}

// NewMonstersConfig builds a validated table from in-memory records
func NewMonstersConfig(monsters []Monster) (*MonstersConfig, error) {
	config := &MonstersConfig{Monsters: monsters}
	if err := config.index(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadMonstersFromYAML loads monster definitions from a YAML file
func LoadMonstersFromYAML(filename string) (*MonstersConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read monsters file: %w", err)
	}

	var config MonstersConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse monsters YAML: %w", err)
	}

	if err := config.index(); err != nil {
		return nil, fmt.Errorf("invalid monsters file %s: %w", filename, err)
	}

	return &config, nil
}

// index validates the table and builds the id lookup
func (config *MonstersConfig) index() error {
	if len(config.Monsters) == 0 {
		return fmt.Errorf("monster table is empty")
	}

	// Keep selection order stable regardless of table order
	sort.Slice(config.Monsters, func(i, j int) bool {
		return config.Monsters[i].ID < config.Monsters[j].ID
	})

	config.byID = make(map[int]*Monster, len(config.Monsters))
	for i := range config.Monsters {
		m := &config.Monsters[i]
		if m.Name == "" {
			return fmt.Errorf("monster id %d has no name", m.ID)
		}
		if m.Threat < MinThreat || m.Threat > MaxThreat {
			return fmt.Errorf("monster %q has threat %d, must be %d-%d", m.Name, m.Threat, MinThreat, MaxThreat)
		}
		if _, exists := config.byID[m.ID]; exists {
			return fmt.Errorf("duplicate monster id %d", m.ID)
		}
		config.byID[m.ID] = m
	}

	return nil
}

// GetMonsterByID returns a monster by its ID
func (config *MonstersConfig) GetMonsterByID(id int) (*Monster, bool) {
	m, exists := config.byID[id]
	return m, exists
}

// GetMonstersByThreat returns all monsters of the given threat tier, ordered by id
func (config *MonstersConfig) GetMonstersByThreat(threat int) []*Monster {
	var result []*Monster
	for i := range config.Monsters {
		if config.Monsters[i].Threat == threat {
			result = append(result, &config.Monsters[i])
		}
	}
	return result
}

// All returns every monster in the table, ordered by id
func (config *MonstersConfig) All() []*Monster {
	result := make([]*Monster, len(config.Monsters))
	for i := range config.Monsters {
		result[i] = &config.Monsters[i]
	}
	return result
}

// FindMonsterByName returns a monster by case-insensitive exact name match
func (config *MonstersConfig) FindMonsterByName(name string) (*Monster, bool) {
	for i := range config.Monsters {
		if strings.EqualFold(config.Monsters[i].Name, name) {
			return &config.Monsters[i], true
		}
	}
	return nil, false
}
