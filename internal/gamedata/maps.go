package gamedata

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	"gopkg.in/yaml.v3"
)

// Map represents a huntable locale from the reference table
type Map struct {
	ID    int    `yaml:"id"`
	Name  string `yaml:"name"`
	Areas int    `yaml:"areas"` // Number of numbered areas monsters can occupy
}

// MapsConfig represents the structure of the maps.yaml file
type MapsConfig struct {
	Maps []Map `yaml:"maps"`

	byID map[int]*Map
}

// mapNames implements fuzzy.Source over the map table
type mapNames []Map

func (m mapNames) Len() int            { return len(m) }
func (m mapNames) String(i int) string { return m[i].Name }

// NewMapsConfig builds a validated table from in-memory records
func NewMapsConfig(maps []Map) (*MapsConfig, error) {
	config := &MapsConfig{Maps: maps}
	if err := config.index(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadMapsFromYAML loads map definitions from a YAML file
func LoadMapsFromYAML(filename string) (*MapsConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read maps file: %w", err)
	}

	var config MapsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse maps YAML: %w", err)
	}

	if err := config.index(); err != nil {
		return nil, fmt.Errorf("invalid maps file %s: %w", filename, err)
	}

	return &config, nil
}

// index validates the table and builds the id lookup
func (config *MapsConfig) index() error {
	if len(config.Maps) == 0 {
		return fmt.Errorf("map table is empty")
	}

	sort.Slice(config.Maps, func(i, j int) bool {
		return config.Maps[i].ID < config.Maps[j].ID
	})

	config.byID = make(map[int]*Map, len(config.Maps))
	for i := range config.Maps {
		m := &config.Maps[i]
		if m.Name == "" {
			return fmt.Errorf("map id %d has no name", m.ID)
		}
		if m.Areas < 1 {
			return fmt.Errorf("map %q has %d areas, must be >= 1", m.Name, m.Areas)
		}
		if _, exists := config.byID[m.ID]; exists {
			return fmt.Errorf("duplicate map id %d", m.ID)
		}
		config.byID[m.ID] = m
	}

	return nil
}

// GetMapByID returns a map by its ID
func (config *MapsConfig) GetMapByID(id int) (*Map, bool) {
	m, exists := config.byID[id]
	return m, exists
}

// All returns every map in the table, ordered by id
func (config *MapsConfig) All() []*Map {
	result := make([]*Map, len(config.Maps))
	for i := range config.Maps {
		result[i] = &config.Maps[i]
	}
	return result
}

// Resolve finds a map by case-insensitive name match.
// On a miss it returns an UnknownMapError carrying fuzzy near-matches
// so the caller can suggest what the user probably meant.
func (config *MapsConfig) Resolve(name string) (*Map, error) {
	for i := range config.Maps {
		if strings.EqualFold(config.Maps[i].Name, name) {
			return &config.Maps[i], nil
		}
	}

	matches := fuzzy.FindFrom(name, mapNames(config.Maps))
	suggestions := make([]string, 0, len(matches))
	for _, match := range matches {
		suggestions = append(suggestions, config.Maps[match.Index].Name)
		if len(suggestions) == 3 {
			break
		}
	}

	return nil, &UnknownMapError{Name: name, Suggestions: suggestions}
}
