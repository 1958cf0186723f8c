// Package gamedata loads and indexes the three reference tables
// (monsters, maps, items) every quest is assembled from. The tables
// are read once at startup and never mutated.
package gamedata

import (
	"fmt"
	"path/filepath"
)

// Default reference table filenames inside the data directory
const (
	MonstersFile = "monsters.yaml"
	MapsFile     = "maps.yaml"
	ItemsFile    = "items.yaml"
)

// Store aggregates the loaded reference tables
type Store struct {
	Monsters *MonstersConfig
	Maps     *MapsConfig
	Items    *ItemsConfig
}

// Load reads all three reference tables from the given directory.
// A missing or malformed table is fatal.
func Load(dataDir string) (*Store, error) {
	monsters, err := LoadMonstersFromYAML(filepath.Join(dataDir, MonstersFile))
	if err != nil {
		return nil, fmt.Errorf("loading monster table: %w", err)
	}

	maps, err := LoadMapsFromYAML(filepath.Join(dataDir, MapsFile))
	if err != nil {
		return nil, fmt.Errorf("loading map table: %w", err)
	}

	items, err := LoadItemsFromYAML(filepath.Join(dataDir, ItemsFile))
	if err != nil {
		return nil, fmt.Errorf("loading item table: %w", err)
	}

	return &Store{
		Monsters: monsters,
		Maps:     maps,
		Items:    items,
	}, nil
}
