package gamedata

import (
	"fmt"
	"os"
	"sort"

	"github.com/lawnchairsociety/questsmith/internal/logger"
	"gopkg.in/yaml.v3"
)

// Item represents a reward item from the reference table
type Item struct {
	ID          int    `yaml:"id"`
	Name        string `yaml:"name"`
	Rarity      int    `yaml:"rarity"`       // Rarity tier, 1 (common) and up
	QuantityMin int    `yaml:"quantity_min"` // Base reward quantity range
	QuantityMax int    `yaml:"quantity_max"`
}

// ItemsConfig represents the structure of the items.yaml file
type ItemsConfig struct {
	Items []Item `yaml:"items"`

	byID map[int]*Item
}

// NewItemsConfig builds a validated table from in-memory records
func NewItemsConfig(items []Item) (*ItemsConfig, error) {
	config := &ItemsConfig{Items: items}
	if err := config.index(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadItemsFromYAML loads item definitions from a YAML file
func LoadItemsFromYAML(filename string) (*ItemsConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read items file: %w", err)
	}

	var config ItemsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse items YAML: %w", err)
	}

	if err := config.index(); err != nil {
		return nil, fmt.Errorf("invalid items file %s: %w", filename, err)
	}

	return &config, nil
}

// index validates the table and builds the id lookup
func (config *ItemsConfig) index() error {
	if len(config.Items) == 0 {
		return fmt.Errorf("item table is empty")
	}

	sort.Slice(config.Items, func(i, j int) bool {
		return config.Items[i].ID < config.Items[j].ID
	})

	config.byID = make(map[int]*Item, len(config.Items))
	for i := range config.Items {
		item := &config.Items[i]
		if item.Name == "" {
			return fmt.Errorf("item id %d has no name", item.ID)
		}
		if item.Rarity < 1 {
			return fmt.Errorf("item %q has rarity %d, must be >= 1", item.Name, item.Rarity)
		}
		if item.QuantityMin < 1 {
			item.QuantityMin = 1
		}
		if item.QuantityMax < item.QuantityMin {
			if item.QuantityMax != 0 {
				logger.Warning("Item auto-correction applied",
					"item_name", item.Name,
					"item_id", item.ID,
					"issue", "quantity_max below quantity_min",
					"action", fmt.Sprintf("set quantity_max=%d", item.QuantityMin))
			}
			item.QuantityMax = item.QuantityMin
		}
		if _, exists := config.byID[item.ID]; exists {
			return fmt.Errorf("duplicate item id %d", item.ID)
		}
		config.byID[item.ID] = item
	}

	return nil
}

// GetItemByID returns an item by its ID
func (config *ItemsConfig) GetItemByID(id int) (*Item, bool) {
	item, exists := config.byID[id]
	return item, exists
}

// GetItemsByMaxRarity returns all items at or below the given rarity tier, ordered by id
func (config *ItemsConfig) GetItemsByMaxRarity(maxRarity int) []*Item {
	var result []*Item
	for i := range config.Items {
		if config.Items[i].Rarity <= maxRarity {
			result = append(result, &config.Items[i])
		}
	}
	return result
}

// MaxRarity returns the highest rarity tier present in the table
func (config *ItemsConfig) MaxRarity() int {
	max := 0
	for i := range config.Items {
		if config.Items[i].Rarity > max {
			max = config.Items[i].Rarity
		}
	}
	return max
}
