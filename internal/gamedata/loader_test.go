package gamedata

import (
	"os"
	"path/filepath"
	"testing"
)

func writeYAML(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

const validMonstersYAML = `monsters:
  - id: 3
    name: Rathalos
    type: Flying Wyvern
    threat: 3
    default_area: 16
  - id: 1
    name: Great Jagras
    type: Fanged Wyvern
    threat: 1
    default_area: 2
  - id: 9
    name: Nergigante
    type: Elder Dragon
    threat: 5
    default_area: 8
`

func TestLoadMonstersFromYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), "monsters.yaml", validMonstersYAML)

	config, err := LoadMonstersFromYAML(path)
	if err != nil {
		t.Fatalf("LoadMonstersFromYAML returned error: %v", err)
	}

	if len(config.Monsters) != 3 {
		t.Fatalf("Loaded %d monsters, want 3", len(config.Monsters))
	}

	// Table must be ordered by id regardless of file order
	if config.Monsters[0].ID != 1 || config.Monsters[2].ID != 9 {
		t.Errorf("Monsters not sorted by id: got %d, %d, %d",
			config.Monsters[0].ID, config.Monsters[1].ID, config.Monsters[2].ID)
	}

	m, ok := config.GetMonsterByID(3)
	if !ok {
		t.Fatal("GetMonsterByID(3) not found")
	}
	if m.Name != "Rathalos" {
		t.Errorf("Monster 3 name = %q, want Rathalos", m.Name)
	}
	if m.Type != "Flying Wyvern" {
		t.Errorf("Monster 3 type = %q, want Flying Wyvern", m.Type)
	}

	elders := config.GetMonstersByThreat(5)
	if len(elders) != 1 || elders[0].Name != "Nergigante" {
		t.Errorf("GetMonstersByThreat(5) = %v, want [Nergigante]", elders)
	}
	if !elders[0].IsElder() {
		t.Error("Nergigante IsElder() = false, want true")
	}

	if _, ok := config.FindMonsterByName("nergigante"); !ok {
		t.Error("FindMonsterByName should match case-insensitively")
	}
}

func TestLoadMonstersRejectsBadTables(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty table", "monsters: []\n"},
		{"missing name", "monsters:\n  - id: 1\n    threat: 2\n"},
		{"threat too high", "monsters:\n  - id: 1\n    name: X\n    threat: 6\n"},
		{"threat too low", "monsters:\n  - id: 1\n    name: X\n    threat: 0\n"},
		{"duplicate id", "monsters:\n  - id: 1\n    name: X\n    threat: 2\n  - id: 1\n    name: Y\n    threat: 3\n"},
		{"malformed yaml", "monsters: [whoops\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeYAML(t, t.TempDir(), "monsters.yaml", tt.content)
			if _, err := LoadMonstersFromYAML(path); err == nil {
				t.Error("LoadMonstersFromYAML accepted bad table, want error")
			}
		})
	}
}

func TestLoadMonstersMissingFile(t *testing.T) {
	if _, err := LoadMonstersFromYAML(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadMonstersFromYAML succeeded on missing file, want error")
	}
}

const validMapsYAML = `maps:
  - id: 1
    name: Ancient Forest
    areas: 17
  - id: 5
    name: "Elder's Recess"
    areas: 16
`

func TestLoadMapsFromYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), "maps.yaml", validMapsYAML)

	config, err := LoadMapsFromYAML(path)
	if err != nil {
		t.Fatalf("LoadMapsFromYAML returned error: %v", err)
	}

	m, ok := config.GetMapByID(5)
	if !ok {
		t.Fatal("GetMapByID(5) not found")
	}
	if m.Name != "Elder's Recess" || m.Areas != 16 {
		t.Errorf("Map 5 = %q/%d areas, want Elder's Recess/16", m.Name, m.Areas)
	}

	if got := len(config.All()); got != 2 {
		t.Errorf("All() returned %d maps, want 2", got)
	}
}

func TestLoadMapsRejectsBadTables(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty table", "maps: []\n"},
		{"zero areas", "maps:\n  - id: 1\n    name: Nowhere\n    areas: 0\n"},
		{"duplicate id", "maps:\n  - id: 1\n    name: A\n    areas: 5\n  - id: 1\n    name: B\n    areas: 5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeYAML(t, t.TempDir(), "maps.yaml", tt.content)
			if _, err := LoadMapsFromYAML(path); err == nil {
				t.Error("LoadMapsFromYAML accepted bad table, want error")
			}
		})
	}
}

const validItemsYAML = `items:
  - id: 101
    name: Potion
    rarity: 1
    quantity_min: 1
    quantity_max: 3
  - id: 205
    name: Wyvern Gem
    rarity: 6
  - id: 301
    name: Elder Dragon Blood
    rarity: 7
`

func TestLoadItemsFromYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), "items.yaml", validItemsYAML)

	config, err := LoadItemsFromYAML(path)
	if err != nil {
		t.Fatalf("LoadItemsFromYAML returned error: %v", err)
	}

	item, ok := config.GetItemByID(205)
	if !ok {
		t.Fatal("GetItemByID(205) not found")
	}
	// Omitted quantity range defaults to 1-1
	if item.QuantityMin != 1 || item.QuantityMax != 1 {
		t.Errorf("Wyvern Gem quantity range = %d-%d, want 1-1", item.QuantityMin, item.QuantityMax)
	}

	if got := config.MaxRarity(); got != 7 {
		t.Errorf("MaxRarity() = %d, want 7", got)
	}

	low := config.GetItemsByMaxRarity(3)
	if len(low) != 1 || low[0].Name != "Potion" {
		t.Errorf("GetItemsByMaxRarity(3) = %v, want [Potion]", low)
	}
}

func TestLoadItemsRejectsBadTables(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty table", "items: []\n"},
		{"missing name", "items:\n  - id: 1\n    rarity: 2\n"},
		{"zero rarity", "items:\n  - id: 1\n    name: Junk\n    rarity: 0\n"},
		{"duplicate id", "items:\n  - id: 1\n    name: A\n    rarity: 1\n  - id: 1\n    name: B\n    rarity: 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeYAML(t, t.TempDir(), "items.yaml", tt.content)
			if _, err := LoadItemsFromYAML(path); err == nil {
				t.Error("LoadItemsFromYAML accepted bad table, want error")
			}
		})
	}
}
