package gamedata

import (
	"errors"
	"strings"
	"testing"
)

// writeTestTables writes a minimal valid set of reference tables and returns the dir
func writeTestTables(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeYAML(t, dir, MonstersFile, validMonstersYAML)
	writeYAML(t, dir, MapsFile, validMapsYAML)
	writeYAML(t, dir, ItemsFile, validItemsYAML)
	return dir
}

func TestLoadStore(t *testing.T) {
	store, err := Load(writeTestTables(t))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if len(store.Monsters.All()) != 3 {
		t.Errorf("Loaded %d monsters, want 3", len(store.Monsters.All()))
	}
	if len(store.Maps.All()) != 2 {
		t.Errorf("Loaded %d maps, want 2", len(store.Maps.All()))
	}
	if store.Items.MaxRarity() != 7 {
		t.Errorf("Item MaxRarity = %d, want 7", store.Items.MaxRarity())
	}
}

func TestLoadStoreMissingTable(t *testing.T) {
	dir := t.TempDir()
	writeYAML(t, dir, MonstersFile, validMonstersYAML)
	writeYAML(t, dir, MapsFile, validMapsYAML)
	// items.yaml deliberately absent

	if _, err := Load(dir); err == nil {
		t.Error("Load succeeded with missing item table, want error")
	}
}

func TestResolveMap(t *testing.T) {
	store, err := Load(writeTestTables(t))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	// Case-insensitive exact match
	m, err := store.Maps.Resolve("elder's recess")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if m.ID != 5 {
		t.Errorf("Resolved map id = %d, want 5", m.ID)
	}

	// Unknown name fails with typed error and no fallback
	_, err = store.Maps.Resolve("Atlantis")
	if err == nil {
		t.Fatal("Resolve succeeded for unknown map, want error")
	}
	var unknownMap *UnknownMapError
	if !errors.As(err, &unknownMap) {
		t.Fatalf("Resolve error type = %T, want *UnknownMapError", err)
	}
	if unknownMap.Name != "Atlantis" {
		t.Errorf("UnknownMapError.Name = %q, want Atlantis", unknownMap.Name)
	}
}

func TestResolveMapSuggestions(t *testing.T) {
	store, err := Load(writeTestTables(t))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	// A near-miss should come back with a usable suggestion
	_, err = store.Maps.Resolve("Ancient Forst")
	var unknownMap *UnknownMapError
	if !errors.As(err, &unknownMap) {
		t.Fatalf("Resolve error type = %T, want *UnknownMapError", err)
	}
	if len(unknownMap.Suggestions) == 0 {
		t.Fatal("Expected fuzzy suggestions for near-miss map name")
	}
	if unknownMap.Suggestions[0] != "Ancient Forest" {
		t.Errorf("First suggestion = %q, want Ancient Forest", unknownMap.Suggestions[0])
	}
	if !strings.Contains(err.Error(), "did you mean") {
		t.Errorf("Error message %q should mention suggestions", err.Error())
	}
}
