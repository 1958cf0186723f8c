package quest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// FileExtension is appended to every generated quest filename
const FileExtension = ".quest.json"

// Save writes the quest document to outputDir as pretty-printed JSON
// and returns the path written. With an empty filename one is derived
// from the quest title; an existing file is never overwritten, a
// numeric suffix is appended instead.
func Save(quest *Quest, outputDir, filename string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	if filename == "" {
		filename = SafeFilename(quest.Info.Title) + FileExtension
	}

	path := uniquePath(outputDir, filename)

	data, err := json.MarshalIndent(quest, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode quest: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write quest file: %w", err)
	}

	return path, nil
}

// SafeFilename converts a quest title into a filesystem-safe name:
// letters and digits survive, everything else collapses to underscores
func SafeFilename(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune('_')
		}
	}

	name := b.String()
	// Collapse runs of underscores and trim the ends
	for strings.Contains(name, "__") {
		name = strings.ReplaceAll(name, "__", "_")
	}
	name = strings.Trim(name, "_")

	if name == "" {
		name = "quest"
	}
	return name
}

// uniquePath appends _2, _3, ... before the extension until the
// filename doesn't collide with an existing file
func uniquePath(dir, filename string) string {
	path := filepath.Join(dir, filename)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}

	base := strings.TrimSuffix(filename, FileExtension)
	for n := 2; ; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", base, n, FileExtension))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}
