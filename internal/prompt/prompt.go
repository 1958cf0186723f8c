// Package prompt implements the interactive quest-building session.
// It reads from an injected reader and writes to an injected writer so
// the whole flow is testable without a terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lawnchairsociety/questsmith/internal/gamedata"
	"github.com/lawnchairsociety/questsmith/internal/quest"
)

// Session drives one interactive quest generation
type Session struct {
	in        *bufio.Scanner
	out       io.Writer
	generator *quest.Generator
	outputDir string
}

// NewSession creates an interactive session over the given streams
func NewSession(in io.Reader, out io.Writer, generator *quest.Generator, outputDir string) *Session {
	return &Session{
		in:        bufio.NewScanner(in),
		out:       out,
		generator: generator,
		outputDir: outputDir,
	}
}

// Run walks the user through building one quest. It returns the path
// of the saved file, or "" if the user declined to save.
func (s *Session) Run() (string, error) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "=== Monster Hunter World Quest Generator ===")
	fmt.Fprintln(s.out)

	params := quest.Params{
		Title:       s.promptLine("Quest Title (press Enter for auto-generated): "),
		Description: s.promptLine("Quest Description (press Enter for auto-generated): "),
	}

	params.MonsterCount = s.promptInt("Number of monsters (1-3, default 1): ", 1, gamedata.MinMonsters, gamedata.MaxMonsters)
	params.Difficulty = s.promptInt("Difficulty level (1-9, press Enter for auto): ", 0, gamedata.MinDifficulty, gamedata.MaxDifficulty)

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Available maps:")
	for _, m := range s.generator.Store.Maps.All() {
		fmt.Fprintf(s.out, "  - %s\n", m.Name)
	}
	params.MapName = s.promptLine("Map name (press Enter for random): ")

	params.RewardCount = s.promptInt("Number of reward items (1-10, default 3): ", 3, gamedata.MinRewards, gamedata.MaxRewards)

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Generating quest...")
	q, err := s.generator.Generate(params)
	if err != nil {
		return "", err
	}

	s.printSummary(q)

	if !s.confirm("\nSave quest? (y/n): ") {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "Quest not saved.")
		return "", nil
	}

	path, err := quest.Save(q, s.outputDir, "")
	if err != nil {
		return "", err
	}
	fmt.Fprintf(s.out, "\nQuest saved to: %s\n", path)
	return path, nil
}

// printSummary shows the generated quest before the save decision
func (s *Session) printSummary(q *quest.Quest) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "=== Generated Quest ===")
	fmt.Fprintf(s.out, "Title: %s\n", q.Info.Title)
	fmt.Fprintf(s.out, "Description: %s\n", q.Info.Description)
	fmt.Fprintf(s.out, "Difficulty: %d stars\n", q.Info.Difficulty)
	fmt.Fprintf(s.out, "Map: %s\n", q.Info.Map)
	fmt.Fprintf(s.out, "Monsters: %s\n", strings.Join(q.MonsterNames(), ", "))
	fmt.Fprintf(s.out, "Rewards: %d items\n", len(q.Rewards))
}

// promptLine asks for free text; empty input stays empty
func (s *Session) promptLine(label string) string {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return ""
	}
	return strings.TrimSpace(s.in.Text())
}

// promptInt asks until it gets an in-range number or an empty line,
// which selects the default
func (s *Session) promptInt(label string, def, min, max int) int {
	for {
		fmt.Fprint(s.out, label)
		if !s.in.Scan() {
			return def
		}
		text := strings.TrimSpace(s.in.Text())
		if text == "" {
			return def
		}
		value, err := strconv.Atoi(text)
		if err != nil {
			fmt.Fprintln(s.out, "Please enter a valid number")
			continue
		}
		if value < min || value > max {
			fmt.Fprintf(s.out, "Please enter a number between %d and %d\n", min, max)
			continue
		}
		return value
	}
}

// confirm asks a yes/no question; anything but y/yes is no
func (s *Session) confirm(label string) bool {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(s.in.Text()))
	return answer == "y" || answer == "yes"
}
