package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/lawnchairsociety/questsmith/internal/config"
	"github.com/lawnchairsociety/questsmith/internal/gamedata"
	"github.com/lawnchairsociety/questsmith/internal/logger"
	"github.com/lawnchairsociety/questsmith/internal/prompt"
	"github.com/lawnchairsociety/questsmith/internal/quest"
)

func main() {
	os.Exit(run())
}

func run() int {
	interactive := flag.Bool("interactive", false, "Run in interactive mode")
	title := flag.String("title", "", "Quest title (default: auto-generated)")
	description := flag.String("description", "", "Quest description (default: auto-generated)")
	monsters := flag.Int("monsters", 1, "Number of monsters (1-3)")
	difficulty := flag.Int("difficulty", 0, "Difficulty level (1-9, 0 = derive from monsters)")
	mapName := flag.String("map", "", "Map name (default: random)")
	target := flag.String("target", "", "Monster to flag as the hunt target (default: first selected)")
	rewards := flag.Int("rewards", 3, "Number of reward items (1-10)")
	count := flag.Int("count", 1, "Number of quests to generate")
	outputDir := flag.String("output", "", "Output directory (default: from config)")
	dataDir := flag.String("data-dir", "", "Reference data directory (default: from config)")
	seed := flag.Int64("seed", 0, "Random seed (default: random based on current time)")
	deterministic := flag.Bool("deterministic", false, "Pin reward values and spawn areas for reproducible output")
	configFile := flag.String("config", "data/config.yaml", "Path to generator config YAML file")
	loggingFile := flag.String("logging", "data/logging.yaml", "Path to logging config YAML file")
	flag.Parse()

	// Initialize logger first (before any logging)
	logConfig, _ := logger.LoadConfig(*loggingFile)
	logger.Initialize(logConfig)

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		logger.Error("Failed to load generator config", "path", *configFile, "error", err)
		fmt.Fprintf(os.Stderr, "Error: could not load config %s: %v\n", *configFile, err)
		return 1
	}

	if *dataDir == "" {
		*dataDir = cfg.Paths.DataDir
	}
	if *outputDir == "" {
		*outputDir = cfg.Paths.OutputDir
	}

	store, err := gamedata.Load(*dataDir)
	if err != nil {
		logger.Error("Failed to load reference data", "data_dir", *dataDir, "error", err)
		fmt.Fprintf(os.Stderr, "Error: could not load reference data from %s\n", *dataDir)
		fmt.Fprintf(os.Stderr, "Details: %v\n", err)
		return 1
	}
	logger.Info("Reference data loaded",
		"monsters", len(store.Monsters.All()),
		"maps", len(store.Maps.All()),
		"data_dir", *dataDir)

	// Use provided seed or generate from time
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	logger.Debug("Seed selected", "seed", rngSeed, "fixed", *seed != 0)

	generator := quest.NewGenerator(store, cfg.Generator, rand.New(rand.NewSource(rngSeed)))
	generator.Deterministic = *deterministic

	if *interactive {
		session := prompt.NewSession(os.Stdin, os.Stdout, generator, *outputDir)
		if _, err := session.Run(); err != nil {
			logger.Error("Interactive session failed", "error", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	params := quest.Params{
		Title:        *title,
		Description:  *description,
		MonsterCount: *monsters,
		Difficulty:   *difficulty,
		MapName:      *mapName,
		TargetName:   *target,
		RewardCount:  *rewards,
	}

	if *count < 1 {
		fmt.Fprintf(os.Stderr, "Error: count must be >= 1, got %d\n", *count)
		return 1
	}

	return runBatch(generator, params, *count, *outputDir)
}

// runBatch generates count quests. A quest that fails resolution is
// reported and skipped; the rest of the batch still runs. The exit
// code is non-zero if anything failed.
func runBatch(generator *quest.Generator, params quest.Params, count int, outputDir string) int {
	fmt.Printf("Generating %d quest(s)...\n", count)

	failures := 0
	for i := 0; i < count; i++ {
		q, err := generator.Generate(params)
		if err != nil {
			failures++
			logger.Error("Quest generation failed", "quest", i+1, "error", err)
			fmt.Fprintf(os.Stderr, "Quest %d/%d failed: %v\n", i+1, count, err)
			if fatalParams(err) {
				// The same parameters will fail every remaining pass too
				break
			}
			continue
		}

		path, err := quest.Save(q, outputDir, "")
		if err != nil {
			failures++
			logger.Error("Quest save failed", "quest", i+1, "error", err)
			fmt.Fprintf(os.Stderr, "Quest %d/%d failed: %v\n", i+1, count, err)
			continue
		}

		logger.Always("Quest generated",
			"title", q.Info.Title,
			"difficulty", q.Info.Difficulty,
			"map", q.Info.Map,
			"monsters", strings.Join(q.MonsterNames(), ", "),
			"rewards", len(q.Rewards),
			"path", path)

		fmt.Printf("Generated quest %d/%d: %s\n", i+1, count, path)
		fmt.Printf("  Title: %s\n", q.Info.Title)
		fmt.Printf("  Monsters: %s\n", strings.Join(q.MonsterNames(), ", "))
		fmt.Printf("  Difficulty: %d stars\n", q.Info.Difficulty)
		fmt.Println()
	}

	if failures > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d quest(s) failed\n", failures, count)
		return 1
	}
	fmt.Println("Done!")
	return 0
}

// fatalParams reports errors that no amount of re-rolling will fix
func fatalParams(err error) bool {
	var paramErr *quest.ParameterError
	var unknownMap *gamedata.UnknownMapError
	var unknownMonster *quest.UnknownMonsterError
	return errors.As(err, &paramErr) || errors.As(err, &unknownMap) || errors.As(err, &unknownMonster)
}
