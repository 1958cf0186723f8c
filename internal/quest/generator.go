package quest

import (
	"math/rand"
	"time"

	"github.com/lawnchairsociety/questsmith/internal/config"
	"github.com/lawnchairsociety/questsmith/internal/gamedata"
)

// Params holds the requested quest parameters. Zero values mean
// "pick something sensible": empty title/description are generated,
// difficulty 0 is derived from the selected monsters, empty map name
// picks a random map.
type Params struct {
	Title        string
	Description  string
	MonsterCount int
	Difficulty   int
	MapName      string
	TargetName   string // Monster that carries the target flag (default: first selected)
	RewardCount  int
}

// Validate checks the numeric parameters against their allowed ranges
func (p *Params) Validate() error {
	if p.MonsterCount < gamedata.MinMonsters || p.MonsterCount > gamedata.MaxMonsters {
		return &ParameterError{Field: "monster count", Value: p.MonsterCount, Min: gamedata.MinMonsters, Max: gamedata.MaxMonsters}
	}
	if p.Difficulty != 0 && (p.Difficulty < gamedata.MinDifficulty || p.Difficulty > gamedata.MaxDifficulty) {
		return &ParameterError{Field: "difficulty", Value: p.Difficulty, Min: gamedata.MinDifficulty, Max: gamedata.MaxDifficulty}
	}
	if p.RewardCount < gamedata.MinRewards || p.RewardCount > gamedata.MaxRewards {
		return &ParameterError{Field: "reward count", Value: p.RewardCount, Min: gamedata.MinRewards, Max: gamedata.MaxRewards}
	}
	return nil
}

// Generator assembles quests from the reference tables.
// With Deterministic set, reward values and spawn areas are pinned so
// the same parameters always produce the same numbers.
type Generator struct {
	Store         *gamedata.Store
	Config        config.GeneratorConfig
	Rng           *rand.Rand
	Deterministic bool
}

// NewGenerator creates a generator over the given reference tables
func NewGenerator(store *gamedata.Store, cfg config.GeneratorConfig, rng *rand.Rand) *Generator {
	return &Generator{
		Store:  store,
		Config: cfg,
		Rng:    rng,
	}
}

// Generate resolves the parameters against the reference tables and
// assembles a complete quest document. It has no side effects.
func (g *Generator) Generate(params Params) (*Quest, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	questMap, err := g.resolveMap(params.MapName)
	if err != nil {
		return nil, err
	}

	monsters, err := g.selectMonsters(params.MonsterCount, params.Difficulty, params.TargetName)
	if err != nil {
		return nil, err
	}

	difficulty := params.Difficulty
	if difficulty == 0 {
		difficulty = deriveDifficulty(monsters)
	}

	rewards, err := g.selectRewards(difficulty, params.RewardCount)
	if err != nil {
		return nil, err
	}

	entries := g.placeMonsters(monsters, questMap)

	title := params.Title
	if title == "" {
		title = defaultTitle(monsters)
	}
	description := params.Description
	if description == "" {
		description = defaultDescription(monsters, questMap)
	}

	quest := &Quest{
		Info: Info{
			Title:       title,
			Description: description,
			Difficulty:  difficulty,
			Map:         questMap.Name,
			MapID:       questMap.ID,
			TimeLimit:   g.timeLimit(len(monsters)),
			ZennyReward: g.zennyReward(difficulty),
			HRPReward:   g.hrpReward(difficulty),
		},
		Monsters: entries,
		Rewards:  rewards,
		Conditions: Conditions{
			ObjectiveType:     ObjectiveHunt,
			TargetCount:       len(entries),
			FailureConditions: g.Config.FailureConditions,
		},
		Metadata: Metadata{
			GeneratedAt:      time.Now().Format(time.RFC3339),
			GeneratorVersion: Version,
		},
	}

	return quest, nil
}

// resolveMap picks the named map, or a random one when no name is given
func (g *Generator) resolveMap(name string) (*gamedata.Map, error) {
	if name != "" {
		return g.Store.Maps.Resolve(name)
	}
	all := g.Store.Maps.All()
	return all[g.Rng.Intn(len(all))], nil
}

// selectMonsters picks count distinct monsters. With a known difficulty
// the pool is threat-tier matched: elder tiers for difficulty 8+,
// otherwise tier = ceil(difficulty/2), widening to neighboring tiers and
// finally the whole table when a pool runs dry. With difficulty 0 the
// pick is uniform and difficulty is derived afterwards.
func (g *Generator) selectMonsters(count, difficulty int, targetName string) ([]*gamedata.Monster, error) {
	var selected []*gamedata.Monster
	taken := make(map[int]bool)

	if targetName != "" {
		target, ok := g.Store.Monsters.FindMonsterByName(targetName)
		if !ok {
			return nil, &UnknownMonsterError{Name: targetName}
		}
		selected = append(selected, target)
		taken[target.ID] = true
	}

	pool := g.monsterPool(difficulty)
	for len(selected) < count {
		candidates := available(pool, taken)
		if len(candidates) == 0 {
			// Tier pool exhausted, fall back to the whole table
			candidates = available(g.Store.Monsters.All(), taken)
			if len(candidates) == 0 {
				break // Table smaller than the requested count
			}
		}
		pick := candidates[g.Rng.Intn(len(candidates))]
		selected = append(selected, pick)
		taken[pick.ID] = true
	}

	return selected, nil
}

// monsterPool returns the threat-tier-matched candidate pool for a difficulty
func (g *Generator) monsterPool(difficulty int) []*gamedata.Monster {
	if difficulty == 0 {
		return g.Store.Monsters.All()
	}

	if difficulty >= 8 {
		// Tempered and arch-tempered territory: elders only, if any exist
		if elders := g.Store.Monsters.GetMonstersByThreat(gamedata.ElderThreat); len(elders) > 0 {
			return elders
		}
		return g.Store.Monsters.All()
	}

	tier := (difficulty + 1) / 2
	if pool := g.Store.Monsters.GetMonstersByThreat(tier); len(pool) > 0 {
		return pool
	}

	// No exact tier match: widen one tier in each direction
	var widened []*gamedata.Monster
	if tier > gamedata.MinThreat {
		widened = append(widened, g.Store.Monsters.GetMonstersByThreat(tier-1)...)
	}
	if tier < gamedata.MaxThreat {
		widened = append(widened, g.Store.Monsters.GetMonstersByThreat(tier+1)...)
	}
	if len(widened) > 0 {
		return widened
	}

	return g.Store.Monsters.All()
}

// available filters already-taken monsters out of a pool
func available(pool []*gamedata.Monster, taken map[int]bool) []*gamedata.Monster {
	var result []*gamedata.Monster
	for _, m := range pool {
		if !taken[m.ID] {
			result = append(result, m)
		}
	}
	return result
}

// placeMonsters converts selected monsters into document entries.
// Exactly the first monster carries the target flag; when a target was
// requested explicitly, selectMonsters already put it first.
func (g *Generator) placeMonsters(monsters []*gamedata.Monster, questMap *gamedata.Map) []MonsterEntry {
	entries := make([]MonsterEntry, len(monsters))
	for i, m := range monsters {
		entries[i] = MonsterEntry{
			MonsterID:   m.ID,
			Name:        m.Name,
			Type:        m.Type,
			IsTarget:    i == 0,
			InitialArea: g.spawnArea(m, questMap),
		}
	}
	return entries
}

// spawnArea picks the monster's starting area on the map
func (g *Generator) spawnArea(m *gamedata.Monster, questMap *gamedata.Map) int {
	if g.Deterministic {
		if m.DefaultArea >= 1 && m.DefaultArea <= questMap.Areas {
			return m.DefaultArea
		}
		return 1
	}
	return g.Rng.Intn(questMap.Areas) + 1
}

// deriveDifficulty maps the toughest selected monster's threat tier
// onto the 1-9 difficulty scale
func deriveDifficulty(monsters []*gamedata.Monster) int {
	maxThreat := gamedata.MinThreat
	for _, m := range monsters {
		if m.Threat > maxThreat {
			maxThreat = m.Threat
		}
	}
	return maxThreat*2 - 1
}

// timeLimit scales the hunt timer with the monster count
func (g *Generator) timeLimit(monsterCount int) int {
	return g.Config.BaseTimeLimit + g.Config.ExtraMonsterMinutes*(monsterCount-1)
}

// zennyReward grows linearly with difficulty plus a bounded jitter.
// Deterministic mode pins the jitter to its midpoint.
func (g *Generator) zennyReward(difficulty int) int {
	return difficulty*1000 + g.jitter(500, 2000)
}

// hrpReward grows linearly with difficulty plus a bounded jitter
func (g *Generator) hrpReward(difficulty int) int {
	return difficulty*100 + g.jitter(50, 200)
}

// jitter returns a value in [min,max]; the midpoint when deterministic
func (g *Generator) jitter(min, max int) int {
	if g.Deterministic {
		return (min + max) / 2
	}
	return min + g.Rng.Intn(max-min+1)
}

// defaultTitle names the quest after its monsters
func defaultTitle(monsters []*gamedata.Monster) string {
	if len(monsters) == 1 {
		return "Hunt: " + monsters[0].Name
	}
	return "Multi-Monster Hunt"
}

// defaultDescription lists the monsters and the locale
func defaultDescription(monsters []*gamedata.Monster, questMap *gamedata.Map) string {
	names := monsters[0].Name
	for _, m := range monsters[1:] {
		names += ", " + m.Name
	}
	return "Hunt the following monsters in " + questMap.Name + ": " + names
}
