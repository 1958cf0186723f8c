// Package quest turns reference data and user parameters into
// finished quest documents ready for the mod loader.
package quest

// Version is stamped into every generated quest's metadata block.
const Version = "1.0.0"

// ObjectiveHunt is the only objective type this generator emits.
const ObjectiveHunt = "hunt"

// Info is the quest_info block of the output document
type Info struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  int    `json:"difficulty"`
	Map         string `json:"map"`
	MapID       int    `json:"map_id"`
	TimeLimit   int    `json:"time_limit"` // minutes
	ZennyReward int    `json:"zenny_reward"`
	HRPReward   int    `json:"hrp_reward"`
}

// MonsterEntry is one monster in the output document
type MonsterEntry struct {
	MonsterID   int    `json:"monster_id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	IsTarget    bool   `json:"is_target"`
	InitialArea int    `json:"initial_area"`
}

// RewardEntry is one reward item in the output document
type RewardEntry struct {
	ItemID      int     `json:"item_id"`
	ItemName    string  `json:"item_name"`
	Quantity    int     `json:"quantity"`
	Probability float64 `json:"probability"`
	Rarity      int     `json:"rarity"`
}

// Conditions is the win/lose conditions block of the output document
type Conditions struct {
	ObjectiveType     string   `json:"objective_type"`
	TargetCount       int      `json:"target_count"`
	FailureConditions []string `json:"failure_conditions"`
}

// Metadata records when and by what the quest was generated
type Metadata struct {
	GeneratedAt      string `json:"generated_at"`
	GeneratorVersion string `json:"generator_version"`
}

// Quest is the complete output document. The field names, types and
// nesting are a compatibility contract with the mod loader and must
// not change.
type Quest struct {
	Info       Info           `json:"quest_info"`
	Monsters   []MonsterEntry `json:"monsters"`
	Rewards    []RewardEntry  `json:"rewards"`
	Conditions Conditions     `json:"conditions"`
	Metadata   Metadata       `json:"metadata"`
}

// TargetNames returns the names of the monsters flagged as hunt targets
func (q *Quest) TargetNames() []string {
	var names []string
	for _, m := range q.Monsters {
		if m.IsTarget {
			names = append(names, m.Name)
		}
	}
	return names
}

// MonsterNames returns the names of all monsters in the quest
func (q *Quest) MonsterNames() []string {
	names := make([]string, len(q.Monsters))
	for i, m := range q.Monsters {
		names[i] = m.Name
	}
	return names
}
