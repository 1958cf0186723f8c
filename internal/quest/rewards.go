package quest

import (
	"github.com/lawnchairsociety/questsmith/internal/gamedata"
)

// rarityCap returns the highest item rarity a quest of this difficulty
// may reward. Low difficulties never see the top tiers.
func (g *Generator) rarityCap(difficulty int) int {
	limit := difficulty + 2
	if limit > g.Config.MaxRarity {
		limit = g.Config.MaxRarity
	}
	return limit
}

// selectRewards picks count items without replacement from the
// rarity-eligible set. Selection is weighted: the weight of rare items
// grows with difficulty, so high-difficulty hunts skew toward rare
// rewards while low-difficulty hunts hand out mostly common ones.
//
// If fewer items are eligible than requested, every eligible item is
// returned; that soft cap is not an error. An empty eligible set is.
func (g *Generator) selectRewards(difficulty, count int) ([]RewardEntry, error) {
	maxRarity := g.rarityCap(difficulty)
	eligible := g.Store.Items.GetItemsByMaxRarity(maxRarity)
	if len(eligible) == 0 {
		return nil, &InsufficientItemsError{Difficulty: difficulty, MaxRarity: maxRarity}
	}

	if count > len(eligible) {
		count = len(eligible)
	}

	pool := make([]*gamedata.Item, len(eligible))
	copy(pool, eligible)

	rewards := make([]RewardEntry, 0, count)
	for len(rewards) < count {
		idx := g.pickWeighted(pool, difficulty)
		item := pool[idx]
		pool = append(pool[:idx], pool[idx+1:]...)

		rewards = append(rewards, RewardEntry{
			ItemID:      item.ID,
			ItemName:    item.Name,
			Quantity:    g.rewardQuantity(item),
			Probability: g.dropProbability(difficulty, item.Rarity),
			Rarity:      item.Rarity,
		})
	}

	return rewards, nil
}

// pickWeighted selects an index from the pool by cumulative weight
func (g *Generator) pickWeighted(pool []*gamedata.Item, difficulty int) int {
	total := 0
	for _, item := range pool {
		total += rewardWeight(item, difficulty)
	}

	roll := g.Rng.Intn(total)
	cumulative := 0
	for i, item := range pool {
		cumulative += rewardWeight(item, difficulty)
		if roll < cumulative {
			return i
		}
	}
	return len(pool) - 1
}

// rewardWeight biases selection toward higher rarity as difficulty rises.
// Every item keeps a floor weight so nothing eligible is ever impossible.
func rewardWeight(item *gamedata.Item, difficulty int) int {
	return 10 + item.Rarity*difficulty
}

// rewardQuantity rolls the item's base quantity range.
// Deterministic mode takes the low end.
func (g *Generator) rewardQuantity(item *gamedata.Item) int {
	if g.Deterministic || item.QuantityMax <= item.QuantityMin {
		return item.QuantityMin
	}
	return item.QuantityMin + g.Rng.Intn(item.QuantityMax-item.QuantityMin+1)
}

// dropProbability rises with difficulty and falls with rarity,
// clamped to the configured floor and ceiling
func (g *Generator) dropProbability(difficulty, rarity int) float64 {
	p := 0.10 + 0.05*float64(difficulty) - 0.05*float64(rarity-1)
	if p > g.Config.MaxDropProbability {
		p = g.Config.MaxDropProbability
	}
	if p < g.Config.MinDropProbability {
		p = g.Config.MinDropProbability
	}
	return p
}
