package quest

import "fmt"

// ParameterError reports a quest parameter outside its allowed range.
// In batch mode it aborts only the quest it belongs to.
type ParameterError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s must be between %d and %d, got %d", e.Field, e.Min, e.Max, e.Value)
}

// InsufficientItemsError means the item table holds nothing a quest of
// this difficulty is allowed to reward. A short eligible set is not an
// error; only an empty one is.
type InsufficientItemsError struct {
	Difficulty int
	MaxRarity  int
}

func (e *InsufficientItemsError) Error() string {
	return fmt.Sprintf("no reward-eligible items for difficulty %d (rarity cap %d)", e.Difficulty, e.MaxRarity)
}

// UnknownMonsterError reports a requested target monster that is not
// in the monster table.
type UnknownMonsterError struct {
	Name string
}

func (e *UnknownMonsterError) Error() string {
	return fmt.Sprintf("unknown monster %q", e.Name)
}
