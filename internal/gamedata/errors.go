package gamedata

import (
	"fmt"
	"strings"
)

// UnknownMapError is returned when a requested map name matches nothing
// in the map table. Suggestions holds the closest fuzzy matches, if any.
type UnknownMapError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownMapError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unknown map %q", e.Name)
	}
	return fmt.Sprintf("unknown map %q (did you mean: %s?)", e.Name, strings.Join(e.Suggestions, ", "))
}
