package allocation

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Criterion is the dimension along which a best allocation is sought.
type Criterion uint8

const (
	MaxHappiness Criterion = iota
	MaxWood
	MaxApples
)

// Criteria lists every criterion in report order.
var Criteria = []Criterion{MaxHappiness, MaxWood, MaxApples}

var criterionNames = map[Criterion]string{
	MaxHappiness: "max_happiness",
	MaxWood:      "max_wood",
	MaxApples:    "max_apples",
}

var criterionAliases = map[string]Criterion{
	"max_happiness": MaxHappiness,
	"happiness":     MaxHappiness,
	"max_wood":      MaxWood,
	"wood":          MaxWood,
	"max_apples":    MaxApples,
	"apples":        MaxApples,
}

// maxSuggestDistance bounds how far a typo may be from a known name
// before no suggestion is offered.
const maxSuggestDistance = 3

func (c Criterion) String() string {
	if name, ok := criterionNames[c]; ok {
		return name
	}
	return fmt.Sprintf("criterion(%d)", uint8(c))
}

// Label returns the display name used in tables.
func (c Criterion) Label() string {
	switch c {
	case MaxHappiness:
		return "Max happiness"
	case MaxWood:
		return "Max wood"
	case MaxApples:
		return "Max apples"
	}
	return c.String()
}

// ParseCriterion resolves a criterion name. Dashes, spaces and case are
// ignored. Unknown names fail with the closest known name when one is near.
func ParseCriterion(name string) (Criterion, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	if c, ok := criterionAliases[key]; ok {
		return c, nil
	}

	best, bestDist := "", maxSuggestDistance+1
	for alias := range criterionAliases {
		d := levenshtein.ComputeDistance(key, alias)
		if d < bestDist || (d == bestDist && alias < best) {
			best, bestDist = alias, d
		}
	}
	if best != "" {
		return 0, fmt.Errorf("unknown criterion %q (did you mean %q?)", name, best)
	}
	return 0, fmt.Errorf("unknown criterion %q", name)
}
