// Package stats holds the stat block carried by generated equipment and affixes.
package stats

import (
	"fmt"
	"strings"
)

// Stat names one of the stat keys.
type Stat int

const (
	Str Stat = iota
	Dex
	Int
	Vit
	Luck
	Crit
	Dodge
	HP
	MP
)

// All lists every stat key in display order.
var All = []Stat{Str, Dex, Int, Vit, Luck, Crit, Dodge, HP, MP}

// String returns the lowercase key used in data files
func (s Stat) String() string {
	switch s {
	case Str:
		return "str"
	case Dex:
		return "dex"
	case Int:
		return "int"
	case Vit:
		return "vit"
	case Luck:
		return "luck"
	case Crit:
		return "crit"
	case Dodge:
		return "dodge"
	case HP:
		return "hp"
	case MP:
		return "mp"
	default:
		return "unknown"
	}
}

// Block maps stat keys to signed integers. A zero field and an absent key mean
// the same thing. HP and MP only appear on affix deltas; generated items carry
// them folded into Vit and Int.
type Block struct {
	Str   int `json:"str,omitempty" yaml:"str,omitempty"`
	Dex   int `json:"dex,omitempty" yaml:"dex,omitempty"`
	Int   int `json:"int,omitempty" yaml:"int,omitempty"`
	Vit   int `json:"vit,omitempty" yaml:"vit,omitempty"`
	Luck  int `json:"luck,omitempty" yaml:"luck,omitempty"`
	Crit  int `json:"crit,omitempty" yaml:"crit,omitempty"`
	Dodge int `json:"dodge,omitempty" yaml:"dodge,omitempty"`
	HP    int `json:"hp,omitempty" yaml:"hp,omitempty"`
	MP    int `json:"mp,omitempty" yaml:"mp,omitempty"`
}

// Get returns the value of one stat
func (b Block) Get(s Stat) int {
	switch s {
	case Str:
		return b.Str
	case Dex:
		return b.Dex
	case Int:
		return b.Int
	case Vit:
		return b.Vit
	case Luck:
		return b.Luck
	case Crit:
		return b.Crit
	case Dodge:
		return b.Dodge
	case HP:
		return b.HP
	case MP:
		return b.MP
	default:
		return 0
	}
}

// Merge adds a delta field by field. Any hp in the delta becomes
// vit += floor(hp/10) and any mp becomes int += floor(mp/5); the result
// never holds raw hp or mp from the delta.
func (b Block) Merge(delta Block) Block {
	b.Str += delta.Str
	b.Dex += delta.Dex
	b.Int += delta.Int
	b.Vit += delta.Vit
	b.Luck += delta.Luck
	b.Crit += delta.Crit
	b.Dodge += delta.Dodge
	b.Vit += FloorDiv(delta.HP, 10)
	b.Int += FloorDiv(delta.MP, 5)
	return b
}

// IsZero reports whether every stat is zero.
func (b Block) IsZero() bool {
	return b == Block{}
}

// String renders the non-zero stats, e.g. "STR +3, DODGE -1".
func (b Block) String() string {
	var parts []string
	for _, s := range All {
		if v := b.Get(s); v != 0 {
			parts = append(parts, fmt.Sprintf("%s %+d", strings.ToUpper(s.String()), v))
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

// FloorDiv divides rounding toward negative infinity.
// Examples: 7/5=1, -7/5=-2, -10/5=-2
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
