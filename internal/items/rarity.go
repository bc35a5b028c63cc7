package items

import "strings"

// Rarity is the six-step quality ladder. The declaration order is the
// ordering used for affix pools and value multipliers.
type Rarity int

const (
	Common Rarity = iota
	Uncommon
	Rare
	Epic
	Legendary
	Mythic
)

// Rarities lists every rarity from lowest to highest.
var Rarities = []Rarity{Common, Uncommon, Rare, Epic, Legendary, Mythic}

// Ordinal returns the 0-based position in the ladder (Common=0 … Mythic=5)
func (r Rarity) Ordinal() int {
	return int(r)
}

// String returns the key used in config files and logs
func (r Rarity) String() string {
	switch r {
	case Common:
		return "common"
	case Uncommon:
		return "uncommon"
	case Rare:
		return "rare"
	case Epic:
		return "epic"
	case Legendary:
		return "legendary"
	case Mythic:
		return "mythic"
	default:
		return "unknown"
	}
}

// Label returns the in-game display name
func (r Rarity) Label() string {
	switch r {
	case Common:
		return "일반"
	case Uncommon:
		return "고급"
	case Rare:
		return "희귀"
	case Epic:
		return "영웅"
	case Legendary:
		return "전설"
	case Mythic:
		return "신화"
	default:
		return ""
	}
}

// ParseRarity converts a key or display label to a Rarity
func ParseRarity(s string) (Rarity, bool) {
	s = strings.TrimSpace(s)
	for _, r := range Rarities {
		if strings.EqualFold(s, r.String()) || s == r.Label() {
			return r, true
		}
	}
	return Common, false
}

// MarshalText encodes the rarity by its key.
func (r Rarity) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText decodes a key or label; unknown text becomes Common.
func (r *Rarity) UnmarshalText(text []byte) error {
	*r, _ = ParseRarity(string(text))
	return nil
}

// RollRarity maps a roll in [0, 1) to a rarity. The comparisons run from the
// rarest tier down and the boundaries are literal:
// Common 40%, Uncommon 35%, Rare 15%, Epic 8%, Legendary 1%, Mythic 1%.
func RollRarity(roll float64) Rarity {
	switch {
	case roll > 0.99:
		return Mythic
	case roll > 0.98:
		return Legendary
	case roll > 0.90:
		return Epic
	case roll > 0.75:
		return Rare
	case roll > 0.40:
		return Uncommon
	default:
		return Common
	}
}
