// Package affix holds the static prefix and suffix tables combined with base
// item names. The tables are fixed at build time and never written.
package affix

import (
	"github.com/lawnchairsociety/lootforge/internal/items"
	"github.com/lawnchairsociety/lootforge/internal/stats"
)

// Affix is a flavor modifier with a stat delta.
type Affix struct {
	Name        string      // key name ("of Bear" for suffixes)
	DisplayName string      // display text when it differs from Name
	Stats       stats.Block // delta merged into the base stats
	RarityFloor items.Rarity
}

// Fixed prefix offsets.
const (
	Ordinary = 1 // default Common prefix
	Worn     = 2 // flavor prefix for the secondary Common roll
)

// prefixRange is an inclusive index range into prefixes.
type prefixRange struct {
	first, last int
}

// rarityRanges maps each rarity to the slice of prefixes it draws from.
var rarityRanges = map[items.Rarity]prefixRange{
	items.Common:    {Ordinary, Worn},
	items.Uncommon:  {3, 6},
	items.Rare:      {7, 9},
	items.Epic:      {10, 12},
	items.Legendary: {13, 14},
	items.Mythic:    {15, 16},
}

var prefixes = []Affix{
	{Name: "녹슨", Stats: stats.Block{Str: -2}, RarityFloor: items.Common},
	{Name: "평범한", RarityFloor: items.Common},
	{Name: "오래된", Stats: stats.Block{Vit: 1}, RarityFloor: items.Common},
	{Name: "날카로운", Stats: stats.Block{Str: 2, Dex: 1, Crit: 1}, RarityFloor: items.Uncommon},
	{Name: "단단한", Stats: stats.Block{Vit: 3}, RarityFloor: items.Uncommon},
	{Name: "민첩한", Stats: stats.Block{Dex: 3, Dodge: 1}, RarityFloor: items.Uncommon},
	{Name: "지혜로운", Stats: stats.Block{Int: 3}, RarityFloor: items.Uncommon},
	{Name: "치명적인", Stats: stats.Block{Crit: 3, Dex: 2}, RarityFloor: items.Uncommon},
	{Name: "맹렬한", Stats: stats.Block{Str: 5, Int: 2}, RarityFloor: items.Rare},
	{Name: "빛나는", Stats: stats.Block{Luck: 5, Int: 5}, RarityFloor: items.Rare},
	{Name: "수호의", Stats: stats.Block{Vit: 8, Str: 2, Dodge: 2}, RarityFloor: items.Rare},
	{Name: "그림자의", Stats: stats.Block{Dex: 5, Dodge: 3}, RarityFloor: items.Rare},
	{Name: "파괴자의", Stats: stats.Block{Str: 8, Crit: 3}, RarityFloor: items.Rare},
	{Name: "고대의", Stats: stats.Block{Str: 10, Vit: 10}, RarityFloor: items.Epic},
	{Name: "폭풍의", Stats: stats.Block{Dex: 12, Luck: 5, Crit: 5}, RarityFloor: items.Epic},
	{Name: "마력의", Stats: stats.Block{Int: 15, MP: 50}, RarityFloor: items.Epic},
	{Name: "용살자의", Stats: stats.Block{Str: 20, Dex: 10, Crit: 8}, RarityFloor: items.Legendary},
	// 17-20 are outside every draw range; Prefix(i) still resolves them.
	{Name: "절대자의", Stats: stats.Block{Str: 15, Int: 15, Vit: 15}, RarityFloor: items.Legendary},
	{Name: "환영의", Stats: stats.Block{Dodge: 10, Luck: 15}, RarityFloor: items.Legendary},
	{Name: "신성한", Stats: stats.Block{Int: 30, Luck: 15}, RarityFloor: items.Mythic},
	{Name: "악마의", Stats: stats.Block{Str: 35, Vit: -5, Crit: 10}, RarityFloor: items.Mythic},
}

// suffixes[0] is the no-op suffix so "no suffix" is just index 0.
var suffixes = []Affix{
	{},
	{Name: "of Bear", DisplayName: "곰의", Stats: stats.Block{Str: 3, Vit: 5}},
	{Name: "of Eagle", DisplayName: "독수리의", Stats: stats.Block{Dex: 5, Luck: 2, Crit: 1}},
	{Name: "of Owl", DisplayName: "올빼미의", Stats: stats.Block{Int: 5, MP: 20}},
	{Name: "of Fox", DisplayName: "여우의", Stats: stats.Block{Int: 3, Dex: 3, Dodge: 1}},
	{Name: "of Wolf", DisplayName: "늑대의", Stats: stats.Block{Str: 4, Dex: 2, Crit: 2}},
	{Name: "of Tiger", DisplayName: "호랑이의", Stats: stats.Block{Str: 5, Dex: 5}},
	{Name: "of Turtle", DisplayName: "거북이의", Stats: stats.Block{Vit: 10, Dodge: -1}},
	{Name: "of Destruction", DisplayName: "파괴의", Stats: stats.Block{Str: 15, Crit: 5}},
	{Name: "of Life", DisplayName: "생명의", Stats: stats.Block{Vit: 20, HP: 100}},
	{Name: "of Mana", DisplayName: "마력의", Stats: stats.Block{Int: 10, MP: 50}},
	{Name: "of Speed", DisplayName: "신속의", Stats: stats.Block{Dex: 8, Dodge: 3}},
	{Name: "of Luck", DisplayName: "행운의", Stats: stats.Block{Luck: 15}},
}

// Label returns the text spliced into an item name.
func (a Affix) Label() string {
	if a.DisplayName != "" {
		return a.DisplayName
	}
	return a.Name
}

// Prefix returns the prefix at index i.
func Prefix(i int) Affix {
	return prefixes[i]
}

// PrefixCount returns the size of the prefix table.
func PrefixCount() int {
	return len(prefixes)
}

// PrefixRange returns the inclusive index range drawn from for a rarity.
// Common covers the ordinary and worn prefixes.
func PrefixRange(r items.Rarity) (first, last int) {
	pr, ok := rarityRanges[r]
	if !ok {
		pr = rarityRanges[items.Common]
	}
	return pr.first, pr.last
}

// ListPrefixesForRarity returns the non-empty, ordered prefixes drawn for a
// rarity. The returned slice is a copy.
func ListPrefixesForRarity(floor items.Rarity) []Affix {
	first, last := PrefixRange(floor)
	out := make([]Affix, last-first+1)
	copy(out, prefixes[first:last+1])
	return out
}

// Suffix returns the suffix at index i; index 0 is the no-op suffix.
func Suffix(i int) Affix {
	return suffixes[i]
}

// SuffixCount returns the size of the suffix table including the no-op entry.
func SuffixCount() int {
	return len(suffixes)
}

// ListAllSuffixes returns every suffix, starting with the no-op entry.
// The returned slice is a copy.
func ListAllSuffixes() []Affix {
	out := make([]Affix, len(suffixes))
	copy(out, suffixes)
	return out
}
