package items

import (
	"errors"
	"fmt"

	"github.com/lawnchairsociety/lootforge/internal/stats"
)

// ErrInvalidArgument marks a request the synthesizers refuse to build,
// such as a tier or level below 1.
var ErrInvalidArgument = errors.New("invalid argument")

// BaseValuePerTier is the minimum market value per tier of a generated item.
const BaseValuePerTier = 15

// MaterialValuePerTier is the market value per tier of a gathered material.
const MaterialValuePerTier = 5

// Item is a generated piece of equipment or material. It is built once by a
// synthesizer and handed to the caller; display code must not mutate it.
type Item struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Category    Category    `json:"category" yaml:"category"`
	Rarity      Rarity      `json:"rarity" yaml:"rarity"`
	Tier        int         `json:"tier" yaml:"tier"`
	Stats       stats.Block `json:"stats" yaml:"stats"`
	Value       int         `json:"value" yaml:"value"`
	Description string      `json:"description" yaml:"description"`
	Prefix      string      `json:"prefix,omitempty" yaml:"prefix,omitempty"` // affix key names
	Suffix      string      `json:"suffix,omitempty" yaml:"suffix,omitempty"`
}

// Value computes tier * 15 * (ordinal(rarity) + 1)
func Value(tier int, rarity Rarity) int {
	return tier * BaseValuePerTier * (rarity.Ordinal() + 1)
}

// Describe renders the templated description for a piece of equipment
func Describe(rarity Rarity, tier int, category Category) string {
	return fmt.Sprintf("%s 등급의 %d티어 %s입니다.", rarity.Label(), tier, category.Label())
}

// CheckTier rejects tiers below 1
func CheckTier(tier int) error {
	if tier < 1 {
		return fmt.Errorf("%w: tier must be >= 1, got %d", ErrInvalidArgument, tier)
	}
	return nil
}

// String returns a formatted one-line summary of the item
func (i *Item) String() string {
	return fmt.Sprintf("%s [%s T%d %s] %s (%d gold)", i.Name, i.Rarity.Label(), i.Tier, i.Category.Label(), i.Stats, i.Value)
}
