package loot

import (
	"github.com/lawnchairsociety/lootforge/internal/items"
	"github.com/lawnchairsociety/lootforge/internal/zone"
)

// Bias lists the categories each zone prefers when picking a drop.
// A zone with no entry, or an empty list, has no preference.
type Bias map[zone.Kind][]items.Category

// DefaultBias returns the built-in regional drop preferences
func DefaultBias() Bias {
	return Bias{
		zone.Forest:  {items.Boots, items.Gloves, items.Cloak, items.Material},
		zone.Mine:    {items.Weapon, items.Helm, items.Armor, items.Material},
		zone.Lake:    {items.Ring, items.Accessory, items.Consumable, items.Material},
		zone.Ruins:   {items.Ring, items.Accessory, items.Cloak, items.Weapon},
		zone.Field:   {items.Boots, items.Gloves, items.Consumable, items.Material},
		zone.Dungeon: {items.Weapon, items.Armor, items.Helm, items.Ring, items.Accessory},
		zone.Town:    {},
	}
}

// Clone returns a deep copy so callers can tweak a table without sharing it
func (b Bias) Clone() Bias {
	out := make(Bias, len(b))
	for k, v := range b {
		out[k] = append([]items.Category(nil), v...)
	}
	return out
}

// RollCategory maps a roll in [0, 1) onto the global category distribution.
// Material is never produced here.
func RollCategory(roll float64) items.Category {
	switch {
	case roll < 0.25:
		return items.Weapon
	case roll < 0.40:
		return items.Armor
	case roll < 0.50:
		return items.Helm
	case roll < 0.60:
		return items.Gloves
	case roll < 0.70:
		return items.Boots
	case roll < 0.80:
		return items.Ring
	case roll < 0.90:
		return items.Accessory
	default:
		return items.Cloak
	}
}
