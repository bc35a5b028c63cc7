// Package loot builds randomized equipment and gathered materials from the
// static name pools and affix tables.
package loot

import (
	"fmt"
	"strings"

	"github.com/lawnchairsociety/lootforge/internal/affix"
	"github.com/lawnchairsociety/lootforge/internal/items"
	"github.com/lawnchairsociety/lootforge/internal/rng"
	"github.com/lawnchairsociety/lootforge/internal/stats"
	"github.com/lawnchairsociety/lootforge/internal/zone"
)

const (
	biasChance     = 0.5 // chance to follow the zone preference list
	wornChance     = 0.2 // chance a Common item gets the worn prefix
	noSuffixChance = 0.4
)

// Request describes the item a caller wants.
type Request struct {
	Tier     int
	Category items.Category // CategoryNone lets the synthesizer choose
	Zone     zone.Kind
}

// Synthesizer builds items. Every call is independent; the only shared
// state is the random source.
type Synthesizer struct {
	src  rng.Source
	bias Bias
}

// NewSynthesizer creates a synthesizer drawing from src. A nil bias uses
// DefaultBias.
func NewSynthesizer(src rng.Source, bias Bias) *Synthesizer {
	if bias == nil {
		bias = DefaultBias()
	} else {
		bias = bias.Clone()
	}
	return &Synthesizer{
		src:  src,
		bias: bias,
	}
}

// Synthesize builds one item for the request. A tier below 1 fails with
// items.ErrInvalidArgument.
func (s *Synthesizer) Synthesize(req Request) (*items.Item, error) {
	if err := items.CheckTier(req.Tier); err != nil {
		return nil, err
	}

	category := req.Category
	if category == items.CategoryNone {
		category = s.pickCategory(req.Zone)
	}
	if category == items.Material {
		return s.SynthesizeMaterial(req.Tier, items.Mine)
	}

	pool := namePool(category)
	baseName := pool[rng.Pick(s.src, len(pool))]

	rarity := items.RollRarity(s.src.Float64())
	prefix := s.pickPrefix(rarity)
	suffix := s.pickSuffix()

	base := s.baseStats(category, req.Tier)
	combined := base.Merge(prefix.Stats).Merge(suffix.Stats)

	return &items.Item{
		ID:          rng.NewID("item", s.src),
		Name:        composeName(prefix, baseName, suffix),
		Category:    category,
		Rarity:      rarity,
		Tier:        req.Tier,
		Stats:       combined,
		Value:       items.Value(req.Tier, rarity),
		Description: items.Describe(rarity, req.Tier, category),
		Prefix:      prefix.Name,
		Suffix:      suffix.Name,
	}, nil
}

// SynthesizeMaterial builds a stat-less Common crafting material.
func (s *Synthesizer) SynthesizeMaterial(tier int, kind items.MaterialKind) (*items.Item, error) {
	if err := items.CheckTier(tier); err != nil {
		return nil, err
	}

	label := kind.Label()
	return &items.Item{
		ID:          rng.NewID("mat", s.src),
		Name:        fmt.Sprintf("%d등급 %s", tier, label),
		Category:    items.Material,
		Rarity:      items.Common,
		Tier:        tier,
		Value:       tier * items.MaterialValuePerTier,
		Description: fmt.Sprintf("제작에 사용되는 %s입니다.", label),
	}, nil
}

// pickCategory follows the zone preference half of the time when the zone
// has one, and otherwise rolls the global distribution.
func (s *Synthesizer) pickCategory(z zone.Kind) items.Category {
	preferred := s.bias[z]
	if len(preferred) > 0 && s.src.Float64() < biasChance {
		return preferred[rng.Pick(s.src, len(preferred))]
	}
	return RollCategory(s.src.Float64())
}

// pickPrefix draws from the rarity's slice of the prefix table. Common
// items take the ordinary prefix unless the secondary roll picks worn.
func (s *Synthesizer) pickPrefix(rarity items.Rarity) affix.Affix {
	if rarity == items.Common {
		if s.src.Float64() < wornChance {
			return affix.Prefix(affix.Worn)
		}
		return affix.Prefix(affix.Ordinary)
	}
	first, last := affix.PrefixRange(rarity)
	return affix.Prefix(first + rng.Pick(s.src, last-first+1))
}

func (s *Synthesizer) pickSuffix() affix.Affix {
	if s.src.Float64() < noSuffixChance {
		return affix.Suffix(0)
	}
	return affix.Suffix(1 + rng.Pick(s.src, affix.SuffixCount()-1))
}

// baseStats computes the category's tier-driven stats. Jewelry consumes
// extra rolls for its random bonuses.
func (s *Synthesizer) baseStats(category items.Category, tier int) stats.Block {
	t := float64(tier)
	sub := int(t * 0.8)

	var b stats.Block
	switch category {
	case items.Weapon:
		main := int(t * 2.5)
		b.Str = main
		b.Dex = int(float64(main) * 0.5)
	case items.Helm:
		b.Vit = sub
		b.Int = int(t * 0.5)
	case items.Armor:
		b.Vit = int(t * 1.5)
		b.Str = int(t * 0.2)
	case items.Gloves:
		b.Dex = sub
		b.Str = int(t * 0.5)
		b.Crit = 1
	case items.Boots:
		b.Dex = sub
		b.Luck = int(t * 0.3)
		b.Dodge = 1
	case items.Cloak:
		b.Vit = int(t * 0.5)
		b.Luck = int(t * 0.5)
		b.Dodge = 1
	case items.Ring, items.Accessory:
		if s.src.Float64() > 0.5 {
			b.Str = sub
		}
		if s.src.Float64() > 0.5 {
			b.Int = sub
		}
		if s.src.Float64() > 0.5 {
			b.Dex = sub
		}
		b.Luck = int(t * 0.5)
		if s.src.Float64() > 0.7 {
			b.Crit = 1
		}
	}
	return b
}

// composeName joins "prefix base suffix", dropping the trailing space when
// there is no suffix.
func composeName(prefix affix.Affix, baseName string, suffix affix.Affix) string {
	return strings.TrimSpace(prefix.Label() + " " + baseName + " " + suffix.Label())
}
