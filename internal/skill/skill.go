package skill

import (
	"fmt"

	"github.com/lawnchairsociety/lootforge/internal/items"
	"github.com/lawnchairsociety/lootforge/internal/rng"
)

var (
	adjectives = []string{"강력한", "빠른", "파괴적인", "화염의", "얼음의", "번개의", "빛의", "어둠의"}
	nouns      = []string{"일격", "베기", "찌르기", "타격", "화살", "폭발", "치유", "보호"}
)

const (
	minCooldown  = 2
	baseCooldown = 10
	baseManaCost = 5
)

// Skill is a generated job skill. Cooldown is in seconds.
type Skill struct {
	ID               string  `json:"id" yaml:"id"`
	Name             string  `json:"name" yaml:"name"`
	Job              Job     `json:"job" yaml:"job"`
	Tier             int     `json:"tier" yaml:"tier"`
	DamageMultiplier float64 `json:"damage_multiplier" yaml:"damage_multiplier"`
	Cooldown         int     `json:"cooldown" yaml:"cooldown"`
	CurrentCooldown  int     `json:"current_cooldown" yaml:"current_cooldown"`
	ManaCost         int     `json:"mana_cost" yaml:"mana_cost"`
	Mastery          int     `json:"mastery" yaml:"mastery"`
	Description      string  `json:"description" yaml:"description"`
}

// String returns a one-line summary of the skill
func (s *Skill) String() string {
	return fmt.Sprintf("%s [%s] x%.1f, CD %ds, MP %d", s.Name, s.Job.Label(), s.DamageMultiplier, s.Cooldown, s.ManaCost)
}

// DamagePercent returns the damage multiplier as a whole percentage.
// Formula: 120 + tier * 20
func DamagePercent(tier int) int {
	return 120 + tier*20
}

// Cooldown returns the skill cooldown for a tier.
// Formula: max(2, 10 - tier)
func Cooldown(tier int) int {
	return max(minCooldown, baseCooldown-tier)
}

// ManaCost returns the mana cost for a tier.
// Formula: 5 + tier * 2
func ManaCost(tier int) int {
	return baseManaCost + tier*2
}

// Synthesizer builds skills.
type Synthesizer struct {
	src rng.Source
}

// NewSynthesizer creates a skill synthesizer drawing from src
func NewSynthesizer(src rng.Source) *Synthesizer {
	return &Synthesizer{src: src}
}

// Synthesize builds a skill for the job at the given tier. A tier below 1
// fails with items.ErrInvalidArgument; an unknown job is treated as None.
func (s *Synthesizer) Synthesize(job Job, tier int) (*Skill, error) {
	if err := items.CheckTier(tier); err != nil {
		return nil, err
	}
	if !job.IsValid() {
		job = None
	}

	adj := adjectives[rng.Pick(s.src, len(adjectives))]
	noun := nouns[rng.Pick(s.src, len(nouns))]

	return &Skill{
		ID:               rng.NewID("skill", s.src),
		Name:             fmt.Sprintf("%s %s (Tier %d)", adj, noun, tier),
		Job:              job,
		Tier:             tier,
		DamageMultiplier: float64(DamagePercent(tier)) / 100,
		Cooldown:         Cooldown(tier),
		ManaCost:         ManaCost(tier),
		Description:      fmt.Sprintf("%s 전용 스킬. %d%%의 피해를 입힙니다.", job.Label(), DamagePercent(tier)),
	}, nil
}
