// Package monster builds combat-ready monsters scaled to a level and zone.
package monster

import (
	"fmt"

	"github.com/lawnchairsociety/lootforge/internal/items"
	"github.com/lawnchairsociety/lootforge/internal/rng"
	"github.com/lawnchairsociety/lootforge/internal/zone"
)

// Monster is a generated enemy. Everything except CurrentHealth is fixed at
// creation; CurrentHealth belongs to the combat code.
type Monster struct {
	ID               string    `json:"id" yaml:"id"`
	Name             string    `json:"name" yaml:"name"`
	Zone             zone.Kind `json:"zone" yaml:"zone"`
	Level            int       `json:"level" yaml:"level"`
	MaxHealth        int       `json:"max_health" yaml:"max_health"`
	CurrentHealth    int       `json:"current_health" yaml:"current_health"`
	AttackPower      int       `json:"attack_power" yaml:"attack_power"`
	ExperienceReward int       `json:"experience_reward" yaml:"experience_reward"`
	IsBoss           bool      `json:"is_boss" yaml:"is_boss"`
	DropTable        []string  `json:"drop_table" yaml:"drop_table"`
}

// String returns a one-line summary of the monster
func (m *Monster) String() string {
	return fmt.Sprintf("%s (Lv.%d, HP %d/%d, ATK %d, EXP %d)", m.Name, m.Level, m.CurrentHealth, m.MaxHealth, m.AttackPower, m.ExperienceReward)
}

// Synthesizer builds monsters from the zone name pools.
type Synthesizer struct {
	src rng.Source
}

// NewSynthesizer creates a monster synthesizer drawing from src
func NewSynthesizer(src rng.Source) *Synthesizer {
	return &Synthesizer{src: src}
}

// Synthesize builds one monster. A level below 1 fails with
// items.ErrInvalidArgument; an unrecognized zone uses the fallback pool.
func (s *Synthesizer) Synthesize(level int, z zone.Kind, isBoss bool) (*Monster, error) {
	if level < 1 {
		return nil, fmt.Errorf("%w: level must be >= 1, got %d", items.ErrInvalidArgument, level)
	}

	pool := Pool(z)
	baseName := pool[rng.Pick(s.src, len(pool))]
	prefix := SeverityPrefix(level)

	name := fmt.Sprintf("%s %s", prefix, baseName)
	if isBoss {
		name = fmt.Sprintf("[BOSS] %s %s %s", prefix, baseName, bossSuffix)
	}

	hp := MaxHealth(level, isBoss)
	return &Monster{
		ID:               rng.NewID("mon", s.src),
		Name:             name,
		Zone:             z,
		Level:            level,
		MaxHealth:        hp,
		CurrentHealth:    hp,
		AttackPower:      AttackPower(level, isBoss),
		ExperienceReward: ExperienceReward(level, isBoss),
		IsBoss:           isBoss,
		DropTable:        []string{},
	}, nil
}
