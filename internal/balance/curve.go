package balance

import (
	"fmt"

	"github.com/lawnchairsociety/lootforge/internal/items"
	"github.com/lawnchairsociety/lootforge/internal/monster"
)

// CurvePoint holds monster stats at a single level
type CurvePoint struct {
	Level      int    `json:"level" yaml:"level"`
	Prefix     string `json:"prefix" yaml:"prefix"`
	Health     int    `json:"health" yaml:"health"`
	BossHealth int    `json:"boss_health" yaml:"boss_health"`
	Attack     int    `json:"attack" yaml:"attack"`
	BossAttack int    `json:"boss_attack" yaml:"boss_attack"`
	Exp        int    `json:"exp" yaml:"exp"`
	BossExp    int    `json:"boss_exp" yaml:"boss_exp"`
}

// Levels returns from, from+step, ... up to and including to
func Levels(from, to, step int) ([]int, error) {
	if from < 1 || to < from || step < 1 {
		return nil, fmt.Errorf("%w: need 1 <= from <= to and step >= 1, got %d..%d step %d",
			items.ErrInvalidArgument, from, to, step)
	}
	var levels []int
	for l := from; l <= to; l += step {
		levels = append(levels, l)
	}
	return levels, nil
}

// MonsterCurve tabulates normal and boss stats for each level
func MonsterCurve(levels []int) []CurvePoint {
	points := make([]CurvePoint, 0, len(levels))
	for _, level := range levels {
		if level < 1 {
			continue
		}
		points = append(points, CurvePoint{
			Level:      level,
			Prefix:     monster.SeverityPrefix(level),
			Health:     monster.MaxHealth(level, false),
			BossHealth: monster.MaxHealth(level, true),
			Attack:     monster.AttackPower(level, false),
			BossAttack: monster.AttackPower(level, true),
			Exp:        monster.ExperienceReward(level, false),
			BossExp:    monster.ExperienceReward(level, true),
		})
	}
	return points
}
