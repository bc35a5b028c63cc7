package quest

import (
	"fmt"

	"github.com/lawnchairsociety/lootforge/internal/items"
	"github.com/lawnchairsociety/lootforge/internal/rng"
)

const (
	minTargets   = 3
	targetSpread = 5 // target count is minTargets + [0, targetSpread)
	goldPerLevel = 100
	expPerLevel  = 50
)

// Synthesizer builds kill quests.
type Synthesizer struct {
	src rng.Source
}

// NewSynthesizer creates a quest synthesizer drawing from src
func NewSynthesizer(src rng.Source) *Synthesizer {
	return &Synthesizer{src: src}
}

// Synthesize builds a kill quest for the given level. A level below 1 fails
// with items.ErrInvalidArgument.
func (s *Synthesizer) Synthesize(level int) (*Quest, error) {
	if level < 1 {
		return nil, fmt.Errorf("%w: level must be >= 1, got %d", items.ErrInvalidArgument, level)
	}

	count := minTargets + rng.Pick(s.src, targetSpread)
	return &Quest{
		ID:          rng.NewID("quest", s.src),
		Title:       fmt.Sprintf("의뢰: %d레벨 지역 토벌", level),
		Description: fmt.Sprintf("주변 지역의 몬스터를 %d마리 처치하세요.", count),
		Level:       level,
		TargetCount: count,
		Reward: Reward{
			Gold:       level * goldPerLevel,
			Experience: level * expPerLevel,
		},
		Status: StatusActive,
	}, nil
}
