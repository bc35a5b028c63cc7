// Package quest builds kill quests scaled to a player level and tracks
// their progress.
package quest

import (
	"fmt"
	"strings"
)

// Status represents where a quest is in its lifecycle
type Status string

const (
	StatusActive    Status = "active"    // Objective in progress
	StatusCompleted Status = "completed" // Objective met, reward claimable
)

// Reward defines what the player receives on completion
type Reward struct {
	Gold       int `json:"gold" yaml:"gold"`
	Experience int `json:"experience" yaml:"experience"`
}

// Quest is a generated kill quest.
type Quest struct {
	ID           string `json:"id" yaml:"id"`
	Title        string `json:"title" yaml:"title"`
	Description  string `json:"description" yaml:"description"`
	Level        int    `json:"level" yaml:"level"`
	TargetName   string `json:"target_name" yaml:"target_name"` // empty = any monster
	TargetCount  int    `json:"target_count" yaml:"target_count"`
	CurrentCount int    `json:"current_count" yaml:"current_count"`
	Reward       Reward `json:"reward" yaml:"reward"`
	Status       Status `json:"status" yaml:"status"`
}

// IsCompleted returns true once the kill count has been reached
func (q *Quest) IsCompleted() bool {
	return q.Status == StatusCompleted
}

// Remaining returns how many kills are still needed
func (q *Quest) Remaining() int {
	return max(0, q.TargetCount-q.CurrentCount)
}

// Matches reports whether killing the named monster counts toward the quest.
// The target name is matched as a substring so "늑대" also accepts
// "굶주린 늑대".
func (q *Quest) Matches(monsterName string) bool {
	if q.TargetName == "" {
		return true
	}
	return strings.Contains(monsterName, q.TargetName)
}

// Record adds kills to the quest and returns true if this call completed it.
// Progress never exceeds the target and completed quests ignore further kills.
func (q *Quest) Record(kills int) bool {
	if kills <= 0 || q.IsCompleted() {
		return false
	}
	q.CurrentCount = min(q.TargetCount, q.CurrentCount+kills)
	if q.CurrentCount >= q.TargetCount {
		q.Status = StatusCompleted
		return true
	}
	return false
}

// String returns a one-line progress summary
func (q *Quest) String() string {
	return fmt.Sprintf("%s [%d/%d] (%dG, %d EXP)", q.Title, q.CurrentCount, q.TargetCount, q.Reward.Gold, q.Reward.Experience)
}
