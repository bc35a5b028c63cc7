// Package skill builds tiered combat skills for a player job.
package skill

import (
	"fmt"
	"strings"
)

// Job represents the player job a skill belongs to
type Job string

const (
	Warrior Job = "warrior"
	Mage    Job = "mage"
	Archer  Job = "archer"
	None    Job = "none" // jobless adventurer
)

// AllJobs returns all valid jobs
func AllJobs() []Job {
	return []Job{Warrior, Mage, Archer, None}
}

// IsValid returns true if the job is a known job
func (j Job) IsValid() bool {
	switch j {
	case Warrior, Mage, Archer, None:
		return true
	default:
		return false
	}
}

// Label returns the in-game display name of the job
func (j Job) Label() string {
	switch j {
	case Warrior:
		return "전사"
	case Mage:
		return "마법사"
	case Archer:
		return "궁수"
	default:
		return "모험가"
	}
}

// ParseJob parses a job key or display name, case-insensitive
func ParseJob(s string) (Job, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, j := range AllJobs() {
		if key == string(j) || key == j.Label() {
			return j, nil
		}
	}
	return "", fmt.Errorf("unknown job: %s", s)
}
