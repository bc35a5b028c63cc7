package quest

import (
	"sort"
	"sync"
)

// Log tracks a player's active and finished quests. It is safe for
// concurrent use.
type Log struct {
	mu        sync.RWMutex
	active    map[string]*Quest
	completed map[string]bool
}

// NewLog creates an empty quest log
func NewLog() *Log {
	return &Log{
		active:    make(map[string]*Quest),
		completed: make(map[string]bool),
	}
}

// Start begins tracking a quest. Starting a quest that is already active or
// was turned in returns false.
func (l *Log) Start(q *Quest) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.active[q.ID]; ok || l.completed[q.ID] {
		return false
	}
	l.active[q.ID] = q
	return true
}

// Get returns an active quest by ID
func (l *Log) Get(id string) (*Quest, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	q, ok := l.active[id]
	return q, ok
}

// Active returns the IDs of all active quests in sorted order
func (l *Log) Active() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ids := make([]string, 0, len(l.active))
	for id := range l.active {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// RecordKill credits one kill of the named monster to every matching active
// quest and returns the IDs of quests completed by it.
func (l *Log) RecordKill(monsterName string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	var done []string
	for id, q := range l.active {
		if !q.Matches(monsterName) {
			continue
		}
		if q.Record(1) {
			done = append(done, id)
		}
	}
	sort.Strings(done)
	return done
}

// TurnIn removes a completed quest from the active set and returns its
// reward. Quests that are unknown or still in progress return false.
func (l *Log) TurnIn(id string) (Reward, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	q, ok := l.active[id]
	if !ok || !q.IsCompleted() {
		return Reward{}, false
	}
	delete(l.active, id)
	l.completed[id] = true
	return q.Reward, true
}

// HasCompleted checks if a quest was previously turned in
func (l *Log) HasCompleted(id string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.completed[id]
}
