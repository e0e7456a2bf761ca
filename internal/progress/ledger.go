// Package progress tracks which curriculum topics the learner has completed.
package progress

import "math"

// Ledger is an append-only set of completed topic ids. It has no removal
// operation; state lives for the lifetime of the process.
type Ledger struct {
	done map[string]struct{}
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{done: make(map[string]struct{})}
}

// MarkCompleted records topicID as completed. Marking an already completed
// topic is a no-op. Callers that award XP must check IsCompleted first.
func (l *Ledger) MarkCompleted(topicID string) {
	l.done[topicID] = struct{}{}
}

// IsCompleted reports whether topicID has been completed.
func (l *Ledger) IsCompleted(topicID string) bool {
	_, ok := l.done[topicID]
	return ok
}

// Len returns the number of completed topics.
func (l *Ledger) Len() int {
	return len(l.done)
}

// CountIn returns how many of topicIDs are completed.
func (l *Ledger) CountIn(topicIDs []string) int {
	n := 0
	for _, id := range topicIDs {
		if l.IsCompleted(id) {
			n++
		}
	}
	return n
}

// ModuleProgress summarises completion for one module.
type ModuleProgress struct {
	Completed int
	Total     int
}

// Progress returns the completion summary for the given topic ids.
func (l *Ledger) Progress(topicIDs []string) ModuleProgress {
	return ModuleProgress{Completed: l.CountIn(topicIDs), Total: len(topicIDs)}
}

// Percent returns the rounded completion percentage, 0 for empty modules.
func (p ModuleProgress) Percent() int {
	if p.Total == 0 {
		return 0
	}
	return int(math.Round(float64(p.Completed) / float64(p.Total) * 100))
}

// Ratio returns completion as a fraction in [0, 1].
func (p ModuleProgress) Ratio() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Completed) / float64(p.Total)
}
