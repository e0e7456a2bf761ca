// Package xp converts reward events into level and title progression.
package xp

// Stats is the learner's gamified progress. It is owned by an Engine and
// only changes through Engine.Award.
type Stats struct {
	Level       int
	XP          int
	NextLevelXP int
	Title       string
	Streak      int
}

const (
	InitialNextLevelXP = 100
	levelGrowth        = 1.5
)

// DefaultStats returns the starting state for a new learner.
func DefaultStats() Stats {
	return Stats{
		Level:       1,
		XP:          0,
		NextLevelXP: InitialNextLevelXP,
		Title:       Title(1),
		Streak:      1,
	}
}

// Percent returns progress toward the next level, capped at 100.
func (s Stats) Percent() int {
	if s.NextLevelXP <= 0 {
		return 0
	}
	p := s.XP * 100 / s.NextLevelXP
	if p > 100 {
		p = 100
	}
	return p
}

// Remaining returns how much XP is needed to reach the next level.
func (s Stats) Remaining() int {
	return s.NextLevelXP - s.XP
}

type titleBreakpoint struct {
	minLevel int
	title    string
}

// titleTable is ordered from the highest breakpoint down.
var titleTable = []titleBreakpoint{
	{20, "Principal Engineer"},
	{10, "Solutions Architect"},
	{5, "Cloud Associate"},
	{1, "Cloud Rookie"},
}

// Title returns the rank title for a level.
func Title(level int) string {
	for _, bp := range titleTable {
		if level >= bp.minLevel {
			return bp.title
		}
	}
	return titleTable[len(titleTable)-1].title
}
