package xp

import (
	"math"

	"github.com/abhisek/cloudquest/internal/curriculum"
)

// Reward amounts by event.
const (
	TheoryReward        = 5
	LabReward           = 15
	CorrectAnswerReward = 10
	bonusPerCorrect     = 5
)

// TopicReward returns the XP for completing a topic of the given type.
func TopicReward(t curriculum.TopicType) int {
	if t == curriculum.TopicLab {
		return LabReward
	}
	return TheoryReward
}

// Passed reports whether score/total meets the 70% pass mark. The comparison
// is done in integers so 7/10 passes exactly.
func Passed(score, total int) bool {
	if total <= 0 {
		return false
	}
	return score*10 >= total*7
}

// CompletionBonus returns the quiz completion bonus, zero below the pass mark.
func CompletionBonus(score, total int) int {
	if !Passed(score, total) {
		return 0
	}
	return int(math.Round(float64(score) * bonusPerCorrect))
}
