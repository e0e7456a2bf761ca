package celebrate

// LevelUp is the large burst fired when the learner reaches a new level.
func LevelUp() Burst {
	return Burst{
		Particles: 200,
		Spread:    100,
		Origin:    Origin{X: 0.5, Y: 0.6},
		Colors:    []string{"#FFD700", "#FFA500", "#FF4500"},
	}
}

// CorrectAnswer is the small burst anchored at the chosen quiz option.
func CorrectAnswer(at Origin) Burst {
	return Burst{
		Particles: 30,
		Spread:    50,
		Origin:    at,
		Colors:    []string{"#FF9900", "#232F3E"},
	}
}

// QuizPassed is the burst fired when a quiz is completed above the pass mark.
func QuizPassed() Burst {
	return Burst{
		Particles: 150,
		Spread:    70,
		Origin:    Origin{X: 0.5, Y: 0.6},
	}
}

// OptionAnchor spreads count options vertically across the viewport and
// returns the origin of option index.
func OptionAnchor(index, count int) Origin {
	if count <= 0 {
		return Origin{X: 0.5, Y: 0.5}
	}
	return Origin{X: 0.5, Y: float64(index+1) / float64(count+1)}
}
