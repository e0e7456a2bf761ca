package tutor

// Config holds generation settings for the tutor.
type Config struct {
	ExplainMaxTokens int
	QuizMaxTokens    int
	ChatMaxTokens    int
	Temperature      float64

	// QuizSize is the number of questions requested and kept per quiz.
	QuizSize int
}

// DefaultConfig returns sensible defaults for tutoring.
func DefaultConfig() Config {
	return Config{
		ExplainMaxTokens: 2048,
		QuizMaxTokens:    1536,
		ChatMaxTokens:    2048,
		Temperature:      0.7,
		QuizSize:         3,
	}
}
