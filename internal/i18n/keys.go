package i18n

// Message keys. Each key is also its English format string.
const (
	// Notifications.
	LevelUp  = "LEVEL UP! Welcome to Level %d! 🎉"
	XPGained = "+%d XP"

	// Tutor fallbacks.
	ExplainEmpty    = "Sorry, content generation failed."
	ExplainFailed   = "Something went wrong while generating content. Please check your network."
	ChatEmpty       = "I didn't quite get that. Could you say it again?"
	ChatUnavailable = "The chat service is temporarily unavailable."
	ChatError       = "Oops, my circuits got tangled 😵‍💫. Please try again in a moment!"

	// Quiz.
	QuizEmpty       = "The AI seems to be napping and couldn't generate questions. Please try again!"
	QuizFailed      = "Something went wrong while loading the quiz. Please check your network."
	QuizCorrect     = "Awesome! Correct answer +10 XP 🌟"
	QuizIncorrect   = "Oops, so close! Check the explanation 💪"
	QuizLoading     = "Generating scenario questions..."
	QuizProgress    = "Question %d of %d"
	QuizExplanation = "Explanation"
	QuizComplete    = "Quiz complete!"
	QuizPassed      = "Passed! You really know this module 🏆"
	QuizKeepGoing   = "Keep practicing, you'll get there 💪"
	QuizScore       = "Score: %d/%d (%d%%)"
	QuizReward      = "Total reward: +%d XP"
	QuizRetry       = "Try again"
	QuizNext        = "Next question"
	QuizResults     = "See results"

	// Chat.
	WelcomeContext  = "Hi! I'm Cloudy ☁️! Happy to study **%s** with you. Ask me anything and I'll explain it in the most fun way! 🎢"
	WelcomeGeneric  = "Hi! I'm Cloudy ☁️, your fun AWS guide! We can talk about services or plan your cloud architecture. Ready to start? 🚀"
	ActionAnalogy   = "Can you explain %s with a fun real-life analogy? Food or transport would be perfect! 🍕🚗"
	ActionExplain5  = "Explain what %s is like I'm five."
	ActionQuizMe    = "Quiz me with a simple question about %s!"
	ActionFunFact   = "Tell me a fun fact about AWS!"
	ChatThinking    = "Cloudy is thinking..."
	ChatPlaceholder = "Ask Cloudy anything..."
	ChatYou         = "You"
	ChatTutorName   = "Cloudy"

	// Navigation and chrome.
	ViewDashboard  = "Dashboard"
	ViewEcosystem  = "Ecosystem"
	ViewTutor      = "AI Tutor"
	TabLearn       = "Learn"
	TabChat        = "Chat"
	TabQuiz        = "Quiz"
	HeaderLevel    = "Lv %d"
	HeaderStreak   = "🔥 %d days"
	XPToNext       = "%d XP to next level"
	ModuleProgress = "%d/%d done"
	Completed      = "Completed"
	Explaining     = "Cloudy is writing the explanation..."
	PickTopic      = "Pick a topic and press Enter to get an explanation."
	TopicTheory    = "Theory"
	TopicLab       = "Lab"
	ResourceTags   = "Tags: %s"
	DashboardIntro = "Your AWS learning journey"
)
