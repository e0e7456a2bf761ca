package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		pref string
		want language.Tag
	}{
		{"", language.English},
		{"en", language.English},
		{"en-GB", language.English},
		{"zh", language.SimplifiedChinese},
		{"zh-CN", language.SimplifiedChinese},
		{"zh-Hans", language.SimplifiedChinese},
		{"not a tag!!", language.English},
	}
	for _, tt := range tests {
		t.Run(tt.pref, func(t *testing.T) {
			got := Match(tt.pref)
			base, _ := got.Base()
			wantBase, _ := tt.want.Base()
			assert.Equal(t, wantBase, base)
		})
	}
}

func TestPrinter_English(t *testing.T) {
	p := New("en")
	assert.Equal(t, "LEVEL UP! Welcome to Level 3! 🎉", p.LevelUp(3))
	assert.Equal(t, "+15 XP", p.XPGained(15))
	assert.Equal(t, "Score: 2/3 (67%)", p.T(QuizScore, 2, 3, 67))
	assert.Equal(t, "English", p.LanguageName())
}

func TestPrinter_Chinese(t *testing.T) {
	p := New("zh-CN")
	assert.Equal(t, "升级啦！欢迎来到 Level 2！🎉", p.LevelUp(2))
	assert.Equal(t, "太棒了！回答正确 +10 XP 🌟", p.T(QuizCorrect))
	assert.Equal(t, "Chinese (Simplified)", p.LanguageName())
}

func TestCatalogCoversEveryKey(t *testing.T) {
	keys := []string{
		LevelUp, XPGained, ExplainEmpty, ExplainFailed, ChatEmpty, ChatUnavailable, ChatError,
		QuizEmpty, QuizFailed, QuizCorrect, QuizIncorrect, QuizLoading, QuizProgress,
		QuizExplanation, QuizComplete, QuizPassed, QuizKeepGoing, QuizScore, QuizReward,
		QuizRetry, QuizNext, QuizResults, WelcomeContext, WelcomeGeneric, ActionAnalogy,
		ActionExplain5, ActionQuizMe, ActionFunFact, ChatThinking, ChatPlaceholder, ChatYou,
		ChatTutorName, ViewDashboard, ViewEcosystem, ViewTutor, TabLearn, TabChat, TabQuiz,
		HeaderLevel, HeaderStreak, XPToNext, ModuleProgress, Completed, Explaining, PickTopic,
		TopicTheory, TopicLab, ResourceTags, DashboardIntro,
	}
	for _, k := range keys {
		_, ok := zhHans[k]
		assert.True(t, ok, "missing zh-Hans translation for %q", k)
	}
	assert.Len(t, zhHans, len(keys))
}
