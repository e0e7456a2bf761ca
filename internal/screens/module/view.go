package module

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cloudquest/internal/i18n"
	"github.com/abhisek/cloudquest/internal/nav"
	"github.com/abhisek/cloudquest/internal/quiz"
	"github.com/abhisek/cloudquest/internal/ui/components"
	"github.com/abhisek/cloudquest/internal/ui/icons"
	"github.com/abhisek/cloudquest/internal/ui/theme"
)

func (s *ModuleScreen) View(width, height int) string {
	cw := components.ContentWidth(width, 110)
	head := s.renderHead(cw)
	tabBar := s.renderTabs()
	bodyHeight := height - lipgloss.Height(head) - lipgloss.Height(tabBar) - 2
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	switch s.ctrl.Tab() {
	case nav.TabChat:
		body = s.panel.View(s.ctrl.ModuleChat(), cw, bodyHeight)
	case nav.TabQuiz:
		body = s.renderQuiz(cw)
	default:
		body = s.renderLearn(cw, bodyHeight)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, head, "", tabBar, "", body)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}

func (s *ModuleScreen) renderHead(width int) string {
	title := theme.Title.Render(icons.Module(s.module.Icon) + " " + s.module.Title)
	meta := theme.Subtitle.Render(fmt.Sprintf("%s · %s", s.module.Category.DisplayName(), s.module.Difficulty))
	desc := lipgloss.NewStyle().Width(width).Foreground(theme.Text).Render(s.module.Description)
	return lipgloss.JoinVertical(lipgloss.Left, title+"  "+meta, desc)
}

func (s *ModuleScreen) renderTabs() string {
	labels := map[nav.Tab]string{
		nav.TabLearn: s.p.T(i18n.TabLearn),
		nav.TabChat:  s.p.T(i18n.TabChat),
		nav.TabQuiz:  s.p.T(i18n.TabQuiz),
	}
	var parts []string
	for _, t := range tabs {
		if t == s.ctrl.Tab() {
			parts = append(parts, theme.TabActive.Render(labels[t]))
		} else {
			parts = append(parts, theme.TabInactive.Render(labels[t]))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (s *ModuleScreen) renderLearn(width, height int) string {
	p := s.ctrl.ModuleProgress(s.module.ID)
	bar := components.NewProgressBar(s.p.T(i18n.ModuleProgress, p.Completed, p.Total), p.Ratio(), width)
	bar.Fill = theme.Success

	topicWidth := width / 3
	if topicWidth < 28 {
		topicWidth = 28
	}
	list := components.Card(s.topics.View(), topicWidth, true)

	explWidth := width - topicWidth - 2
	exp := s.ctrl.Explanation()
	var text string
	switch {
	case exp.Loading:
		text = theme.Hint.Render("☁ " + s.p.T(i18n.Explaining))
	case exp.Text != "":
		text = lipgloss.NewStyle().Width(explWidth - 4).Foreground(theme.Text).Render(exp.Text)
	default:
		text = theme.Hint.Render(s.p.T(i18n.PickTopic))
	}

	// Keep the explanation inside the body; long answers show their head.
	maxLines := height - lipgloss.Height(bar) - 3
	if maxLines > 0 {
		lines := strings.Split(text, "\n")
		if len(lines) > maxLines {
			text = strings.Join(lines[:maxLines], "\n")
		}
	}
	title := s.p.T(i18n.TopicTheory)
	if t, _, ok := s.ctrl.Catalog().Topic(exp.TopicID); ok {
		title = t.Title
	}
	card := components.TitledCard(title, text, explWidth, false)

	row := lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", card)
	return lipgloss.JoinVertical(lipgloss.Left, bar, "", row)
}

func (s *ModuleScreen) renderQuiz(width int) string {
	sess := s.ctrl.Quiz()
	if sess == nil {
		return ""
	}

	switch sess.Phase() {
	case quiz.PhaseLoading:
		return theme.Hint.Render("☁ " + s.p.T(i18n.QuizLoading))
	case quiz.PhaseError:
		msg := s.p.T(i18n.QuizFailed)
		if sess.LoadError() == quiz.LoadEmpty {
			msg = s.p.T(i18n.QuizEmpty)
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Width(width).Foreground(theme.Error).Render(msg),
			"",
			components.NewButton(s.p.T(i18n.QuizRetry)).View(),
		)
	case quiz.PhaseCompleted:
		return s.renderResults(sess, width)
	}

	s.syncCursor(sess)
	q, _ := sess.Current()
	chosen := -1
	if i, ok := sess.Selected(); ok {
		chosen = i
	}
	mc := components.MultiChoice{
		Question:     q.Question,
		Options:      q.Options,
		Cursor:       s.cursor,
		Chosen:       chosen,
		CorrectIndex: q.CorrectIndex,
		Revealed:     sess.Answered(),
	}

	parts := []string{
		theme.Subtitle.Render(s.p.T(i18n.QuizProgress, sess.Index()+1, sess.Total())),
		"",
		mc.View(width - 4),
	}

	if sess.Answered() {
		switch sess.Feedback() {
		case quiz.FeedbackCorrect:
			parts = append(parts, theme.Correct.Render(s.p.T(i18n.QuizCorrect)))
		case quiz.FeedbackIncorrect:
			parts = append(parts, theme.Incorrect.Render(s.p.T(i18n.QuizIncorrect)))
		}
		if q.Explanation != "" {
			parts = append(parts, "",
				theme.Section.Render(s.p.T(i18n.QuizExplanation)),
				lipgloss.NewStyle().Width(width-4).Foreground(theme.Text).Render(q.Explanation))
		}
		label := s.p.T(i18n.QuizNext)
		if sess.Index() == sess.Total()-1 {
			label = s.p.T(i18n.QuizResults)
		}
		parts = append(parts, "", components.NewButton(label).View())
	}

	return components.Card(strings.Join(parts, "\n"), width, true)
}

func (s *ModuleScreen) renderResults(sess *quiz.Session, width int) string {
	headline := theme.Title.Render(s.p.T(i18n.QuizKeepGoing))
	if sess.Passed() {
		headline = theme.Correct.Render(s.p.T(i18n.QuizPassed))
	}
	percent := lipgloss.NewStyle().Bold(true).Foreground(theme.Accent).Render(fmt.Sprintf("%d%%", sess.Percent()))
	lines := []string{
		theme.Section.Render(s.p.T(i18n.QuizComplete)),
		"",
		percent,
		headline,
		theme.Body.Render(s.p.T(i18n.QuizScore, sess.Score(), sess.Total(), sess.Percent())),
		theme.Body.Render(s.p.T(i18n.QuizReward, sess.DisplayReward())),
		"",
		components.NewButton(s.p.T(i18n.QuizRetry)).View(),
	}
	content := lipgloss.NewStyle().Width(width - 4).Align(lipgloss.Center).Render(strings.Join(lines, "\n"))
	return components.Card(content, width, true)
}
