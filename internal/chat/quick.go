package chat

import "github.com/abhisek/cloudquest/internal/i18n"

// QuickAction is a canned prompt offered under the composer.
type QuickAction struct {
	Label  string
	Prompt string
}

// QuickActions returns the canned prompts for this conversation. Without a
// module context every action asks for a fun fact.
func (c *Conversation) QuickActions() []QuickAction {
	labels := []string{"🍕 Analogy", "👶 ELI5", "❓ Quiz me"}
	if c.topic == "" {
		fact := c.loc.T(i18n.ActionFunFact)
		return []QuickAction{
			{Label: labels[0], Prompt: fact},
			{Label: labels[1], Prompt: fact},
			{Label: labels[2], Prompt: fact},
		}
	}
	return []QuickAction{
		{Label: labels[0], Prompt: c.loc.T(i18n.ActionAnalogy, c.topic)},
		{Label: labels[1], Prompt: c.loc.T(i18n.ActionExplain5, c.topic)},
		{Label: labels[2], Prompt: c.loc.T(i18n.ActionQuizMe, c.topic)},
	}
}

// SendQuickAction sends the i-th quick action.
func (c *Conversation) SendQuickAction(i int) (Request, bool) {
	actions := c.QuickActions()
	if i < 0 || i >= len(actions) {
		return Request{}, false
	}
	return c.Send(actions[i].Prompt)
}
