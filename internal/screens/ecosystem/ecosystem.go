// Package ecosystem shows the curated directory of AWS resources.
package ecosystem

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cloudquest/internal/curriculum"
	"github.com/abhisek/cloudquest/internal/i18n"
	"github.com/abhisek/cloudquest/internal/nav"
	"github.com/abhisek/cloudquest/internal/screen"
	"github.com/abhisek/cloudquest/internal/ui/components"
	"github.com/abhisek/cloudquest/internal/ui/icons"
	"github.com/abhisek/cloudquest/internal/ui/layout"
	"github.com/abhisek/cloudquest/internal/ui/theme"
)

type entry struct {
	category string
	resource curriculum.Resource
}

// EcosystemScreen lists resources grouped by category. The selected
// resource is expanded with its description, tags and URL.
type EcosystemScreen struct {
	p            *i18n.Printer
	entries      []entry
	selected     int
	scrollOffset int
}

var _ screen.Screen = (*EcosystemScreen)(nil)
var _ screen.KeyHintProvider = (*EcosystemScreen)(nil)

// New creates the ecosystem screen.
func New(ctrl *nav.Controller, p *i18n.Printer) *EcosystemScreen {
	var entries []entry
	for _, cat := range ctrl.Catalog().Resources() {
		for _, r := range cat.Items {
			entries = append(entries, entry{category: cat.Title, resource: r})
		}
	}
	return &EcosystemScreen{p: p, entries: entries}
}

func (s *EcosystemScreen) Init() tea.Cmd {
	return nil
}

func (s *EcosystemScreen) Title() string {
	return s.p.T(i18n.ViewEcosystem)
}

func (s *EcosystemScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *EcosystemScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.entries)-1 {
			s.selected++
		}
	case "home", "g":
		s.selected = 0
	case "end", "G":
		s.selected = len(s.entries) - 1
	}
	return s, nil
}

// Selected returns the resource under the cursor.
func (s *EcosystemScreen) Selected() (curriculum.Resource, bool) {
	if s.selected < 0 || s.selected >= len(s.entries) {
		return curriculum.Resource{}, false
	}
	return s.entries[s.selected].resource, true
}

func (s *EcosystemScreen) View(width, height int) string {
	if len(s.entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No resources.")
	}

	cw := components.ContentWidth(width, 100)
	var blocks []string
	blockOf := make([]int, len(s.entries)) // entry index -> first line
	lineCount := 0
	lastCategory := ""
	for i, e := range s.entries {
		if e.category != lastCategory {
			if lastCategory != "" {
				blocks = append(blocks, "")
				lineCount++
			}
			blocks = append(blocks, theme.Section.Render(strings.ToUpper(e.category)))
			lineCount++
			lastCategory = e.category
		}
		blockOf[i] = lineCount
		block := s.renderEntry(e.resource, i == s.selected, cw)
		blocks = append(blocks, block)
		lineCount += lipgloss.Height(block)
	}

	lines := strings.Split(strings.Join(blocks, "\n"), "\n")
	s.adjustScroll(blockOf[s.selected], lipgloss.Height(s.renderEntry(s.entries[s.selected].resource, true, cw)), height)

	end := s.scrollOffset + height
	if end > len(lines) {
		end = len(lines)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(cw).Render(strings.Join(lines[s.scrollOffset:end], "\n")))
}

// adjustScroll keeps the selected block, starting at line top with size
// lines, inside the viewport.
func (s *EcosystemScreen) adjustScroll(top, size, height int) {
	if height <= 0 {
		return
	}
	// Show the category header above the first entry.
	if top > 0 && top-1 < s.scrollOffset {
		s.scrollOffset = top - 1
	}
	if top < s.scrollOffset {
		s.scrollOffset = top
	}
	if top+size > s.scrollOffset+height {
		s.scrollOffset = top + size - height
	}
	if s.scrollOffset < 0 {
		s.scrollOffset = 0
	}
}

func (s *EcosystemScreen) renderEntry(r curriculum.Resource, selected bool, width int) string {
	head := fmt.Sprintf("%s %s", icons.Resource(r.Icon), r.Title)
	if !selected {
		return theme.Unselected.Render("  " + head)
	}

	var body []string
	body = append(body, theme.Selected.Render(head))
	body = append(body, lipgloss.NewStyle().Width(width-6).Foreground(theme.Text).Render(r.Description))
	if len(r.Tags) > 0 {
		body = append(body, theme.Subtitle.Render(s.p.T(i18n.ResourceTags, strings.Join(r.Tags, ", "))))
	}
	body = append(body, lipgloss.NewStyle().Foreground(theme.Secondary).Underline(true).Render(r.URL))
	return components.Card(strings.Join(body, "\n"), width, true)
}
