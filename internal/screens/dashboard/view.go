package dashboard

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cloudquest/internal/i18n"
	"github.com/abhisek/cloudquest/internal/ui/components"
	"github.com/abhisek/cloudquest/internal/ui/icons"
	"github.com/abhisek/cloudquest/internal/ui/layout"
	"github.com/abhisek/cloudquest/internal/ui/theme"
)

const sideWidth = 34

func (d *DashboardScreen) View(width, height int) string {
	if layout.IsCompactWidth(width) {
		stats := d.renderStatsLine(width)
		listHeight := height - lipgloss.Height(stats) - 1
		return stats + "\n\n" + d.renderList(width, listHeight)
	}

	listWidth := width - sideWidth - 2
	list := d.renderList(listWidth, height)
	side := d.renderSide(sideWidth)
	return lipgloss.JoinHorizontal(lipgloss.Top, lipgloss.NewStyle().Width(listWidth).Render(list), "  ", side)
}

func (d *DashboardScreen) renderList(width, height int) string {
	d.adjustScroll(height)

	var lines []string
	for i := d.scrollOffset; i < len(d.rows) && len(lines) < height; i++ {
		r := d.rows[i]
		switch r.kind {
		case rowTrackHeader:
			lines = append(lines, d.renderTrackHeader(r, width))
		case rowModule:
			lines = append(lines, d.renderModuleRow(r, i == d.cursor, width))
		}
	}
	return strings.Join(lines, "\n")
}

func (d *DashboardScreen) renderTrackHeader(r row, width int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(width).
		Render(strings.ToUpper(r.track.Title))
}

func (d *DashboardScreen) renderModuleRow(r row, selected bool, width int) string {
	m := r.module
	p := d.ctrl.ModuleProgress(m.ID)

	progressText := d.p.T(i18n.ModuleProgress, p.Completed, p.Total)
	percent := fmt.Sprintf("%3d%%", p.Percent())

	// cursor (2) + icon (3) + gaps (6)
	titleWidth := width - 11 - lipgloss.Width(progressText) - lipgloss.Width(percent)
	if titleWidth < 10 {
		titleWidth = 10
	}
	title := m.Title
	if lipgloss.Width(title) > titleWidth {
		title = string([]rune(title)[:titleWidth-1]) + "…"
	}

	titleStyle := theme.Unselected
	progressStyle := theme.Subtitle
	cursor := "  "
	switch {
	case selected:
		titleStyle = theme.Selected
		progressStyle = lipgloss.NewStyle().Foreground(theme.Primary)
		cursor = "▸ "
	case p.Total > 0 && p.Completed == p.Total:
		titleStyle = theme.Done
		progressStyle = theme.Done
	}

	return fmt.Sprintf("%s%s %s  %s  %s",
		cursor,
		icons.Module(m.Icon),
		titleStyle.Render(fmt.Sprintf("%-*s", titleWidth, title)),
		progressStyle.Render(progressText),
		progressStyle.Render(percent),
	)
}

func (d *DashboardScreen) renderSide(width int) string {
	stats := d.ctrl.Stats()
	inner := width - 4

	var sections []string
	sections = append(sections, lipgloss.PlaceHorizontal(inner, lipgloss.Center, RenderMascot(d.mascotVariant())))

	level := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(d.p.T(i18n.HeaderLevel, stats.Level))
	sections = append(sections, level+"  "+theme.Body.Render(stats.Title))

	bar := components.NewProgressBar("XP", float64(stats.Percent())/100, inner)
	bar.Fill = theme.Primary
	sections = append(sections, bar.View())
	sections = append(sections, theme.Subtitle.Render(fmt.Sprintf("%d / %d XP", stats.XP, stats.NextLevelXP)))
	sections = append(sections, theme.Hint.Render(d.p.T(i18n.XPToNext, stats.Remaining())))
	sections = append(sections, theme.Body.Render(d.p.T(i18n.HeaderStreak, stats.Streak)))

	total := d.ctrl.Catalog().TopicCount()
	sections = append(sections, components.Divider(inner))
	sections = append(sections, theme.Body.Render(fmt.Sprintf("✓ %d / %d", d.ctrl.CompletedCount(), total)))

	if m, ok := d.Selected(); ok {
		sections = append(sections, components.Divider(inner))
		sections = append(sections, theme.Section.Render(m.Title))
		sections = append(sections, theme.Subtitle.Render(string(m.Difficulty)+" · "+m.Category.DisplayName()))
		sections = append(sections, lipgloss.NewStyle().Width(inner).Foreground(theme.Text).Render(m.Description))
	}

	return components.TitledCard(d.p.T(i18n.DashboardIntro), strings.Join(sections, "\n"), width, false)
}

func (d *DashboardScreen) renderStatsLine(width int) string {
	stats := d.ctrl.Stats()
	level := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(d.p.T(i18n.HeaderLevel, stats.Level))
	bar := components.NewProgressBar("", float64(stats.Percent())/100, 24)
	bar.Fill = theme.Primary
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		level+"  "+theme.Body.Render(stats.Title)+"  "+bar.View()+"  "+
			theme.Hint.Render(d.p.T(i18n.XPToNext, stats.Remaining())))
}
