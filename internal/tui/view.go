package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/anchor/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.form != nil {
		return docStyle.Render(m.form.View())
	}

	sections := []string{
		titleStyle.Render(m.snap.Greeting),
		mutedStyle.Render(m.snap.Encouragement),
		"",
		fmt.Sprintf("%s  ·  feeling %s", m.snap.Date, m.snap.Mood),
		"",
		m.viewActions(),
		"",
		m.progress.ViewAs(float64(m.snap.Percent) / 100),
		mutedStyle.Render(fmt.Sprintf("%d of %d done", m.snap.Completed, m.snap.Total)),
	}

	if stage := m.viewStage(); stage != "" {
		sections = append(sections, "", stage)
	}
	if m.err != nil {
		sections = append(sections, "", dangerStyle.Render(m.err.Error()))
	}
	sections = append(sections, "", m.help.View(m))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) viewActions() string {
	if len(m.snap.Items) == 0 {
		return mutedStyle.Render("No suggestions for today.")
	}
	var b strings.Builder
	for i, item := range m.snap.Items {
		cursor := "  "
		if i == m.cursor && m.snap.Stage == models.StageNone {
			cursor = cursorStyle.Render("> ")
		}
		box, title := "[ ]", item.Action.Title
		if item.Checked {
			box, title = "[x]", doneStyle.Render(title)
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, box, title)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m Model) viewStage() string {
	switch m.snap.Stage {
	case models.StageCongrats:
		return panelStyle.Render(celebrateStyle.Render("🎉 All done for today. Well done!"))
	case models.StageInsights:
		body := lipgloss.JoinVertical(lipgloss.Left,
			celebrateStyle.Render(fmt.Sprintf("🔥 %d-day streak", m.snap.Streak)),
			m.snap.Insight.Sentence,
		)
		return panelStyle.Render(body)
	}
	if m.snap.CanSubmit {
		return mutedStyle.Render("Everything is checked. Press s to finish the day.")
	}
	return ""
}
