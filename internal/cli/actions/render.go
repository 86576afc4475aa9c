// Package actions holds the day commands: viewing, toggling, refreshing and
// submitting today's suggestions, plus check-ins, history and export.
package actions

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/anchor/internal/cli"
	"github.com/julianstephens/anchor/internal/models"
	"github.com/julianstephens/anchor/internal/session"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Strikethrough(true)
	celebrate   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
)

const barWidth = 20

// printSnapshot writes the plain-terminal version of the day view
func printSnapshot(w io.Writer, snap session.Snapshot) {
	fmt.Fprintln(w, headerStyle.Render(snap.Greeting))
	fmt.Fprintln(w, mutedStyle.Render(snap.Encouragement))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s  mood: %s\n\n", snap.Date, snap.Mood)

	for _, item := range snap.Items {
		box := "[ ]"
		title := item.Action.Title
		if item.Checked {
			box = "[x]"
			title = doneStyle.Render(title)
		}
		fmt.Fprintf(w, "  %s %s %s\n", box, title, mutedStyle.Render("("+item.Action.ID+")"))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %d/%d (%d%%)\n", progressBar(snap.Percent), snap.Completed, snap.Total, snap.Percent)

	switch snap.Stage {
	case models.StageCongrats:
		fmt.Fprintln(w, celebrate.Render("All done for today. Well done!"))
	case models.StageInsights:
		printInsight(w, snap)
	default:
		if snap.CanSubmit {
			fmt.Fprintln(w, mutedStyle.Render("Everything is checked. Run 'anchor submit' to finish the day."))
		}
	}
}

func printInsight(w io.Writer, snap session.Snapshot) {
	fmt.Fprintln(w, celebrate.Render(fmt.Sprintf("🔥 %d-day streak", snap.Streak)))
	fmt.Fprintln(w, snap.Insight.Sentence)
}

func progressBar(percent int) string {
	filled := percent * barWidth / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled) + "]"
}

// loadSession opens a session and reads today's state. A congrats stage left
// by an earlier command is settled to insights. The caller must Close the
// session.
func loadSession(ctx *cli.Context, opts ...session.Option) (*session.Session, session.Snapshot) {
	s := ctx.NewSession(append([]session.Option{session.WithSettledCelebration()}, opts...)...)
	return s, s.Load()
}
