// Package tui is the interactive shell over a day session.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/anchor/internal/session"
	"github.com/julianstephens/anchor/internal/storage"
)

// Changes returns a session option that signals on the returned channel
// whenever the session state changes. Signals coalesce; the model reads the
// latest snapshot when it wakes.
func Changes() (session.Option, <-chan struct{}) {
	ch := make(chan struct{}, 1)
	opt := session.WithOnChange(func(session.Snapshot) {
		select {
		case ch <- struct{}{}:
		default:
		}
	})
	return opt, ch
}

// changedMsg wakes the model after a state change made outside Update,
// such as the celebration timer or a day rollover.
type changedMsg struct{}

type Model struct {
	sess    *session.Session
	kv      storage.Writer
	changes <-chan struct{}

	snap     session.Snapshot
	cursor   int
	keys     KeyMap
	help     help.Model
	progress progress.Model

	form     *huh.Form
	formMood string

	err      error
	quitting bool
	width    int
	height   int
}

// NewModel wraps a loaded session. kv receives check-ins made from the TUI
// and changes is the channel returned by Changes.
func NewModel(sess *session.Session, kv storage.Writer, changes <-chan struct{}) Model {
	return Model{
		sess:     sess,
		kv:       kv,
		changes:  changes,
		snap:     sess.Snapshot(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
}

func (m Model) ShortHelp() []key.Binding {
	return m.keys.ShortHelp()
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

func (m Model) Init() tea.Cmd {
	return waitForChange(m.changes)
}

func waitForChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return changedMsg{}
	}
}

// Snapshot returns the state the model last rendered
func (m Model) Snapshot() session.Snapshot {
	return m.snap
}
